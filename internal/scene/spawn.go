package scene

import (
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/asset"
	"github.com/plus3/ballgame/internal/window"
)

// SpawnPlayerSystem creates the player at the centre of the window.
type SpawnPlayerSystem struct {
	Window ecs.Singleton[window.Primary]
	Assets ecs.Singleton[asset.Catalog]
}

func (s *SpawnPlayerSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.Window.MustGet()
	assets := s.Assets.MustGet()

	x, y := w.Center()
	frame.Commands.Spawn(
		Transform{Translation: Vec3{X: x, Y: y}},
		Sprite{Image: assets.Load(PlayerSprite), Size: PlayerSize},
		Player{},
	)
}

// SpawnCameraSystem creates the 2D camera at the centre of the window.
type SpawnCameraSystem struct {
	Window ecs.Singleton[window.Primary]
}

func (s *SpawnCameraSystem) Execute(frame *ecs.UpdateFrame) {
	x, y := s.Window.MustGet().Center()
	frame.Commands.Spawn(
		Camera2D{},
		Transform{Translation: Vec3{X: x, Y: y}},
	)
}
