package scene

import (
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/window"
)

// Confine clamps pos so a box of side size centred on it lies within
// [0, width] x [0, height]. Each axis is clamped independently. When the
// window is narrower than size the lower bound wins for positions below it.
func Confine(pos Vec2, width, height, size float32) Vec2 {
	half := size / 2
	return Vec2{
		X: clampAxis(pos.X, half, width-half),
		Y: clampAxis(pos.Y, half, height-half),
	}
}

func clampAxis(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

// ConfinePlayerSystem keeps the player's sprite inside the window. Register
// it after PlayerMovementSystem.
type ConfinePlayerSystem struct {
	Window ecs.Singleton[window.Primary]
	Player ecs.Query[struct {
		*Transform
		*Player
	}]
}

func (s *ConfinePlayerSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.Window.MustGet()
	player := s.Player.MustSingle()

	pos := Confine(player.Translation.XY(), w.Width, w.Height, PlayerSize)
	player.Translation.X = pos.X
	player.Translation.Y = pos.Y
}
