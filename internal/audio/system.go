package audio

import (
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/scene"
	"github.com/plus3/ballgame/internal/window"
)

// Sink plays the bump sound.
type Sink interface {
	Bump()
}

// BumpSystem plays a bump whenever the player comes to rest against an edge
// it was not touching on the previous frame. Register it after
// scene.ConfinePlayerSystem.
type BumpSystem struct {
	Sink Sink

	Window ecs.Singleton[window.Primary]
	Player ecs.Query[struct {
		*scene.Player
		*scene.Transform
	}]

	last Edges
}

func (s *BumpSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.Window.MustGet()
	_, player, err := s.Player.Single()
	if err != nil {
		return
	}

	now := Touching(player.Translation.XY(), w.Width, w.Height, scene.PlayerSize)
	if now&^s.last != 0 {
		s.Sink.Bump()
	}
	s.last = now
}
