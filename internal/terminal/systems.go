package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/render"
	"github.com/plus3/ballgame/internal/scene"
	"github.com/plus3/ballgame/internal/window"
)

var (
	spriteStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// eventSystem drains terminal events queued by the poll goroutine. It runs
// first in every frame.
type eventSystem struct {
	events <-chan tcell.Event
	keys   *HeldKeys
	screen tcell.Screen
	quit   func()
}

func (s *eventSystem) Execute(frame *ecs.UpdateFrame) {
	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
			return
		}
	}
}

func (s *eventSystem) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			if s.quit != nil {
				s.quit()
			}
			return
		}
		if k, ok := translateKey(ev); ok {
			s.keys.Press(k)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// drawSystem renders sprites as blocks of cells plus a status line.
type drawSystem struct {
	screen tcell.Screen

	Window  ecs.Singleton[window.Primary]
	Cameras ecs.Query[render.CameraView]
	Sprites ecs.Query[render.SpriteView]
	Player  ecs.Query[struct {
		*scene.Player
		*scene.Transform
	}]
}

func (s *drawSystem) Execute(frame *ecs.UpdateFrame) {
	s.screen.Clear()
	cols, rows := s.screen.Size()

	if proj, ok := render.CameraProjection(&s.Cameras, s.Window.MustGet()); ok {
		for sprite := range s.Sprites.Values() {
			x0, y0, x1, y1 := CellRect(proj.Box(sprite.Translation.XY(), sprite.Size), cols, rows)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					s.screen.SetContent(x, y, '█', nil, spriteStyle)
				}
			}
		}
	}

	status := "arrows/WASD move, q quit"
	if _, p, err := s.Player.Single(); err == nil {
		status = fmt.Sprintf("(%.0f, %.0f)  %s", p.Translation.X, p.Translation.Y, status)
	}
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		s.screen.SetContent(i, 0, r, nil, statusStyle)
	}

	s.screen.Show()
}
