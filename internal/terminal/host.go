// Package terminal runs the scene inside a terminal using tcell.
package terminal

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/app"
)

// Host drives an app.App on a tcell screen.
type Host struct {
	App *app.App

	screen tcell.Screen
	keys   *HeldKeys
	events chan tcell.Event
	cancel context.CancelFunc
}

// New initialises screen and builds the scene on it. Pass nil to open the
// real terminal.
func New(cfg app.Config, screen tcell.Screen, logger *log.Logger) (*Host, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	h := &Host{
		screen: screen,
		keys:   NewHeldKeys(cfg.KeyHold, nil),
		events: make(chan tcell.Event, 64),
	}

	events := &eventSystem{events: h.events, keys: h.keys, screen: screen, quit: h.stop}
	a, err := app.New(cfg, app.Host{
		Keys:    h.keys,
		Size:    screenSize{screen: screen},
		Systems: []ecs.System{events},
	}, logger)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	h.App = a
	a.Scheduler.Register(&drawSystem{screen: screen})

	return h, nil
}

func (h *Host) stop() {
	if h.cancel != nil {
		h.cancel()
	}
}

// Run steps the scene until ctx ends or a quit key is pressed.
func (h *Host) Run(ctx context.Context) error {
	ctx, h.cancel = context.WithCancel(ctx)
	defer h.cancel()

	go h.pollEvents(ctx)
	return h.App.Run(ctx)
}

func (h *Host) pollEvents(ctx context.Context) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Close restores the terminal.
func (h *Host) Close() {
	h.screen.Fini()
}
