// Package window describes the single window the scene renders into.
package window

import "github.com/plus3/ballgame/ecs"

// Primary is the singleton describing the application's only window, in
// pixels. Hosts refresh it every frame; systems must read it fresh rather
// than caching the size.
type Primary struct {
	Width  float32
	Height float32
	Title  string
}

// Center returns the middle of the window.
func (p *Primary) Center() (x, y float32) {
	return p.Width / 2, p.Height / 2
}

// Source reports the current window size.
type Source interface {
	Size() (width, height int)
}

// Fixed is a Source with a constant size.
type Fixed struct {
	Width, Height int
}

func (f Fixed) Size() (int, int) {
	return f.Width, f.Height
}

// SyncSystem copies the host window size into the Primary singleton.
type SyncSystem struct {
	Source Source
	Window ecs.Singleton[Primary]
}

func (s *SyncSystem) Execute(frame *ecs.UpdateFrame) {
	w := s.Window.MustGet()
	width, height := s.Source.Size()
	if width <= 0 || height <= 0 {
		// minimised or not laid out yet
		return
	}
	w.Width = float32(width)
	w.Height = float32(height)
}
