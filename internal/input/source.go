package input

import (
	"github.com/plus3/ballgame/ecs"
)

// Source reports whether a key is currently held on the host.
type Source interface {
	IsKeyPressed(key Key) bool
}

// SourceFunc adapts a function to Source.
type SourceFunc func(key Key) bool

func (f SourceFunc) IsKeyPressed(key Key) bool {
	return f(key)
}

// Static is a Source with a fixed set of held keys, for tests and scripts.
type Static struct {
	Keyboard
}

// NewStatic returns a Static source holding keys.
func NewStatic(keys ...Key) *Static {
	return &Static{Keyboard: NewKeyboard(keys...)}
}

// Hold replaces the held keys.
func (s *Static) Hold(keys ...Key) {
	s.Reset()
	for _, k := range keys {
		s.Set(k, true)
	}
}

func (s *Static) IsKeyPressed(key Key) bool {
	return s.Pressed(key)
}

// CaptureSystem copies the host keyboard state into the Keyboard singleton
// at the start of every frame. Register it before any system reading input.
type CaptureSystem struct {
	Source   Source
	Keyboard ecs.Singleton[Keyboard]
}

func (s *CaptureSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.MustGet()
	for _, k := range AllKeys {
		kb.Set(k, s.Source.IsKeyPressed(k))
	}
}
