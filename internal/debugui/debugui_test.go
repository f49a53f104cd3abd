package debugui_test

import (
	"testing"

	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/debugui"
	"github.com/plus3/ballgame/internal/input"
	"github.com/stretchr/testify/assert"
)

func TestGuardSource(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	state := ecs.NewSingleton[debugui.ImguiInputState](storage)

	src := debugui.GuardSource(input.NewStatic(input.KeyLeft), state)
	assert.True(t, src.IsKeyPressed(input.KeyLeft))

	state.Get().WantCaptureKeyboard = true
	assert.False(t, src.IsKeyPressed(input.KeyLeft))
}
