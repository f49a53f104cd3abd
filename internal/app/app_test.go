package app_test

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/app"
	"github.com/plus3/ballgame/internal/input"
	"github.com/plus3/ballgame/internal/scene"
	"github.com/plus3/ballgame/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, app.DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*app.Config)
	}{
		{"backend", func(c *app.Config) { c.Backend = "opengl" }},
		{"width", func(c *app.Config) { c.Width = 0 }},
		{"height", func(c *app.Config) { c.Height = -1 }},
		{"tps", func(c *app.Config) { c.TPS = 0 }},
		{"hold", func(c *app.Config) { c.KeyHold = -time.Second }},
		{"debug on terminal", func(c *app.Config) { c.Backend = app.BackendTerminal; c.Debug = true }},
		{"zero hold on terminal", func(c *app.Config) { c.Backend = app.BackendTerminal; c.KeyHold = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := app.DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), app.ErrInvalidConfig)
		})
	}
}

func TestZeroKeyHoldOnlyMattersForTerminal(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.KeyHold = 0
	assert.NoError(t, cfg.Validate(), "ebiten polls key state and ignores the hold window")
}

func TestFrameInterval(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.TPS = 50
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval())
}

func newApp(t *testing.T, keys input.Source) (*app.App, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	a, err := app.New(app.DefaultConfig(), app.Host{
		Keys: keys,
		Size: window.Fixed{Width: 800, Height: 600},
	}, log.New(&logs, "", 0))
	require.NoError(t, err)
	return a, &logs
}

func TestNewRejectsBadInput(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Width = 0
	_, err := app.New(cfg, app.Host{Keys: input.NewStatic(), Size: window.Fixed{}}, nil)
	assert.ErrorIs(t, err, app.ErrInvalidConfig)

	_, err = app.New(app.DefaultConfig(), app.Host{}, nil)
	assert.Error(t, err)
}

func TestRunFrames(t *testing.T) {
	keys := input.NewStatic()
	a, _ := newApp(t, keys)

	require.NoError(t, a.RunFrames(1, 0))
	pos, err := a.Player()
	require.NoError(t, err)
	assert.Equal(t, scene.Vec2{X: 400, Y: 300}, pos)

	keys.Hold(input.KeyLeft)
	require.NoError(t, a.RunFrames(10, 0.1))
	pos, err = a.Player()
	require.NoError(t, err)
	assert.Equal(t, scene.Vec2{X: 32, Y: 300}, pos)
}

func TestHostSystemsRunFirst(t *testing.T) {
	var order []string
	keys := input.SourceFunc(func(input.Key) bool {
		order = append(order, "keys")
		return false
	})

	a, err := app.New(app.DefaultConfig(), app.Host{
		Keys: keys,
		Size: window.Fixed{Width: 800, Height: 600},
		Systems: []ecs.System{ecs.SystemFunc(func(*ecs.UpdateFrame) {
			order = append(order, "host")
		})},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, a.RunFrames(1, 0))
	require.NotEmpty(t, order)
	assert.Equal(t, "host", order[0])
}

func TestStepLogsAbort(t *testing.T) {
	a, logs := newApp(t, input.NewStatic())
	require.NoError(t, a.RunFrames(1, 0))

	a.Storage.Spawn(scene.Transform{}, scene.Player{})
	err := a.Step(0.1)
	assert.ErrorIs(t, err, ecs.ErrMultipleEntities)
	assert.Contains(t, logs.String(), "aborted")
}

func TestRun(t *testing.T) {
	a, logs := newApp(t, input.NewStatic(input.KeyUp))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, a.Run(ctx))

	pos, err := a.Player()
	require.NoError(t, err)
	assert.Greater(t, pos.Y, float32(300))
	assert.Contains(t, logs.String(), "running")
}

type bumpCounter struct{ n int }

func (b *bumpCounter) Bump() { b.n++ }

func TestEnableSound(t *testing.T) {
	keys := input.NewStatic(input.KeyRight)
	a, _ := newApp(t, keys)
	sink := &bumpCounter{}
	a.EnableSound(sink)

	require.NoError(t, a.RunFrames(60, 1.0/60))
	assert.Equal(t, 1, sink.n)
}
