package render_test

import (
	"testing"

	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/render"
	"github.com/plus3/ballgame/internal/scene"
	"github.com/plus3/ballgame/internal/window"
	"github.com/stretchr/testify/assert"
)

func TestProjection(t *testing.T) {
	proj := render.Projection{Camera: scene.Vec2{X: 400, Y: 300}, Width: 800, Height: 600}

	tests := []struct {
		name  string
		world scene.Vec2
		want  scene.Vec2
	}{
		{"camera position is the centre", scene.Vec2{X: 400, Y: 300}, scene.Vec2{X: 400, Y: 300}},
		{"world origin is bottom left", scene.Vec2{}, scene.Vec2{X: 0, Y: 600}},
		{"world top right", scene.Vec2{X: 800, Y: 600}, scene.Vec2{X: 800, Y: 0}},
		{"up moves up the screen", scene.Vec2{X: 400, Y: 350}, scene.Vec2{X: 400, Y: 250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, proj.ToScreen(tt.world))
		})
	}
}

func TestProjectionBox(t *testing.T) {
	proj := render.Projection{Camera: scene.Vec2{X: 400, Y: 300}, Width: 800, Height: 600}

	box := proj.Box(scene.Vec2{X: 768, Y: 32}, scene.PlayerSize)
	assert.Equal(t, render.Rect{X: 736, Y: 536, W: 64, H: 64}, box, "a confined sprite touches the bottom right corner")
}

func TestCameraProjection(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	w := &window.Primary{Width: 640, Height: 480}

	cameras := ecs.NewQuery[render.CameraView](storage)
	cameras.Execute()
	_, ok := render.CameraProjection(cameras, w)
	assert.False(t, ok)

	storage.Spawn(scene.Camera2D{}, scene.Transform{Translation: scene.Vec3{X: 320, Y: 240}})
	cameras.Execute()
	proj, ok := render.CameraProjection(cameras, w)
	assert.True(t, ok)
	assert.Equal(t, render.Projection{Camera: scene.Vec2{X: 320, Y: 240}, Width: 640, Height: 480}, proj)
}
