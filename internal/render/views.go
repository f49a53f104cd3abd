package render

import (
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/scene"
	"github.com/plus3/ballgame/internal/window"
)

// CameraView selects the camera entity.
type CameraView struct {
	*scene.Camera2D
	*scene.Transform
}

// SpriteView selects every drawable entity.
type SpriteView struct {
	*scene.Sprite
	*scene.Transform
}

// CameraProjection returns the projection for the single camera, or false
// when there is no unique camera.
func CameraProjection(cameras *ecs.Query[CameraView], w *window.Primary) (Projection, bool) {
	_, camera, err := cameras.Single()
	if err != nil {
		return Projection{}, false
	}
	return Projection{
		Camera: camera.Translation.XY(),
		Width:  w.Width,
		Height: w.Height,
	}, true
}
