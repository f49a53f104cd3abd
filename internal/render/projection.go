// Package render draws the scene from the point of view of its 2D camera.
package render

import "github.com/plus3/ballgame/internal/scene"

// Projection maps world coordinates (y up, camera at the viewport centre)
// onto screen coordinates (y down, origin top left).
type Projection struct {
	Camera        scene.Vec2
	Width, Height float32
}

// ToScreen converts a world position to screen pixels.
func (p Projection) ToScreen(world scene.Vec2) scene.Vec2 {
	return scene.Vec2{
		X: world.X - p.Camera.X + p.Width/2,
		Y: p.Height/2 - (world.Y - p.Camera.Y),
	}
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Box returns the screen rectangle of a square of side size centred on world.
func (p Projection) Box(world scene.Vec2, size float32) Rect {
	c := p.ToScreen(world)
	return Rect{X: c.X - size/2, Y: c.Y - size/2, W: size, H: size}
}
