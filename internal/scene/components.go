// Package scene holds the ball scene: a camera and one keyboard-driven player
// sprite that is kept inside the window.
package scene

import (
	"math"

	"github.com/plus3/ballgame/internal/asset"
)

const (
	// PlayerSpeed is the player's speed in world units per second.
	PlayerSpeed = 500
	// PlayerSize is the side of the player's sprite box.
	PlayerSize = 64
	// PlayerSprite is the asset path of the player image.
	PlayerSprite = "sprites/ball_blue_large.png"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns v scaled to length 1. The zero vector is returned as is.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Vec3 is a position in world space. The scene only uses X and Y.
type Vec3 struct {
	X, Y, Z float32
}

// XY drops the Z component.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Transform places an entity in the world.
type Transform struct {
	Translation Vec3
}

// Player tags the entity controlled by the keyboard.
type Player struct{}

// Camera2D tags the entity the renderer views the world from.
type Camera2D struct{}

// Sprite draws an image centred on the entity's transform.
type Sprite struct {
	Image asset.Handle
	Size  float32
}
