package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ballgame/internal/input"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyLeft:   ebiten.KeyArrowLeft,
	input.KeyRight:  ebiten.KeyArrowRight,
	input.KeyUp:     ebiten.KeyArrowUp,
	input.KeyDown:   ebiten.KeyArrowDown,
	input.KeyA:      ebiten.KeyA,
	input.KeyD:      ebiten.KeyD,
	input.KeyW:      ebiten.KeyW,
	input.KeyS:      ebiten.KeyS,
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyQ:      ebiten.KeyQ,
}

// KeySource reads key state from ebiten. It is only valid inside the
// ebiten game loop.
type KeySource struct{}

func (KeySource) IsKeyPressed(key input.Key) bool {
	ek, ok := ebitenKeys[key]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(ek)
}
