package audio

import (
	"strings"

	"github.com/plus3/ballgame/internal/scene"
)

// Edges is a set of window edges.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeTop
)

// Touching returns the edges a box of side size centred on pos rests
// against inside a width x height window, in world coordinates (y up).
func Touching(pos scene.Vec2, width, height, size float32) Edges {
	half := size / 2
	var e Edges
	if pos.X <= half {
		e |= EdgeLeft
	}
	if pos.X >= width-half {
		e |= EdgeRight
	}
	if pos.Y <= half {
		e |= EdgeBottom
	}
	if pos.Y >= height-half {
		e |= EdgeTop
	}
	return e
}

func (e Edges) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, edge := range []struct {
		bit  Edges
		name string
	}{{EdgeLeft, "left"}, {EdgeRight, "right"}, {EdgeBottom, "bottom"}, {EdgeTop, "top"}} {
		if e&edge.bit != 0 {
			parts = append(parts, edge.name)
		}
	}
	return strings.Join(parts, "|")
}
