package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballgame/internal/render"
)

// Each terminal cell stands for CellWidth x CellHeight window pixels, so
// an 80x24 terminal is a 640x384 window.
const (
	CellWidth  = 8
	CellHeight = 16
)

// screenSize is a window.Source measuring the terminal.
type screenSize struct {
	screen tcell.Screen
}

func (s screenSize) Size() (int, int) {
	cols, rows := s.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

// CellRect returns the cells covered by r, clipped to a cols x rows grid.
// x1 and y1 are exclusive.
func CellRect(r render.Rect, cols, rows int) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(float64(r.X) / CellWidth))
	y0 = int(math.Floor(float64(r.Y) / CellHeight))
	x1 = int(math.Ceil(float64(r.X+r.W) / CellWidth))
	y1 = int(math.Ceil(float64(r.Y+r.H) / CellHeight))

	x0, x1 = clamp(x0, 0, cols), clamp(x1, 0, cols)
	y0, y1 = clamp(y0, 0, rows), clamp(y1, 0, rows)
	return x0, y0, max(x1, x0), max(y1, y0)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
