package layout

import "github.com/joral/gridboard/internal/grid"

// FindFree chooses an origin for a new width×height widget.
//
// A preferred origin wins immediately when its rect is in bounds and
// overlap-free. Otherwise the grid is scanned row-major (top to bottom,
// left to right within a row) and the first overlap-free origin wins; the
// scan order is what makes placement deterministic and top-left dense.
// On a grid with no free rect the search falls back to (0,0): the add
// proceeds with tolerated overlap rather than failing, and the host
// surfaces the overlap visually.
func (m *Model) FindFree(width, height int, preferred *grid.Point) grid.Rect {
	if preferred != nil {
		r := grid.Rect{X: preferred.X, Y: preferred.Y, Width: width, Height: height}
		if r.In(m.spec) && !m.OverlapsAny(r, "") {
			return r
		}
	}
	for y := 0; y+height <= m.spec.Rows; y++ {
		for x := 0; x+width <= m.spec.Columns; x++ {
			r := grid.Rect{X: x, Y: y, Width: width, Height: height}
			if !m.OverlapsAny(r, "") {
				return r
			}
		}
	}
	return grid.Rect{X: 0, Y: 0, Width: width, Height: height}
}
