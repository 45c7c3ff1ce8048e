package grid

import "math"

// PixelRect is a resolved surface-space rectangle, in the same units the
// host reports pointer and container coordinates in.
type PixelRect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Contains reports whether the surface coordinate (px, py) falls inside r.
func (r PixelRect) Contains(px, py float64) bool {
	return px >= r.Left && px < r.Left+r.Width &&
		py >= r.Top && py < r.Top+r.Height
}

// PixelToCell maps a surface coordinate to the cell under it. Coordinates
// outside the surface clamp to the nearest edge cell, so the mapping is
// total: every input resolves to a valid cell.
func (s Spec) PixelToCell(px, py float64) Point {
	stride := s.CellSize + s.Gap
	if stride <= 0 {
		return Point{}
	}
	col := int(math.Floor((px - s.Padding) / stride))
	row := int(math.Floor((py - s.Padding) / stride))
	return Point{
		X: clampInt(col, 0, s.Columns-1),
		Y: clampInt(row, 0, s.Rows-1),
	}
}

// CellRectToPixelRect resolves a cell rect to its surface-space rectangle.
// A rect spanning n cells covers n cell sizes plus the n-1 gaps between
// them; the leading padding offsets the whole grid.
func (s Spec) CellRectToPixelRect(r Rect) PixelRect {
	stride := s.CellSize + s.Gap
	return PixelRect{
		Left:   s.Padding + float64(r.X)*stride,
		Top:    s.Padding + float64(r.Y)*stride,
		Width:  float64(r.Width)*s.CellSize + float64(r.Width-1)*s.Gap,
		Height: float64(r.Height)*s.CellSize + float64(r.Height-1)*s.Gap,
	}
}
