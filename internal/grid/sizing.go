package grid

import "math"

// MinCellSize is the floor for the derived cell size, in surface units.
// On a container too small for the active preset the grid overflows
// instead of collapsing below this.
const MinCellSize = 2.0

// CellSizeFor computes the responsive cell size for a container. Each axis
// yields a candidate (available space minus inter-cell gaps, divided by
// the cell count); taking the smaller candidate guarantees the whole grid
// fits both axes, at the cost of slack on the non-limiting axis.
func CellSizeFor(containerWidth, containerHeight float64, p Preset, gap, padding float64) float64 {
	availWidth := containerWidth - 2*padding
	availHeight := containerHeight - 2*padding
	fromWidth := (availWidth - float64(p.Columns-1)*gap) / float64(p.Columns)
	fromHeight := (availHeight - float64(p.Rows-1)*gap) / float64(p.Rows)
	return math.Round(math.Max(MinCellSize, math.Min(fromWidth, fromHeight)))
}

// SpecFor resolves the full grid spec for a container and preset. Called
// on every container-resize notification and preset change.
func SpecFor(containerWidth, containerHeight float64, p Preset, gap, padding float64) Spec {
	return Spec{
		Columns:  p.Columns,
		Rows:     p.Rows,
		CellSize: CellSizeFor(containerWidth, containerHeight, p, gap, padding),
		Gap:      gap,
		Padding:  padding,
	}
}
