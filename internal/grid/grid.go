// Package grid holds the geometric core of the dashboard: grid presets,
// the resolved grid spec, and the pure pixel↔cell transforms everything
// else is built on. Nothing in here carries state or does I/O.
package grid

// Preset names a fixed (columns, rows) pair. Grid dimensions only ever
// come from the preset table; they are never free-form.
type Preset struct {
	Name    string
	Columns int
	Rows    int
}

var presetTable = []Preset{
	{Name: "6x8", Columns: 6, Rows: 8},
	{Name: "12x12", Columns: 12, Rows: 12},
	{Name: "16x10", Columns: 16, Rows: 10},
	{Name: "16x20", Columns: 16, Rows: 20},
}

// Presets returns the supported presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presetTable))
	copy(out, presetTable)
	return out
}

// PresetByName looks up a preset by its persisted name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range presetTable {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// DefaultPreset is the preset used when nothing is persisted yet.
func DefaultPreset() Preset {
	return presetTable[1] // 12x12
}

// NextPreset cycles to the preset after name, wrapping around. Unknown
// names restart at the first preset.
func NextPreset(name string) Preset {
	for i, p := range presetTable {
		if p.Name == name {
			return presetTable[(i+1)%len(presetTable)]
		}
	}
	return presetTable[0]
}

// Spec is a fully resolved grid: preset dimensions plus the derived cell
// size and the surface spacing it was computed against. CellSize is always
// derived by the sizing policy, never set directly.
type Spec struct {
	Columns  int
	Rows     int
	CellSize float64
	Gap      float64
	Padding  float64
}

// Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

// Size is a widget extent in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a cell-aligned region of the grid.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Origin returns the rect's top-left cell.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rect's extent.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Overlaps reports whether r and other share any cell area. The test is
// open-interval: rects that merely touch edges do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// In reports whether all four edges of r lie within the grid.
func (r Rect) In(s Spec) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.Width >= 1 && r.Height >= 1 &&
		r.X+r.Width <= s.Columns &&
		r.Y+r.Height <= s.Rows
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
