package grid

import "testing"

func TestPresetByName(t *testing.T) {
	p, ok := PresetByName("12x12")
	if !ok {
		t.Fatalf("12x12 should exist")
	}
	if p.Columns != 12 || p.Rows != 12 {
		t.Fatalf("12x12 = %dx%d, want 12x12", p.Columns, p.Rows)
	}
	if _, ok := PresetByName("3x3"); ok {
		t.Fatalf("3x3 should not exist")
	}
}

func TestNextPresetCycles(t *testing.T) {
	seen := map[string]bool{}
	name := DefaultPreset().Name
	for i := 0; i < len(Presets()); i++ {
		seen[name] = true
		name = NextPreset(name).Name
	}
	if len(seen) != len(Presets()) {
		t.Fatalf("cycle visited %d presets, want %d", len(seen), len(Presets()))
	}
	if name != DefaultPreset().Name {
		t.Fatalf("cycle should return to %q, got %q", DefaultPreset().Name, name)
	}
}

func TestNextPresetUnknownRestarts(t *testing.T) {
	if got := NextPreset("bogus").Name; got != Presets()[0].Name {
		t.Fatalf("NextPreset(bogus) = %q, want %q", got, Presets()[0].Name)
	}
}

func TestOverlapsOpenInterval(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 2, Height: 2}

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", a, true},
		{"partial", Rect{X: 1, Y: 1, Width: 2, Height: 2}, true},
		{"contained", Rect{X: 0, Y: 0, Width: 1, Height: 1}, true},
		{"touching right edge", Rect{X: 2, Y: 0, Width: 2, Height: 2}, false},
		{"touching bottom edge", Rect{X: 0, Y: 2, Width: 2, Height: 2}, false},
		{"touching corner", Rect{X: 2, Y: 2, Width: 1, Height: 1}, false},
		{"disjoint", Rect{X: 4, Y: 4, Width: 1, Height: 1}, false},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Errorf("%s (reversed): Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestInBounds(t *testing.T) {
	s := Spec{Columns: 6, Rows: 8}

	if !(Rect{X: 0, Y: 0, Width: 6, Height: 8}).In(s) {
		t.Fatalf("full-grid rect should be in bounds")
	}
	if (Rect{X: 1, Y: 0, Width: 6, Height: 8}).In(s) {
		t.Fatalf("rect hanging off the right edge should be out of bounds")
	}
	if (Rect{X: -1, Y: 0, Width: 2, Height: 2}).In(s) {
		t.Fatalf("negative origin should be out of bounds")
	}
	if (Rect{X: 0, Y: 0, Width: 0, Height: 1}).In(s) {
		t.Fatalf("zero-width rect should be out of bounds")
	}
}

func TestPixelToCellClamps(t *testing.T) {
	s := Spec{Columns: 12, Rows: 12, CellSize: 10, Gap: 1, Padding: 2}

	if got := s.PixelToCell(2, 2); got != (Point{X: 0, Y: 0}) {
		t.Fatalf("origin cell = %+v, want (0,0)", got)
	}
	// one stride in lands in cell 1
	if got := s.PixelToCell(2+11, 2); got != (Point{X: 1, Y: 0}) {
		t.Fatalf("second cell = %+v, want (1,0)", got)
	}
	// far outside the surface clamps to the last cell
	if got := s.PixelToCell(10000, 10000); got != (Point{X: 11, Y: 11}) {
		t.Fatalf("overshoot = %+v, want (11,11)", got)
	}
	// negative coordinates clamp to the first cell
	if got := s.PixelToCell(-50, -50); got != (Point{X: 0, Y: 0}) {
		t.Fatalf("undershoot = %+v, want (0,0)", got)
	}
}

func TestCellRectToPixelRect(t *testing.T) {
	s := Spec{Columns: 12, Rows: 12, CellSize: 10, Gap: 1, Padding: 2}
	r := Rect{X: 1, Y: 2, Width: 3, Height: 2}
	px := s.CellRectToPixelRect(r)

	if px.Left != 2+11 || px.Top != 2+22 {
		t.Fatalf("origin = (%v,%v), want (13,24)", px.Left, px.Top)
	}
	// 3 cells and the 2 gaps between them
	if px.Width != 3*10+2*1 {
		t.Fatalf("width = %v, want 32", px.Width)
	}
	if px.Height != 2*10+1 {
		t.Fatalf("height = %v, want 21", px.Height)
	}
}

func TestPixelRoundTrip(t *testing.T) {
	s := Spec{Columns: 16, Rows: 20, CellSize: 8, Gap: 2, Padding: 4}
	for x := 0; x < s.Columns; x++ {
		for y := 0; y < s.Rows; y++ {
			px := s.CellRectToPixelRect(Rect{X: x, Y: y, Width: 1, Height: 1})
			if got := s.PixelToCell(px.Left, px.Top); got != (Point{X: x, Y: y}) {
				t.Fatalf("cell (%d,%d) round-tripped to %+v", x, y, got)
			}
		}
	}
}

func TestCellSizeForLimitingAxis(t *testing.T) {
	p := Preset{Name: "12x12", Columns: 12, Rows: 12}

	// width-limited: tall narrow container
	got := CellSizeFor(146, 1000, p, 1, 2)
	// (146 - 4 - 11) / 12 ≈ 10.9 → 11
	if got != 11 {
		t.Fatalf("width-limited cell size = %v, want 11", got)
	}

	// height-limited: short wide container
	got = CellSizeFor(1000, 146, p, 1, 2)
	if got != 11 {
		t.Fatalf("height-limited cell size = %v, want 11", got)
	}
}

func TestCellSizeForFloor(t *testing.T) {
	p := Preset{Name: "16x20", Columns: 16, Rows: 20}
	if got := CellSizeFor(10, 10, p, 1, 2); got != MinCellSize {
		t.Fatalf("tiny container cell size = %v, want floor %v", got, MinCellSize)
	}
}

func TestSpecForGridFitsContainer(t *testing.T) {
	p := DefaultPreset()
	s := SpecFor(240, 120, p, 1, 2)

	gridW := float64(s.Columns)*s.CellSize + float64(s.Columns-1)*s.Gap + 2*s.Padding
	gridH := float64(s.Rows)*s.CellSize + float64(s.Rows-1)*s.Gap + 2*s.Padding
	if s.CellSize > MinCellSize && (gridW > 240+float64(s.Columns) || gridH > 120+float64(s.Rows)) {
		t.Fatalf("grid %vx%v does not fit container 240x120 (cell %v)", gridW, gridH, s.CellSize)
	}
}
