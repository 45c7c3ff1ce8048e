package layout

import (
	"testing"

	"github.com/joral/gridboard/internal/grid"
)

func spec6x8() grid.Spec {
	return grid.Spec{Columns: 6, Rows: 8, CellSize: 10, Gap: 1, Padding: 2}
}

func spec12x12() grid.Spec {
	return grid.Spec{Columns: 12, Rows: 12, CellSize: 10, Gap: 1, Padding: 2}
}

func TestAddRejectsInvalid(t *testing.T) {
	m := NewModel(spec6x8())

	if m.Add(Placement{ID: "", Kind: "clock", Rect: grid.Rect{Width: 2, Height: 2}}) {
		t.Fatalf("empty id should be rejected")
	}
	if !m.Add(Placement{ID: "a", Kind: "clock", Rect: grid.Rect{Width: 2, Height: 2}}) {
		t.Fatalf("valid add should succeed")
	}
	if m.Add(Placement{ID: "a", Kind: "clock", Rect: grid.Rect{X: 3, Width: 2, Height: 2}}) {
		t.Fatalf("duplicate id should be rejected")
	}
	if m.Add(Placement{ID: "b", Kind: "clock", Rect: grid.Rect{X: 5, Width: 2, Height: 2}}) {
		t.Fatalf("out-of-bounds add should be rejected")
	}
	if m.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.Len())
	}
}

func TestUpdateBoundsOnly(t *testing.T) {
	m := NewModel(spec6x8())
	m.Add(Placement{ID: "a", Kind: "clock", Rect: grid.Rect{X: 0, Y: 0, Width: 2, Height: 2}})
	m.Add(Placement{ID: "b", Kind: "clock", Rect: grid.Rect{X: 3, Y: 0, Width: 2, Height: 2}})

	// out of bounds: rejected, rect unchanged
	if m.Update("a", grid.Rect{X: 5, Y: 0, Width: 2, Height: 2}) {
		t.Fatalf("out-of-bounds update should be rejected")
	}
	got, _ := m.Get("a")
	if got.Rect != (grid.Rect{X: 0, Y: 0, Width: 2, Height: 2}) {
		t.Fatalf("rect mutated by rejected update: %+v", got.Rect)
	}

	// unknown id: rejected
	if m.Update("zz", grid.Rect{X: 0, Y: 0, Width: 2, Height: 2}) {
		t.Fatalf("unknown id update should be rejected")
	}

	// overlap is not checked here: moving a onto b commits
	if !m.Update("a", grid.Rect{X: 3, Y: 0, Width: 2, Height: 2}) {
		t.Fatalf("overlapping update should commit")
	}
	if ids := m.Overlapped(); len(ids) != 2 {
		t.Fatalf("overlapped ids = %v, want both widgets", ids)
	}
}

func TestRemove(t *testing.T) {
	m := NewModel(spec6x8())
	m.Add(Placement{ID: "a", Kind: "clock", Rect: grid.Rect{Width: 2, Height: 2}})

	if !m.Remove("a") {
		t.Fatalf("remove of existing id should report true")
	}
	if m.Remove("a") {
		t.Fatalf("second remove should report false")
	}
	if m.Len() != 0 {
		t.Fatalf("len = %d, want 0", m.Len())
	}
}

func TestPlacementsPreserveOrder(t *testing.T) {
	m := NewModel(spec12x12())
	for _, id := range []string{"c", "a", "b"} {
		m.Add(Placement{ID: id, Kind: "clock", Rect: m.FindFree(2, 2, nil)})
	}
	got := m.Placements()
	if got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("order = %s,%s,%s, want c,a,b", got[0].ID, got[1].ID, got[2].ID)
	}
}
