// Package layout owns the canonical collection of widget placements: the
// model itself, the free-rect search used when adding widgets, the kind
// registry, and the translation to and from the persisted configuration
// shape. Mutations are synchronous and defensively no-op on invalid
// input; expected conditions never raise.
package layout

import (
	"slices"

	"github.com/joral/gridboard/internal/grid"
)

// Placement is one widget's position on the grid. Settings is an opaque
// key-value bag interpreted by the host per kind; the engine round-trips
// it untouched.
type Placement struct {
	ID       string
	Kind     string
	Rect     grid.Rect
	Settings map[string]string
}

// Model is the single writable collection of placements. The host holds
// the sole reference and mutates it only through commands here and in the
// gesture controller, so there is no hidden shared state.
type Model struct {
	spec       grid.Spec
	placements []Placement
}

// NewModel returns an empty model bound to spec.
func NewModel(spec grid.Spec) *Model {
	return &Model{spec: spec}
}

// Spec returns the grid the model is currently validating against.
func (m *Model) Spec() grid.Spec { return m.spec }

// SetSpec swaps in a recomputed grid spec. Existing placements are left
// alone; re-clamping against a different preset happens through the
// configuration round trip, not here.
func (m *Model) SetSpec(spec grid.Spec) { m.spec = spec }

// Placements returns the placements in insertion order. The slice is a
// copy; the elements share the Settings maps.
func (m *Model) Placements() []Placement {
	out := make([]Placement, len(m.placements))
	copy(out, m.placements)
	return out
}

// Len returns the number of placements.
func (m *Model) Len() int { return len(m.placements) }

// Get returns the placement for id.
func (m *Model) Get(id string) (Placement, bool) {
	for _, p := range m.placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// Add appends a placement. Rejected as a no-op when the id is empty,
// already present, or the rect is out of bounds.
func (m *Model) Add(p Placement) bool {
	if p.ID == "" {
		return false
	}
	if _, exists := m.Get(p.ID); exists {
		return false
	}
	if !p.Rect.In(m.spec) {
		return false
	}
	m.placements = append(m.placements, p)
	return true
}

// Remove deletes the placement for id, reporting whether it existed.
// Cancelling any gesture session that references id is the caller's
// responsibility (the controller watches removals).
func (m *Model) Remove(id string) bool {
	for i, p := range m.placements {
		if p.ID == id {
			m.placements = slices.Delete(m.placements, i, i+1)
			return true
		}
	}
	return false
}

// Update replaces the rect for id. Rejected as a no-op when the id is
// unknown or the rect is out of bounds. Overlap is deliberately not
// checked: the gesture layer tolerates transient and terminal overlap so
// drags stay continuous.
func (m *Model) Update(id string, rect grid.Rect) bool {
	if !rect.In(m.spec) {
		return false
	}
	for i, p := range m.placements {
		if p.ID == id {
			m.placements[i].Rect = rect
			return true
		}
	}
	return false
}

// OverlapsAny reports whether rect overlaps any placement other than the
// one identified by excludeID.
func (m *Model) OverlapsAny(rect grid.Rect, excludeID string) bool {
	for _, p := range m.placements {
		if p.ID == excludeID {
			continue
		}
		if rect.Overlaps(p.Rect) {
			return true
		}
	}
	return false
}

// Overlapped returns the ids of placements that currently overlap at
// least one sibling. Used by the host to surface tolerated overlap.
func (m *Model) Overlapped() []string {
	var out []string
	for _, p := range m.placements {
		if m.OverlapsAny(p.Rect, p.ID) {
			out = append(out, p.ID)
		}
	}
	return out
}
