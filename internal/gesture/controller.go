// Package gesture is the interactive state machine over the layout
// model: pointer events come in, clamped rect mutations go out. It knows
// nothing about rendering, so it is unit-testable with synthetic pointer
// coordinates.
package gesture

import (
	"github.com/joral/gridboard/internal/grid"
	"github.com/joral/gridboard/internal/layout"
)

// Kind selects what a pointer-down starts.
type Kind int

const (
	// Move relocates the widget under the pointer.
	Move Kind = iota
	// Resize grows or shrinks it from the resize handle.
	Resize
)

// Handle identifies the edge a resize gesture is anchored to. Only the
// bottom-right handle exists; the type keeps the session shape explicit.
type Handle int

// HandleBottomRight resizes by moving the rect's bottom-right corner.
const HandleBottomRight Handle = iota

type phase int

const (
	phaseIdle phase = iota
	phaseDragging
	phaseResizing
)

// Controller runs at most one interaction session at a time. A pointer
// down while a session is active is ignored, which keeps single-writer
// exclusivity over the in-flight mutation. All methods are synchronous
// and expect to run on the host's event loop.
type Controller struct {
	model *layout.Model
	reg   *layout.Registry

	spec   grid.Spec
	preset string
	edit   bool

	phase  phase
	widget string
	anchor grid.Point // drag: pointer cell minus widget origin at down
	handle Handle
	sizes  layout.KindSpec // resolved at down for the active widget's kind

	// OnCommit, when set, receives the full configuration after every
	// applied rect change. Persistence cadence is the host's concern.
	OnCommit func(layout.Configuration)
}

// New returns an idle controller over model.
func New(model *layout.Model, reg *layout.Registry, preset string, spec grid.Spec) *Controller {
	return &Controller{model: model, reg: reg, preset: preset, spec: spec}
}

// SetGrid swaps in a recomputed spec (container resize or preset change).
// An active session survives; the next pointer move simply resolves
// against the new cell size, which can produce a visible jump.
func (c *Controller) SetGrid(preset string, spec grid.Spec) {
	c.preset = preset
	c.spec = spec
	c.model.SetSpec(spec)
}

// SetEditMode gates gestures. Leaving edit mode cancels any session.
func (c *Controller) SetEditMode(on bool) {
	c.edit = on
	if !on {
		c.Cancel()
	}
}

// EditMode reports whether gestures are currently accepted.
func (c *Controller) EditMode() bool { return c.edit }

// Active reports whether a session is open.
func (c *Controller) Active() bool { return c.phase != phaseIdle }

// ActiveWidget returns the id the open session references, or "".
func (c *Controller) ActiveWidget() string {
	if c.phase == phaseIdle {
		return ""
	}
	return c.widget
}

// PointerDown opens a session on widgetID at surface coordinate (px, py).
// Ignored (nil error, no session) outside edit mode, while another
// session is open, or for an unknown widget id. An unregistered kind is a
// contract error and is returned rather than tolerated.
func (c *Controller) PointerDown(widgetID string, kind Kind, px, py float64) error {
	if !c.edit || c.phase != phaseIdle {
		return nil
	}
	p, ok := c.model.Get(widgetID)
	if !ok {
		return nil
	}
	sizes, err := c.reg.Lookup(p.Kind)
	if err != nil {
		return err
	}

	c.widget = widgetID
	c.sizes = sizes
	cell := c.spec.PixelToCell(px, py)
	switch kind {
	case Resize:
		c.phase = phaseResizing
		c.handle = HandleBottomRight
	default:
		c.phase = phaseDragging
		// grab offset inside the widget, clamped in case the host hit-test
		// and our cell resolution disagree at the edges
		c.anchor = grid.Point{
			X: clampInt(cell.X-p.Rect.X, 0, p.Rect.Width-1),
			Y: clampInt(cell.Y-p.Rect.Y, 0, p.Rect.Height-1),
		}
	}
	return nil
}

// PointerMove advances the open session to the pointer at (px, py),
// reporting whether a rect change was committed. Coordinates outside the
// container clamp to the nearest cell; out-of-range proposals clamp to
// bounds and the kind's size envelope before the model sees them.
func (c *Controller) PointerMove(px, py float64) bool {
	if c.phase == phaseIdle {
		return false
	}
	p, ok := c.model.Get(c.widget)
	if !ok {
		// widget vanished mid-gesture
		c.Cancel()
		return false
	}
	cell := c.spec.PixelToCell(px, py)

	next := p.Rect
	switch c.phase {
	case phaseDragging:
		next.X = clampInt(cell.X-c.anchor.X, 0, c.spec.Columns-p.Rect.Width)
		next.Y = clampInt(cell.Y-c.anchor.Y, 0, c.spec.Rows-p.Rect.Height)
	case phaseResizing:
		width := clampInt(cell.X-p.Rect.X+1, c.sizes.Min.Width, c.sizes.Max.Width)
		height := clampInt(cell.Y-p.Rect.Y+1, c.sizes.Min.Height, c.sizes.Max.Height)
		next.Width = min(width, c.spec.Columns-p.Rect.X)
		next.Height = min(height, c.spec.Rows-p.Rect.Y)
	}
	if next == p.Rect {
		return false
	}
	if !c.model.Update(c.widget, next) {
		return false
	}
	c.emit()
	return true
}

// PointerUp closes the session. There is no separate commit step: every
// move already applied its change, so this only returns to idle.
func (c *Controller) PointerUp() {
	c.phase = phaseIdle
	c.widget = ""
}

// Cancel aborts any session without further mutation.
func (c *Controller) Cancel() {
	c.phase = phaseIdle
	c.widget = ""
}

// WidgetRemoved tells the controller a widget is gone; a session
// referencing it is cancelled.
func (c *Controller) WidgetRemoved(id string) {
	if c.phase != phaseIdle && c.widget == id {
		c.Cancel()
	}
}

// Nudge moves a widget one step per axis from the keyboard. It shares the
// drag clamp path: bounds-clamped, edit-mode gated, ignored while a
// pointer session is open, and committed through the model with the same
// re-emit.
func (c *Controller) Nudge(id string, dx, dy int) bool {
	if !c.edit || c.phase != phaseIdle {
		return false
	}
	p, ok := c.model.Get(id)
	if !ok {
		return false
	}
	next := p.Rect
	next.X = clampInt(p.Rect.X+dx, 0, c.spec.Columns-p.Rect.Width)
	next.Y = clampInt(p.Rect.Y+dy, 0, c.spec.Rows-p.Rect.Height)
	if next == p.Rect || !c.model.Update(id, next) {
		return false
	}
	c.emit()
	return true
}

func (c *Controller) emit() {
	if c.OnCommit != nil {
		c.OnCommit(layout.ConfigurationFrom(c.model, c.preset))
	}
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
