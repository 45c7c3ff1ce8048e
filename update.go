package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/joral/gridboard/internal/gesture"
	"github.com/joral/gridboard/internal/grid"
	"github.com/joral/gridboard/internal/layout"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.recomputeGrid()
		m.picker.SetSize(min(40, m.width-6), min(14, m.height-6))
		return m, nil

	case tickMsg:
		// keeps live widget bodies (clock) current
		return m, tickCmd()

	case savedMsg:
		if msg.err != nil {
			m.status, m.statusErr = fmt.Sprintf("save failed: %v", msg.err), true
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Pointer events
// ---------------------------------------------------------------------------

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.picking {
		return m, nil
	}
	// surface coordinates: the header row sits above the grid
	px, py := float64(msg.X), float64(msg.Y-headerHeight)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		id, handle, ok := m.widgetAt(px, py)
		if !ok {
			m.selected = ""
			return m, nil
		}
		m.selected = id
		kind := gesture.Move
		if handle {
			kind = gesture.Resize
		}
		if err := m.ctrl.PointerDown(id, kind, px, py); err != nil {
			m.status, m.statusErr = err.Error(), true
		}
		return m, nil

	case tea.MouseActionMotion:
		m.ctrl.PointerMove(px, py)
		return m, m.flushCommits()

	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Keyboard
// ---------------------------------------------------------------------------

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		on := !m.ctrl.EditMode()
		m.ctrl.SetEditMode(on)
		if on {
			m.status, m.statusErr = "edit mode: drag to move, grab the corner to resize", false
		} else {
			m.status, m.statusErr = "", false
		}
		return m, nil

	case key.Matches(msg, m.keys.Preset):
		return m.switchPreset()

	case key.Matches(msg, m.keys.Add):
		if !m.ctrl.EditMode() {
			return m, nil
		}
		m.picking = true
		m.picker.ResetFilter()
		m.picker.ResetSelected()
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if !m.ctrl.EditMode() || m.selected == "" {
			return m, nil
		}
		id := m.selected
		m.ctrl.WidgetRemoved(id)
		if m.board.Remove(id) {
			m.selected = ""
			return m, m.persistCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if !m.ctrl.EditMode() {
			return m, nil
		}
		m.board = buildDefaultBoard(m.spec, m.reg)
		m.rebuildController()
		m.selected = ""
		m.status, m.statusErr = "layout reset", false
		return m, m.persistCmd()

	case key.Matches(msg, m.keys.NextWidget):
		if !m.ctrl.EditMode() {
			return m, nil
		}
		m.selected = m.nextWidget(m.selected)
		return m, nil

	case key.Matches(msg, m.keys.Nudge):
		if m.selected == "" {
			return m, nil
		}
		dx, dy := 0, 0
		switch msg.String() {
		case "up":
			dy = -1
		case "down":
			dy = 1
		case "left":
			dx = -1
		case "right":
			dx = 1
		}
		m.ctrl.Nudge(m.selected, dx, dy)
		return m, m.flushCommits()

	case key.Matches(msg, m.keys.Close):
		m.selected = ""
		m.status, m.statusErr = "", false
		return m, nil
	}
	return m, nil
}

func (m model) nextWidget(after string) string {
	placements := m.board.Placements()
	if len(placements) == 0 {
		return ""
	}
	for i, p := range placements {
		if p.ID == after {
			return placements[(i+1)%len(placements)].ID
		}
	}
	return placements[0].ID
}

// ---------------------------------------------------------------------------
// Preset switching and widget add
// ---------------------------------------------------------------------------

// switchPreset cycles to the next preset and reloads the board through
// the configuration round trip, which re-clamps every widget against the
// new grid.
func (m model) switchPreset() (tea.Model, tea.Cmd) {
	next := grid.NextPreset(m.preset.Name)
	cfg := layout.ConfigurationFrom(m.board, next.Name)

	m.preset = next
	m.spec = grid.SpecFor(float64(m.width), float64(m.surfaceHeight()), next, m.cfg.Grid.Gap, m.cfg.Grid.Padding)
	board, err := cfg.Restore(m.spec, m.reg)
	if err != nil {
		// unreachable for widgets that made it onto the board
		m.status, m.statusErr = err.Error(), true
		return m, nil
	}
	m.board = board
	m.rebuildController()
	if _, ok := board.Get(m.selected); !ok {
		m.selected = ""
	}
	m.status, m.statusErr = fmt.Sprintf("grid preset: %s", next.Name), false
	return m, m.persistCmd()
}

func (m model) addWidget(kind string) (tea.Model, tea.Cmd) {
	ks, err := m.reg.Lookup(kind)
	if err != nil {
		m.status, m.statusErr = err.Error(), true
		return m, nil
	}
	w := min(ks.Default.Width, m.spec.Columns)
	h := min(ks.Default.Height, m.spec.Rows)
	p := layout.Placement{
		ID:   uuid.NewString(),
		Kind: kind,
		Rect: m.board.FindFree(w, h, nil),
	}
	if !m.board.Add(p) {
		return m, nil
	}
	m.selected = p.ID
	m.status, m.statusErr = fmt.Sprintf("added %s", ks.Title), false
	return m, m.persistCmd()
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.picking = false
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.picking = false
		if item, ok := m.picker.SelectedItem().(kindItem); ok {
			return m.addWidget(item.spec.Kind)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}
