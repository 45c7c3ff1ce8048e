package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/joral/gridboard/internal/config"
	"github.com/joral/gridboard/internal/gesture"
	"github.com/joral/gridboard/internal/grid"
	"github.com/joral/gridboard/internal/layout"
	"github.com/joral/gridboard/internal/store"
)

const appName = "Gridboard"

// fixed chrome rows above and below the grid surface
const (
	headerHeight = 1
	footerHeight = 1
)

// defaultKinds seed a fresh board in this order.
var defaultKinds = []string{"clock", "sparkline", "counter", "gauge"}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type savedMsg struct {
	err error
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// commitQueue collects the configurations the gesture controller emits
// during a single Update pass, so the value-typed model can turn them
// into one save command afterwards.
type commitQueue struct {
	pending []layout.Configuration
}

type model struct {
	cfg  config.Config
	repo *store.LayoutRepo
	reg  *layout.Registry

	preset  grid.Preset
	spec    grid.Spec
	board   *layout.Model
	ctrl    *gesture.Controller
	commits *commitQueue

	keys      keyMap
	width     int
	height    int
	selected  string
	picking   bool
	picker    list.Model
	status    string
	statusErr bool
}

func newModel(cfg config.Config, repo *store.LayoutRepo, reg *layout.Registry, preset grid.Preset, spec grid.Spec, board *layout.Model) model {
	m := model{
		cfg:     cfg,
		repo:    repo,
		reg:     reg,
		preset:  preset,
		spec:    spec,
		board:   board,
		commits: &commitQueue{},
		keys:    newKeyMap(),
		picker:  newKindPicker(reg),
	}
	m.rebuildController()
	return m
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

// rebuildController attaches a fresh gesture controller to the current
// board, preserving edit mode across board swaps (preset change, reset).
func (m *model) rebuildController() {
	edit := m.ctrl != nil && m.ctrl.EditMode()
	m.ctrl = gesture.New(m.board, m.reg, m.preset.Name, m.spec)
	m.ctrl.SetEditMode(edit)
	q := m.commits
	m.ctrl.OnCommit = func(cfg layout.Configuration) {
		q.pending = append(q.pending, cfg)
	}
}

func (m model) surfaceHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// recomputeGrid re-derives the cell size from the current container and
// preset and pushes the new spec to the controller and model.
func (m *model) recomputeGrid() {
	m.spec = grid.SpecFor(float64(m.width), float64(m.surfaceHeight()), m.preset, m.cfg.Grid.Gap, m.cfg.Grid.Padding)
	m.ctrl.SetGrid(m.preset.Name, m.spec)
}

// widgetAt hit-tests a surface coordinate against the placements, topmost
// (last drawn) first. handle reports whether the hit landed on the
// widget's bottom-right resize cell.
func (m model) widgetAt(px, py float64) (id string, handle bool, ok bool) {
	placements := m.board.Placements()
	for i := len(placements) - 1; i >= 0; i-- {
		p := placements[i]
		if !m.spec.CellRectToPixelRect(p.Rect).Contains(px, py) {
			continue
		}
		cell := m.spec.PixelToCell(px, py)
		handle = cell.X == p.Rect.X+p.Rect.Width-1 && cell.Y == p.Rect.Y+p.Rect.Height-1
		return p.ID, handle, true
	}
	return "", false, false
}

// buildDefaultBoard seeds a board with the default widget set, each
// placed by the free-rect search.
func buildDefaultBoard(spec grid.Spec, reg *layout.Registry) *layout.Model {
	board := layout.NewModel(spec)
	for _, kind := range defaultKinds {
		ks, err := reg.Lookup(kind)
		if err != nil {
			continue
		}
		w := min(ks.Default.Width, spec.Columns)
		h := min(ks.Default.Height, spec.Rows)
		board.Add(layout.Placement{
			ID:   uuid.NewString(),
			Kind: kind,
			Rect: board.FindFree(w, h, nil),
		})
	}
	return board
}

// ---------------------------------------------------------------------------
// Persistence
// ---------------------------------------------------------------------------

// saveCmd persists cfg fire-and-forget; the result comes back as savedMsg.
func (m model) saveCmd(cfg layout.Configuration) tea.Cmd {
	if !m.cfg.UI.Autosave {
		return nil
	}
	repo, name := m.repo, m.cfg.UI.Layout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return savedMsg{err: repo.Save(ctx, name, cfg)}
	}
}

// persistCmd saves the board as it stands now.
func (m model) persistCmd() tea.Cmd {
	return m.saveCmd(layout.ConfigurationFrom(m.board, m.preset.Name))
}

// flushCommits turns controller emissions from this Update pass into a
// single save of the latest configuration.
func (m model) flushCommits() tea.Cmd {
	if len(m.commits.pending) == 0 {
		return nil
	}
	cfg := m.commits.pending[len(m.commits.pending)-1]
	m.commits.pending = m.commits.pending[:0]
	return m.saveCmd(cfg)
}
