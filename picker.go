package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joral/gridboard/internal/layout"
)

// ---------------------------------------------------------------------------
// Widget-kind picker (implements list.Item)
// ---------------------------------------------------------------------------

type kindItem struct {
	spec layout.KindSpec
}

func (k kindItem) Title() string       { return k.spec.Title }
func (k kindItem) Description() string { return "" }
func (k kindItem) FilterValue() string { return k.spec.Title }

type kindDelegate struct{}

func (d kindDelegate) Height() int  { return 1 }
func (d kindDelegate) Spacing() int { return 0 }
func (d kindDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d kindDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(kindItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = lipgloss.NewStyle().Foreground(colorAccent).Render("> ")
	}
	size := fmt.Sprintf("%d×%d", entry.spec.Default.Width, entry.spec.Default.Height)
	line := fmt.Sprintf("%s%s %s", prefix, entry.spec.Title,
		lipgloss.NewStyle().Foreground(colorOverlay0).Render(size))
	fmt.Fprint(w, padRight(line, m.Width()))
}

func newKindPicker(reg *layout.Registry) list.Model {
	kinds := reg.Kinds()
	items := make([]list.Item, 0, len(kinds))
	for _, k := range kinds {
		items = append(items, kindItem{spec: k})
	}
	l := list.New(items, kindDelegate{}, 36, 12)
	l.Title = "Add widget"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	return l
}
