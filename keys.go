package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Edit       key.Binding
	Add        key.Binding
	Remove     key.Binding
	Preset     key.Binding
	Reset      key.Binding
	NextWidget key.Binding
	Nudge      key.Binding
	Close      key.Binding
	Select     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit mode")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add widget")),
		Remove:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Preset:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Reset:      key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset layout")),
		NextWidget: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		Nudge:      key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "nudge")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}

// viewBindings returns the footer hints for the current mode.
func (m model) viewBindings() []key.Binding {
	if m.picking {
		return []key.Binding{m.keys.Select, m.keys.Close, m.keys.Quit}
	}
	if m.ctrl.EditMode() {
		return []key.Binding{m.keys.Edit, m.keys.Add, m.keys.Remove, m.keys.NextWidget, m.keys.Nudge, m.keys.Preset, m.keys.Reset, m.keys.Quit}
	}
	return []key.Binding{m.keys.Edit, m.keys.Preset, m.keys.Quit}
}
