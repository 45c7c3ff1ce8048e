package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting…"
	}
	view := m.renderHeader() + "\n" + m.renderSurface() + "\n" + m.renderFooter()
	if m.picking {
		view = m.composePickerOverlay(view)
	}
	return view
}

func (m model) renderHeader() string {
	left := titleStyle.Render(appName) + headerStyle.Render(fmt.Sprintf("  %s · %d widgets", m.preset.Name, m.board.Len()))
	if m.ctrl.EditMode() {
		left += "  " + editBadgeStyle.Render("EDIT")
	}
	right := ""
	if m.status != "" {
		if m.statusErr {
			right = statusErrStyle.Render(m.status)
		} else {
			right = statusStyle.Render(m.status)
		}
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncate(left, m.width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderSurface composites every widget box onto a blank canvas at its
// resolved pixel rect, in model order so later widgets draw on top.
func (m model) renderSurface() string {
	surface := blankCanvas(m.width, m.surfaceHeight())

	overlapped := map[string]bool{}
	for _, id := range m.board.Overlapped() {
		overlapped[id] = true
	}

	for _, p := range m.board.Placements() {
		pr := m.spec.CellRectToPixelRect(p.Rect)
		box := m.renderWidgetBox(p, int(pr.Width), int(pr.Height), boxState{
			selected:   p.ID == m.selected,
			active:     p.ID == m.ctrl.ActiveWidget(),
			overlapped: overlapped[p.ID],
			editMode:   m.ctrl.EditMode(),
		})
		surface = overlayAt(surface, box, int(pr.Left), int(pr.Top), m.width, m.surfaceHeight())
	}
	return surface
}

func (m model) renderFooter() string {
	parts := make([]string, 0, 8)
	for _, b := range m.viewBindings() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerStyle.Render(" "+h.Desc))
	}
	footer := footerStyle.Render("") + strings.Join(parts, footerStyle.Render("  "))
	return padRight(footer, m.width)
}

func (m model) composePickerOverlay(base string) string {
	modal := modalStyle.Render(m.picker.View())
	lines := splitLines(modal)
	w := maxLineWidth(lines)
	h := len(lines)
	x := (m.width - w) / 2
	if x < 0 {
		x = 0
	}
	y := (m.height - h) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(base, modal, x, y, m.width, m.height)
}
