package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/joral/gridboard/internal/layout"
)

type boxState struct {
	selected   bool
	active     bool // the open gesture session references this widget
	overlapped bool
	editMode   bool
}

// renderWidgetBox draws one widget as a bordered pane of exactly
// width×height character cells, title in the top border, kind-specific
// body inside. In edit mode the bottom-right corner becomes the resize
// handle glyph.
func (m model) renderWidgetBox(p layout.Placement, width, height int, st boxState) string {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}

	border := colorSurface1
	switch {
	case st.active:
		border = colorActive
	case st.overlapped:
		border = colorWarning
	case st.selected:
		border = colorFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	boxTitleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(st.selected)

	title := p.Kind
	if ks, err := m.reg.Lookup(p.Kind); err == nil {
		title = ks.Title
	}

	innerWidth := width - 2
	titleText := " " + truncate(title, max(1, innerWidth-2)) + " "
	titleW := ansi.StringWidth(titleText)
	dashes := innerWidth - titleW
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		boxTitleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	corner := "╯"
	if st.editMode {
		corner = "◢"
	}
	bottom := borderStyle.Render("╰") +
		borderStyle.Render(strings.Repeat("─", innerWidth)) +
		borderStyle.Render(corner)

	innerHeight := height - 2
	bodyLines := splitLines(m.renderWidgetBody(p, innerWidth, innerHeight))
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(bodyLines) {
			line = bodyLines[i]
		}
		line = ansi.Truncate(line, innerWidth, "")
		rows = append(rows, v+padRight(line, innerWidth)+v)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// ---------------------------------------------------------------------------
// Widget bodies
// ---------------------------------------------------------------------------

// renderWidgetBody fills the box interior for one kind. The bodies are
// placeholder dashboard content: real chart data belongs to the host
// application embedding the engine, not to the layout itself.
func (m model) renderWidgetBody(p layout.Placement, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	var body string
	switch p.Kind {
	case "clock":
		body = renderClockBody(p, width, height)
	case "sparkline":
		body = renderSparklineBody(p, width, height)
	case "counter":
		body = renderCounterBody(p, width)
	case "notes":
		body = renderNotesBody(p, width)
	case "gauge":
		body = renderGaugeBody(p, width)
	case "calendar":
		body = renderCalendarBody(width)
	default:
		body = lipgloss.NewStyle().Foreground(colorOverlay0).Render(p.Kind)
	}
	return body
}

func renderClockBody(p layout.Placement, width, height int) string {
	now := time.Now()
	if tz, ok := p.Settings["tz"]; ok {
		if loc, err := time.LoadLocation(tz); err == nil {
			now = now.In(loc)
		}
	}
	clock := lipgloss.NewStyle().Bold(true).Foreground(colorTeal).Render(now.Format("15:04:05"))
	if height < 2 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, clock)
	}
	date := lipgloss.NewStyle().Foreground(colorSubtext0).Render(now.Format("Mon 02 Jan"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, clock) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, date)
}

func renderSparklineBody(p layout.Placement, width, height int) string {
	sl := sparkline.New(width, height,
		sparkline.WithStyle(lipgloss.NewStyle().Foreground(colorBlue)))
	// deterministic demo series seeded per widget so each instance
	// renders a distinct curve
	seed := float64(len(p.ID)%7 + 1)
	for i := 0; i < width*2; i++ {
		sl.Push(math.Sin(float64(i)/seed) + 1.2)
	}
	sl.Draw()
	return sl.View()
}

func renderCounterBody(p layout.Placement, width int) string {
	value := p.Settings["value"]
	if value == "" {
		value = "0"
	}
	label := p.Settings["label"]
	if label == "" {
		label = "count"
	}
	big := lipgloss.NewStyle().Bold(true).Foreground(colorPeach).Render(value)
	sub := lipgloss.NewStyle().Foreground(colorOverlay0).Render(label)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, big) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, sub)
}

func renderNotesBody(p layout.Placement, width int) string {
	text := p.Settings["text"]
	if text == "" {
		text = "press e to edit the layout"
	}
	return lipgloss.NewStyle().Width(width).Foreground(colorSubtext0).Render(text)
}

func renderGaugeBody(p layout.Placement, width int) string {
	percent := 62
	if v, ok := p.Settings["percent"]; ok {
		fmt.Sscanf(v, "%d", &percent)
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	barWidth := max(1, width-6)
	filled := barWidth * percent / 100
	bar := lipgloss.NewStyle().Foreground(colorGreen).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(colorSurface1).Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

func renderCalendarBody(width int) string {
	now := time.Now()
	header := lipgloss.NewStyle().Bold(true).Foreground(colorLavender).
		Render(now.Format("January 2006"))
	day := lipgloss.NewStyle().Foreground(colorText).
		Render(fmt.Sprintf("today: %s", now.Format("Mon 2")))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, header) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, day)
}
