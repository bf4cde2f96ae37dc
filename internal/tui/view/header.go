package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/calpick/internal/calendar"
)

// HeaderState holds what the month header needs to render.
type HeaderState struct {
	Month       time.Month
	Year        int
	PrevPressed bool
	NextPressed bool

	TitleStyle        lipgloss.Style
	ArrowStyle        lipgloss.Style
	ArrowPressedStyle lipgloss.Style
	LabelStyle        lipgloss.Style
}

// HeaderTitle returns the "Month Year" caption.
func HeaderTitle(month time.Month, year int) string {
	return calendar.MonthName(month) + " " + strconv.Itoa(year)
}

// RenderHeader renders the arrow/title row followed by the weekday labels.
func RenderHeader(s HeaderState) string {
	prev := s.ArrowStyle
	if s.PrevPressed {
		prev = s.ArrowPressedStyle
	}
	next := s.ArrowStyle
	if s.NextPressed {
		next = s.ArrowPressedStyle
	}

	titleWidth := GridWidth - 2*ArrowWidth
	title := ansi.Truncate(HeaderTitle(s.Month, s.Year), titleWidth, "…")
	title = s.TitleStyle.Width(titleWidth).Align(lipgloss.Center).Render(title)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		prev.Width(ArrowWidth).Align(lipgloss.Center).Render("<"),
		title,
		next.Width(ArrowWidth).Align(lipgloss.Center).Render(">"),
	)

	return top + "\n" + RenderWeekdayLabels(s.LabelStyle)
}

// RenderWeekdayLabels renders SUN..SAT aligned with the grid columns.
func RenderWeekdayLabels(style lipgloss.Style) string {
	var b strings.Builder
	cell := style.Width(CellWidth).Align(lipgloss.Center)
	for _, label := range calendar.WeekdayHeaders() {
		b.WriteString(cell.Render(label))
	}
	return b.String()
}
