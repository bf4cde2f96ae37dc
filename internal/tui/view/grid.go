package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/calpick/internal/calendar"
)

// CellStyles holds the styles for each kind of day cell. All styles are
// expected to have no width set; the grid applies CellWidth.
type CellStyles struct {
	Day      lipgloss.Style
	Outside  lipgloss.Style
	Weekend  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
}

// GridState holds the cells to render and the keyboard focus.
type GridState struct {
	Cells     []calendar.Cell
	Focus     calendar.Date
	ShowFocus bool
	Styles    CellStyles
}

// CellStyle picks the style for a cell. A selected date wins over today,
// today wins over the outside-month and weekend tints. Focus only changes the
// background of unselected cells.
func CellStyle(cell calendar.Cell, focused bool, styles CellStyles) lipgloss.Style {
	var style lipgloss.Style
	switch {
	case cell.IsSelected:
		return styles.Selected
	case cell.IsToday:
		style = styles.Today
	case !cell.InViewedMonth:
		style = styles.Outside
	case isWeekend(cell.Date.Weekday()):
		style = styles.Weekend
	default:
		style = styles.Day
	}
	if focused {
		style = style.Background(styles.Focused.GetBackground())
	}
	return style
}

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// RenderGrid renders the six week rows.
func RenderGrid(s GridState) string {
	rows := make([]string, 0, calendar.GridWeeks)
	var b strings.Builder
	for i, cell := range s.Cells {
		focused := s.ShowFocus && calendar.SameDay(cell.Date, s.Focus)
		style := CellStyle(cell, focused, s.Styles).Width(CellWidth).Align(lipgloss.Center)
		b.WriteString(style.Render(strconv.Itoa(cell.Date.Day)))
		if (i+1)%calendar.DaysPerWeek == 0 {
			rows = append(rows, b.String())
			b.Reset()
		}
	}
	return strings.Join(rows, "\n")
}
