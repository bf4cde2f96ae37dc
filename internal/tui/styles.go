// Package tui provides the terminal user interface for calpick.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/calpick/internal/tui/theme"
	"github.com/javiermolinar/calpick/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	// Header
	TitleStyle        lipgloss.Style
	ArrowStyle        lipgloss.Style
	ArrowPressedStyle lipgloss.Style
	WeekdayStyle      lipgloss.Style

	// Day cells
	Cells view.CellStyles

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	HelpSepStyle  lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{colorBg: palette.Bg}

	base := lipgloss.NewStyle().Background(palette.Bg)

	s.TitleStyle = base.
		Bold(true).
		Foreground(palette.Fg)

	s.ArrowStyle = base.
		Bold(true).
		Foreground(palette.Accent)

	// Held arrow: lifted onto the selection background while auto-repeat runs
	s.ArrowPressedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.BgSelection)

	s.WeekdayStyle = base.
		Foreground(palette.FgMuted)

	s.Cells = view.CellStyles{
		Day: base.
			Foreground(palette.Fg),
		Outside: base.
			Foreground(palette.Outside),
		Weekend: base.
			Foreground(palette.Weekend),
		Today: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.TextOnToday).
			Background(palette.TodayBg),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.TextOnSelected).
			Background(palette.Selected),
		Focused: lipgloss.NewStyle().
			Background(palette.BgHighlight),
	}

	s.StatusStyle = base.
		Foreground(palette.Accent).
		Bold(true)

	s.ErrorStyle = base.
		Foreground(palette.Warning).
		Bold(true)

	s.HelpKeyStyle = base.
		Foreground(palette.Fg).
		Bold(true)
	s.HelpDescStyle = base.
		Foreground(palette.FgMuted)
	s.HelpSepStyle = base.
		Foreground(palette.Outside)

	return s
}
