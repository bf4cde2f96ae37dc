// Package view provides view composition helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ViewState contains the pre-rendered sections and the placement.
type ViewState struct {
	Width            int
	Height           int
	Layout           Layout
	Header           string
	Grid             string
	Footer           string
	Bg               lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	body := lipgloss.JoinVertical(lipgloss.Left, state.Header, state.Grid, "", state.Footer)
	placed := lipgloss.NewStyle().
		MarginTop(state.Layout.Top).
		MarginLeft(state.Layout.Left).
		MarginBackground(state.Bg).
		Render(body)
	return PadLinesWithBackground(placed, state.Width, state.Height, state.Bg)
}
