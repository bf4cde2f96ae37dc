package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterState holds the status and help lines.
type FooterState struct {
	Width       int
	Status      string
	StatusStyle lipgloss.Style
	Help        string
}

// RenderFooter renders the status line above the key help. The status is
// truncated to the available width.
func RenderFooter(s FooterState) string {
	status := s.Status
	if s.Width > 0 {
		status = ansi.Truncate(status, s.Width, "…")
	}
	out := s.StatusStyle.Render(status)
	if s.Help != "" {
		out += "\n" + s.Help
	}
	return out
}
