package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Today: bold green so it stands out without a selection
	colorToday = color.New(color.FgGreen, color.Bold)

	// Selected date: reversed cyan
	colorSelected = color.New(color.FgCyan, color.Bold, color.ReverseVideo)

	// Weekend days: yellow
	colorWeekend = color.New(color.FgYellow)

	// Muted: days outside the month, secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Plain days
	colorPlain = color.New(color.Reset)

	// Warnings: bold red
	colorWarning = color.New(color.FgRed, color.Bold)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatWarning formats text as a warning.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}
