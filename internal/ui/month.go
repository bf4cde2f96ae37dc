package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/calpick/internal/calendar"
)

// monthCellWidth is the printed width of one day column.
const monthCellWidth = 4

func (a *App) monthCmd() *cobra.Command {
	var month int
	var year int
	var dateFlag string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print a month grid",
		Long: `Print the six week grid of a month, like cal.

Today is highlighted, days of the neighbouring months are muted and the
date given with --date is shown as selected.

Example:
  calpick month --month 2 --year 2024
  calpick month --date next-friday`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			today := a.today()
			var sel calendar.Selection
			if d, ok := a.initialDate(cmd.ErrOrStderr(), dateFlag); ok {
				sel = calendar.Selected(d)
			}

			viewMonth, viewYear := today.Month, today.Year
			if sel.Valid {
				viewMonth, viewYear = sel.Date.Month, sel.Date.Year
			}
			if cmd.Flags().Changed("month") {
				viewMonth = time.Month(month)
			}
			if cmd.Flags().Changed("year") {
				viewYear = year
			}

			return printMonth(cmd.OutOrStdout(), viewMonth, viewYear, today, sel)
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current)")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Date to mark as selected")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// printMonth writes the title, weekday labels and the 42 day grid.
func printMonth(w io.Writer, month time.Month, year int, today calendar.Date, sel calendar.Selection) error {
	cells, err := calendar.Cells(month, year, today, sel)
	if err != nil {
		return fmt.Errorf("printing month %d: %w", int(month), err)
	}

	width := monthCellWidth * calendar.DaysPerWeek
	title := fmt.Sprintf("%s %d", calendar.MonthName(month), year)
	pad := max(0, (width-len(title))/2)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pad) + formatHeader(title) + "\n")
	for _, label := range calendar.WeekdayHeaders() {
		b.WriteString(strings.Repeat(" ", monthCellWidth-len(label)) + formatMuted(label))
	}
	b.WriteString("\n")

	for i, cell := range cells {
		b.WriteString(strings.Repeat(" ", monthCellWidth-2))
		b.WriteString(dayColor(cell).Sprintf("%2d", cell.Date.Day))
		if (i+1)%calendar.DaysPerWeek == 0 {
			b.WriteString("\n")
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func dayColor(cell calendar.Cell) *color.Color {
	switch {
	case cell.IsSelected:
		return colorSelected
	case cell.IsToday:
		return colorToday
	case !cell.InViewedMonth:
		return colorMuted
	case cell.Date.Weekday() == time.Saturday || cell.Date.Weekday() == time.Sunday:
		return colorWeekend
	default:
		return colorPlain
	}
}
