package calendar

import (
	"strings"
	"time"
)

// Grid dimensions. Six weeks always cover any month, whatever weekday it
// starts on.
const (
	DaysPerWeek = 7
	GridWeeks   = 6
	GridSize    = DaysPerWeek * GridWeeks
)

// Cell is one slot of the month grid.
type Cell struct {
	Date          Date
	InViewedMonth bool
	IsToday       bool
	IsSelected    bool
}

// Grid returns the 42 consecutive dates shown for month of year. The grid
// starts on the Sunday on or before the 1st, pulling trailing days from the
// previous month, and runs into the next month as needed.
func Grid(month time.Month, year int) ([]Date, error) {
	if err := checkMonth(month); err != nil {
		return nil, err
	}

	dates := make([]Date, 0, GridSize)

	lead := int(Date{Year: year, Month: month, Day: 1}.Weekday())
	if lead > 0 {
		pm, py := MonthDecrement(month, year)
		prevDays := DaysInMonth(py, pm)
		for day := prevDays - lead + 1; day <= prevDays; day++ {
			dates = append(dates, Date{Year: py, Month: pm, Day: day})
		}
	}

	for day := 1; day <= DaysInMonth(year, month); day++ {
		dates = append(dates, Date{Year: year, Month: month, Day: day})
	}

	nm, ny := MonthIncrement(month, year)
	for day := 1; len(dates) < GridSize; day++ {
		dates = append(dates, Date{Year: ny, Month: nm, Day: day})
	}

	return dates, nil
}

// Cells returns the grid for month of year with presentation flags derived
// from today and the current selection.
func Cells(month time.Month, year int, today Date, selected Selection) ([]Cell, error) {
	dates, err := Grid(month, year)
	if err != nil {
		return nil, err
	}

	viewed := Date{Year: year, Month: month, Day: 1}
	cells := make([]Cell, len(dates))
	for i, d := range dates {
		cells[i] = Cell{
			Date:          d,
			InViewedMonth: SameMonth(d, viewed),
			IsToday:       SameDay(d, today),
			IsSelected:    selected.Is(d),
		}
	}
	return cells, nil
}

// IndexOf returns the grid position of d for month of year, or -1 when d is
// not part of that grid.
func IndexOf(month time.Month, year int, d Date) int {
	dates, err := Grid(month, year)
	if err != nil {
		return -1
	}
	first, last := dates[0], dates[len(dates)-1]
	if d.Before(first) || last.Before(d) {
		return -1
	}
	for i, gd := range dates {
		if SameDay(gd, d) {
			return i
		}
	}
	return -1
}

// WeekdayLabels returns three-letter weekday labels in grid order, Sunday
// first.
func WeekdayLabels() []string {
	labels := make([]string, DaysPerWeek)
	for i := range labels {
		labels[i] = time.Weekday(i).String()[:3]
	}
	return labels
}

// WeekdayHeaders returns WeekdayLabels upper-cased for column headers.
func WeekdayHeaders() []string {
	labels := WeekdayLabels()
	for i, l := range labels {
		labels[i] = strings.ToUpper(l)
	}
	return labels
}
