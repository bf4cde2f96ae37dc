package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGrid_Shape(t *testing.T) {
	for year := 1899; year <= 2101; year++ {
		for month := time.January; month <= time.December; month++ {
			dates, err := Grid(month, year)
			if err != nil {
				t.Fatalf("Grid(%d, %d) unexpected error: %v", month, year, err)
			}
			if len(dates) != GridSize {
				t.Fatalf("Grid(%d, %d) returned %d dates, want %d", month, year, len(dates), GridSize)
			}
			if dates[0].Weekday() != time.Sunday {
				t.Fatalf("Grid(%d, %d) starts on %s, want Sunday", month, year, dates[0].Weekday())
			}
			for i := 1; i < len(dates); i++ {
				if want := dates[i-1].AddDays(1); dates[i] != want {
					t.Fatalf("Grid(%d, %d)[%d] = %s, want %s", month, year, i, dates[i], want)
				}
			}
			first := Date{Year: year, Month: month, Day: 1}
			if idx := IndexOf(month, year, first); idx != int(first.Weekday()) {
				t.Fatalf("IndexOf(first of %d/%d) = %d, want %d", month, year, idx, first.Weekday())
			}
		}
	}
}

func TestGrid_LeapFebruary(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		hasLeap bool
	}{
		{name: "2024 is leap", year: 2024, hasLeap: true},
		{name: "2023 is not leap", year: 2023, hasLeap: false},
		{name: "1900 is not leap", year: 1900, hasLeap: false},
		{name: "2000 is leap", year: 2000, hasLeap: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := Grid(time.February, tt.year)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			found := false
			for _, d := range dates {
				if d.Month == time.February && d.Day == 29 {
					found = true
				}
			}
			if found != tt.hasLeap {
				t.Errorf("Feb 29 in grid = %t, want %t", found, tt.hasLeap)
			}
		})
	}
}

func TestGrid_March2024(t *testing.T) {
	dates, err := Grid(time.March, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// March 1st 2024 is a Friday: five trailing days of February lead.
	wantHead := []Date{
		{2024, time.February, 25},
		{2024, time.February, 26},
		{2024, time.February, 27},
		{2024, time.February, 28},
		{2024, time.February, 29},
		{2024, time.March, 1},
	}
	if diff := cmp.Diff(wantHead, dates[:6]); diff != "" {
		t.Errorf("grid head mismatch (-want +got):\n%s", diff)
	}

	wantTail := Date{2024, time.April, 6}
	if got := dates[len(dates)-1]; got != wantTail {
		t.Errorf("last cell = %s, want %s", got, wantTail)
	}
}

func TestGrid_YearBoundaries(t *testing.T) {
	jan, err := Grid(time.January, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Date{2024, time.December, 29}); jan[0] != want {
		t.Errorf("January 2025 grid starts at %s, want %s", jan[0], want)
	}

	dec, err := Grid(time.December, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Date{2025, time.January, 11}); dec[len(dec)-1] != want {
		t.Errorf("December 2024 grid ends at %s, want %s", dec[len(dec)-1], want)
	}
}

func TestGrid_MonthStartingOnSunday(t *testing.T) {
	// September 2024 starts on a Sunday, so no days are pulled from August.
	dates, err := Grid(time.September, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Date{2024, time.September, 1}); dates[0] != want {
		t.Errorf("first cell = %s, want %s", dates[0], want)
	}
}

func TestGrid_InvalidMonth(t *testing.T) {
	for _, m := range []time.Month{0, 13, -1} {
		if _, err := Grid(m, 2024); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("Grid(%d) error = %v, want %v", m, err, ErrInvalidMonth)
		}
		if _, err := Cells(m, 2024, Date{}, Selection{}); !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("Cells(%d) error = %v, want %v", m, err, ErrInvalidMonth)
		}
	}
}

func TestCells_Flags(t *testing.T) {
	today := Date{2024, time.March, 15}
	selected := Selected(Date{2024, time.April, 2})

	cells, err := Cells(time.March, 2024, today, selected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var inMonth, todays, selections int
	for _, c := range cells {
		if c.InViewedMonth {
			inMonth++
		}
		if c.IsToday {
			todays++
			if c.Date != today {
				t.Errorf("today flag on %s, want %s", c.Date, today)
			}
		}
		if c.IsSelected {
			selections++
			if c.Date != selected.Date {
				t.Errorf("selected flag on %s, want %s", c.Date, selected.Date)
			}
			if c.InViewedMonth {
				t.Errorf("selected cell %s should be outside March", c.Date)
			}
		}
	}

	if inMonth != 31 {
		t.Errorf("in-month cells = %d, want 31", inMonth)
	}
	if todays != 1 {
		t.Errorf("today cells = %d, want 1", todays)
	}
	if selections != 1 {
		t.Errorf("selected cells = %d, want 1", selections)
	}
}

func TestCells_NoSelection(t *testing.T) {
	cells, err := Cells(time.March, 2024, Date{2024, time.March, 15}, Selection{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range cells {
		if c.IsSelected {
			t.Fatalf("cell %s selected with empty selection", c.Date)
		}
	}
}

func TestIndexOf_OutsideGrid(t *testing.T) {
	if got := IndexOf(time.March, 2024, Date{2024, time.May, 1}); got != -1 {
		t.Errorf("IndexOf(May 1) = %d, want -1", got)
	}
	if got := IndexOf(13, 2024, Date{2024, time.March, 1}); got != -1 {
		t.Errorf("IndexOf with invalid month = %d, want -1", got)
	}
}

func TestWeekdayHeaders(t *testing.T) {
	want := []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
	if diff := cmp.Diff(want, WeekdayHeaders()); diff != "" {
		t.Errorf("WeekdayHeaders mismatch (-want +got):\n%s", diff)
	}
	if got := WeekdayLabels()[0]; got != "Sun" {
		t.Errorf("WeekdayLabels()[0] = %q, want %q", got, "Sun")
	}
}
