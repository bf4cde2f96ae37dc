package calendar

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// ErrInvalidMonth is returned when a month outside 1..12 is passed where a
// concrete month is required.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// ValidMonth reports whether m is in 1..12.
func ValidMonth(m time.Month) bool {
	return m >= time.January && m <= time.December
}

func checkMonth(m time.Month) error {
	if !ValidMonth(m) {
		return fmt.Errorf("%w, got %d", ErrInvalidMonth, int(m))
	}
	return nil
}

// Normalize folds any month number into 1..12, carrying whole years into
// year. Month 0 is December of the previous year, 13 is January of the next.
func Normalize(month time.Month, year int) (time.Month, int) {
	m := int(month) - 1
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return time.Month(m + 1), year
}

// MonthIncrement returns the month after (month, year).
func MonthIncrement(month time.Month, year int) (time.Month, int) {
	return Normalize(month+1, year)
}

// MonthDecrement returns the month before (month, year).
func MonthDecrement(month time.Month, year int) (time.Month, int) {
	return Normalize(month-1, year)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in month of year. The month is
// normalized first.
func DaysInMonth(year int, month time.Month) int {
	month, year = Normalize(month, year)
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// MonthName returns the English name of month, clamping out-of-range values
// to January or December.
func MonthName(month time.Month) string {
	switch {
	case month < time.January:
		month = time.January
	case month > time.December:
		month = time.December
	}
	return month.String()
}
