// Package calendar provides the date arithmetic behind the month grid:
// month stepping with year rollover, leap-year aware day counts and the
// 42-cell grid shown by the picker.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time-of-day or location attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// FromTime returns the calendar fields of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	// Noon UTC keeps the normalization clear of DST transitions.
	return FromTime(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Format formats d with a Go time layout.
func (d Date) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a day that exists in the proleptic
// Gregorian calendar.
func (d Date) Valid() bool {
	return ValidMonth(d.Month) && d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SameDay reports whether a and b are the same calendar day.
func SameDay(a, b Date) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Day == b.Day
}

// SameMonth reports whether a and b fall in the same month of the same year.
func SameMonth(a, b Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}

// SameDayTime reports whether two instants fall on the same calendar day,
// each read in its own location. The time of day is ignored.
func SameDayTime(a, b time.Time) bool {
	return SameDay(FromTime(a), FromTime(b))
}

// Selection is an optional Date. The zero value means nothing is selected.
type Selection struct {
	Date  Date
	Valid bool
}

// Selected returns a Selection holding d.
func Selected(d Date) Selection {
	return Selection{Date: d, Valid: true}
}

// Is reports whether the selection holds d.
func (s Selection) Is(d Date) bool {
	return s.Valid && SameDay(s.Date, d)
}

func (s Selection) String() string {
	if !s.Valid {
		return "none"
	}
	return s.Date.String()
}
