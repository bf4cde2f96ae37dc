package calendar

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned for input that is neither a YYYY-MM-DD date nor
// a recognised relative keyword.
var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format or a relative keyword")

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse parses a date in YYYY-MM-DD format.
func Parse(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return FromTime(t), nil
}

// ParseRelative parses s relative to today. Accepted forms:
//   - "today", "tomorrow", "yesterday"
//   - weekday names ("monday"): the next occurrence, never today
//   - "next-<weekday>" and "next-week"
//   - "last-<weekday>" and "last-week"
//   - an absolute YYYY-MM-DD date
//
// Input is case-insensitive. Unlike a scheduler, past dates are fine here.
func ParseRelative(s string, today Date) (Date, error) {
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "next-week":
		return today.AddDays(7), nil
	case "last-week":
		return today.AddDays(-7), nil
	}

	if name, ok := strings.CutPrefix(input, "next-"); ok {
		if wd, ok := weekdayMap[name]; ok {
			return nextWeekday(today, wd), nil
		}
		return Date{}, ErrInvalidDate
	}
	if name, ok := strings.CutPrefix(input, "last-"); ok {
		if wd, ok := weekdayMap[name]; ok {
			return previousWeekday(today, wd), nil
		}
		return Date{}, ErrInvalidDate
	}
	if wd, ok := weekdayMap[input]; ok {
		return nextWeekday(today, wd), nil
	}

	return Parse(input)
}

// nextWeekday returns the next target weekday strictly after today.
func nextWeekday(today Date, target time.Weekday) Date {
	n := int(target) - int(today.Weekday())
	if n <= 0 {
		n += 7
	}
	return today.AddDays(n)
}

// previousWeekday returns the last target weekday strictly before today.
func previousWeekday(today Date, target time.Weekday) Date {
	n := int(today.Weekday()) - int(target)
	if n <= 0 {
		n += 7
	}
	return today.AddDays(-n)
}
