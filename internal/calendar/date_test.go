package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	a := Date{2024, time.March, 15}
	b := Date{2024, time.March, 16}

	if !SameDay(a, a) {
		t.Error("SameDay should be reflexive")
	}
	if SameDay(a, b) != SameDay(b, a) {
		t.Error("SameDay should be symmetric")
	}
	if SameDay(a, b) {
		t.Errorf("SameDay(%s, %s) = true, want false", a, b)
	}
}

func TestSameDayTime_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	next := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	if !SameDayTime(morning, night) {
		t.Error("times on the same day should match")
	}
	if !SameDayTime(night, morning) {
		t.Error("SameDayTime should be symmetric")
	}
	if SameDayTime(night, next) {
		t.Error("times on different days should not match")
	}
}

func TestSameDayTime_UsesEachLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// Same instant, different calendar days in the two zones.
	utc := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	jst := utc.In(tokyo)

	if SameDayTime(utc, jst) {
		t.Errorf("%v and %v are different calendar days", utc, jst)
	}
}

func TestSameMonth(t *testing.T) {
	if !SameMonth(Date{2024, time.March, 1}, Date{2024, time.March, 31}) {
		t.Error("dates in March 2024 should share a month")
	}
	if SameMonth(Date{2024, time.March, 1}, Date{2025, time.March, 1}) {
		t.Error("different years should not share a month")
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{name: "within month", d: Date{2024, time.March, 1}, n: 5, want: Date{2024, time.March, 6}},
		{name: "leap day", d: Date{2024, time.February, 28}, n: 1, want: Date{2024, time.February, 29}},
		{name: "non leap", d: Date{2023, time.February, 28}, n: 1, want: Date{2023, time.March, 1}},
		{name: "year back", d: Date{2024, time.January, 1}, n: -1, want: Date{2023, time.December, 31}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.AddDays(tt.n); got != tt.want {
				t.Errorf("AddDays(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := Date{2024, time.March, 15}
	if a.Compare(a) != 0 {
		t.Error("Compare with itself should be 0")
	}
	if !a.Before(Date{2024, time.March, 16}) {
		t.Error("Mar 15 should be before Mar 16")
	}
	if !a.Before(Date{2024, time.April, 1}) {
		t.Error("Mar 15 should be before Apr 1")
	}
	if a.Before(Date{2023, time.December, 31}) {
		t.Error("Mar 15 2024 should not be before Dec 31 2023")
	}
}

func TestDate_Valid(t *testing.T) {
	tests := []struct {
		d    Date
		want bool
	}{
		{Date{2024, time.February, 29}, true},
		{Date{2023, time.February, 29}, false},
		{Date{2024, time.December, 31}, true},
		{Date{0, time.June, 1}, true},
		{Date{2024, 13, 1}, false},
		{Date{2024, 0, 1}, false},
		{Date{2024, time.April, 31}, false},
		{Date{2024, time.April, 0}, false},
		{Date{}, false},
	}
	for _, tt := range tests {
		if got := tt.d.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDate_FormatAndString(t *testing.T) {
	d := Date{2024, time.March, 15}
	if got := d.String(); got != "2024-03-15" {
		t.Errorf("String() = %q, want %q", got, "2024-03-15")
	}
	if got := d.Format("Mon Jan 2 2006"); got != "Fri Mar 15 2024" {
		t.Errorf("Format() = %q, want %q", got, "Fri Mar 15 2024")
	}
}

func TestSelection(t *testing.T) {
	d := Date{2024, time.March, 15}

	var none Selection
	if none.Is(d) {
		t.Error("empty selection should not hold any date")
	}
	if none.Is(Date{}) {
		t.Error("empty selection should not hold the zero date")
	}
	if got := none.String(); got != "none" {
		t.Errorf("String() = %q, want %q", got, "none")
	}

	s := Selected(d)
	if !s.Is(d) {
		t.Errorf("Selected(%s).Is(%s) = false", d, d)
	}
	if s.Is(d.AddDays(1)) {
		t.Error("selection should not hold the next day")
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("2025-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (Date{2025, time.January, 15}); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	if _, err := Parse("01-15-2025"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("got error %v, want %v", err, ErrInvalidDate)
	}
	if _, err := Parse(""); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("got error %v, want %v", err, ErrInvalidDate)
	}
}

func TestParseRelative(t *testing.T) {
	// Wednesday
	today := Date{2025, time.January, 15}

	tests := []struct {
		input string
		want  Date
	}{
		{"today", today},
		{"TODAY", today},
		{"tomorrow", Date{2025, time.January, 16}},
		{"yesterday", Date{2025, time.January, 14}},
		{"next-week", Date{2025, time.January, 22}},
		{"last-week", Date{2025, time.January, 8}},
		{"friday", Date{2025, time.January, 17}},
		{"wednesday", Date{2025, time.January, 22}},
		{"next-monday", Date{2025, time.January, 20}},
		{"last-monday", Date{2025, time.January, 13}},
		{"last-wednesday", Date{2025, time.January, 8}},
		{" 2020-02-29 ", Date{2020, time.February, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRelative(tt.input, today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRelative(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "next-fortnight", "last-", "someday", "2023-02-29"} {
		if _, err := ParseRelative(bad, today); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseRelative(%q) error = %v, want %v", bad, err, ErrInvalidDate)
		}
	}
}
