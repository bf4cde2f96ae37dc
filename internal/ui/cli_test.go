package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/tui"
)

// newTestApp returns an App whose picker records its options and returns result.
func newTestApp(result calendar.Selection, runErr error) (*App, *tui.Options, *bytes.Buffer, *bytes.Buffer) {
	app := NewApp(config.Default())
	app.today = func() calendar.Date { return calendar.Date{Year: 2024, Month: time.March, Day: 15} }

	var got tui.Options
	app.run = func(_ *config.Config, opts tui.Options) (calendar.Selection, error) {
		got = opts
		return result, runErr
	}

	var stdout, stderr bytes.Buffer
	app.root.SetOut(&stdout)
	app.root.SetErr(&stderr)
	return app, &got, &stdout, &stderr
}

func TestRoot_PrintsSelection(t *testing.T) {
	sel := calendar.Selected(calendar.Date{Year: 2024, Month: time.March, Day: 9})
	app, opts, stdout, _ := newTestApp(sel, nil)
	app.root.SetArgs([]string{"--date", "2024-03-09", "--exit-on-select"})

	if err := app.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stdout.String(); got != "2024-03-09\n" {
		t.Errorf("got output %q, want 2024-03-09", got)
	}
	if !opts.ExitOnSelect {
		t.Error("expected exit-on-select to be passed through")
	}
	want := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.Local)
	if !opts.InitialDate.Equal(want) {
		t.Errorf("got initial date %v, want %v", opts.InitialDate, want)
	}
}

func TestRoot_FormatFlag(t *testing.T) {
	sel := calendar.Selected(calendar.Date{Year: 2024, Month: time.March, Day: 9})
	app, _, stdout, _ := newTestApp(sel, nil)
	app.root.SetArgs([]string{"--format", "Mon Jan 2 2006"})

	if err := app.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stdout.String(); got != "Sat Mar 9 2024\n" {
		t.Errorf("got output %q, want Sat Mar 9 2024", got)
	}
}

func TestRoot_RelativeDate(t *testing.T) {
	app, opts, _, _ := newTestApp(calendar.Selection{}, nil)
	app.root.SetArgs([]string{"--date", "tomorrow"})

	if err := app.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.Local)
	if !opts.InitialDate.Equal(want) {
		t.Errorf("got initial date %v, want %v", opts.InitialDate, want)
	}
}

func TestRoot_MalformedDateFallsBack(t *testing.T) {
	app, opts, stdout, stderr := newTestApp(calendar.Selection{}, nil)
	app.root.SetArgs([]string{"--date", "2024-02-30"})

	if err := app.Execute(); err != nil {
		t.Fatalf("malformed --date must not fail: %v", err)
	}
	if !opts.InitialDate.IsZero() {
		t.Errorf("got initial date %v, want zero", opts.InitialDate)
	}
	if !strings.Contains(stderr.String(), "ignoring --date") {
		t.Errorf("expected a warning, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output without a selection, got %q", stdout.String())
	}
}

func TestRoot_PickerError(t *testing.T) {
	app, _, _, _ := newTestApp(calendar.Selection{}, errors.New("no tty"))
	app.root.SetArgs([]string{})

	if err := app.Execute(); err == nil {
		t.Fatal("expected picker error")
	}
}

func TestVersion(t *testing.T) {
	app, _, stdout, _ := newTestApp(calendar.Selection{}, nil)
	app.root.SetArgs([]string{"version"})

	if err := app.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "calpick dev") {
		t.Errorf("got %q", stdout.String())
	}
}
