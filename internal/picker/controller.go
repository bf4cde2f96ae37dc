// Package picker holds the navigation and selection state of the date picker
// and the timers that drive press-and-hold repeat and midnight rollover.
//
// A Controller is safe for concurrent use: transitions invoked by the host
// and transitions fired by its own timers are serialized internally.
package picker

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/javiermolinar/calpick/internal/calendar"
)

// Default press-and-hold timing.
const (
	DefaultRepeatDelay    = 500 * time.Millisecond
	DefaultRepeatInterval = 100 * time.Millisecond
)

// Direction is the sign of a navigation step.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

func (d Direction) String() string {
	if d < 0 {
		return "backward"
	}
	return "forward"
}

// Unit is the granularity of a navigation step.
type Unit int

const (
	UnitMonth Unit = iota
	UnitYear
)

func (u Unit) String() string {
	if u == UnitYear {
		return "year"
	}
	return "month"
}

// ViewState is the month being displayed and the current selection.
type ViewState struct {
	Month    time.Month
	Year     int
	Selected calendar.Selection
}

// Viewed returns the first day of the viewed month.
func (s ViewState) Viewed() calendar.Date {
	return calendar.Date{Year: s.Year, Month: s.Month, Day: 1}
}

// Controller is the picker state machine.
type Controller struct {
	mu sync.Mutex

	clock    clockwork.Clock
	log      *zap.Logger
	delay    time.Duration
	interval time.Duration

	onDateChanged func(calendar.Date)
	onRefresh     func()

	state ViewState
	today calendar.Date

	press    *press
	pressGen uint64
	midnight clockwork.Timer
	closed   bool
}

type config struct {
	clock         clockwork.Clock
	log           *zap.Logger
	delay         time.Duration
	interval      time.Duration
	initial       time.Time
	onDateChanged func(calendar.Date)
	onRefresh     func()
}

// Option configures a Controller.
type Option func(*config)

// WithClock sets the clock used for "today" and for all timers.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithInitialDate selects t and shows its month. A zero time is ignored and
// the picker opens on the current month with nothing selected.
func WithInitialDate(t time.Time) Option {
	return func(c *config) {
		c.initial = t
	}
}

// WithRepeat overrides the press-and-hold delay and interval. Non-positive
// values keep the defaults.
func WithRepeat(delay, interval time.Duration) Option {
	return func(c *config) {
		if delay > 0 {
			c.delay = delay
		}
		if interval > 0 {
			c.interval = interval
		}
	}
}

// WithOnDateChanged registers the selection callback. It is called once for
// every Select, with the selected date.
func WithOnDateChanged(fn func(calendar.Date)) Option {
	return func(c *config) {
		c.onDateChanged = fn
	}
}

// WithOnRefresh registers a callback invoked after a timer changed the state
// (a repeat step or the midnight rollover). It runs on a timer goroutine.
func WithOnRefresh(fn func()) Option {
	return func(c *config) {
		c.onRefresh = fn
	}
}

// New creates a Controller and arms its midnight timer. Call Close to
// release the timers.
func New(opts ...Option) *Controller {
	cfg := config{
		clock:    clockwork.NewRealClock(),
		log:      zap.NewNop(),
		delay:    DefaultRepeatDelay,
		interval: DefaultRepeatInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	now := cfg.clock.Now()
	c := &Controller{
		clock:         cfg.clock,
		log:           cfg.log,
		delay:         cfg.delay,
		interval:      cfg.interval,
		onDateChanged: cfg.onDateChanged,
		onRefresh:     cfg.onRefresh,
		today:         calendar.FromTime(now),
	}

	if cfg.initial.IsZero() {
		c.state = ViewState{Month: now.Month(), Year: now.Year()}
	} else {
		d := calendar.FromTime(cfg.initial)
		c.state = ViewState{Month: d.Month, Year: d.Year, Selected: calendar.Selected(d)}
	}

	c.mu.Lock()
	c.armMidnightLocked()
	c.mu.Unlock()

	c.log.Debug("picker created",
		zap.Stringer("month", c.state.Month),
		zap.Int("year", c.state.Year),
		zap.Stringer("selected", c.state.Selected),
	)
	return c
}

// State returns a snapshot of the view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Today returns the date the controller considers today.
func (c *Controller) Today() calendar.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today
}

// Cells returns the 42 grid cells of the viewed month.
func (c *Controller) Cells() []calendar.Cell {
	c.mu.Lock()
	state, today := c.state, c.today
	c.mu.Unlock()

	cells, err := calendar.Cells(state.Month, state.Year, today, state.Selected)
	if err != nil {
		// The viewed month is normalized by every transition.
		c.log.Error("computing grid", zap.Error(err))
		return nil
	}
	return cells
}

// Select selects d and shows its month, unless d is already selected. The
// change callback is invoked in both cases. A date that does not exist is
// ignored and the callback is not invoked.
func (c *Controller) Select(d calendar.Date) {
	if !d.Valid() {
		c.log.Warn("ignoring invalid date", zap.Stringer("date", d))
		return
	}

	c.mu.Lock()
	if !c.state.Selected.Is(d) {
		c.state = ViewState{Month: d.Month, Year: d.Year, Selected: calendar.Selected(d)}
		c.log.Debug("date selected", zap.Stringer("date", d))
	}
	fn := c.onDateChanged
	c.mu.Unlock()

	if fn != nil {
		fn(d)
	}
}

// StepMonth moves the view one month in dir. The selection is unchanged.
func (c *Controller) StepMonth(dir Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stepLocked(dir, UnitMonth)
}

// StepYear moves the view one year in dir, keeping the month. The selection
// is unchanged.
func (c *Controller) StepYear(dir Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stepLocked(dir, UnitYear)
}

// GoToToday shows the month containing today.
func (c *Controller) GoToToday() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Month, c.state.Year = c.today.Month, c.today.Year
}

func (c *Controller) stepLocked(dir Direction, unit Unit) {
	switch {
	case unit == UnitYear:
		c.state.Year += int(dir)
	case dir < 0:
		c.state.Month, c.state.Year = calendar.MonthDecrement(c.state.Month, c.state.Year)
	default:
		c.state.Month, c.state.Year = calendar.MonthIncrement(c.state.Month, c.state.Year)
	}
	c.log.Debug("view stepped",
		zap.Stringer("unit", unit),
		zap.Stringer("direction", dir),
		zap.Stringer("month", c.state.Month),
		zap.Int("year", c.state.Year),
	)
}

// Close stops the repeat and midnight timers. No timer changes the state
// after Close returns. It is safe to call more than once.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.stopPressLocked()
	if c.midnight != nil {
		c.midnight.Stop()
		c.midnight = nil
	}
	c.log.Debug("picker closed")
	return nil
}

func (c *Controller) refresh() {
	if c.onRefresh != nil {
		c.onRefresh()
	}
}
