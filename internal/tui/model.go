// Package tui provides the terminal user interface for calpick.
package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/config"
	"github.com/javiermolinar/calpick/internal/picker"
	"github.com/javiermolinar/calpick/internal/tui/commands"
	"github.com/javiermolinar/calpick/internal/tui/theme"
	"github.com/javiermolinar/calpick/internal/tui/view"
)

// Options configures a picker session.
type Options struct {
	// InitialDate is selected on open. Zero opens today's month unselected.
	InitialDate time.Time
	// ExitOnSelect quits right after the first selection.
	ExitOnSelect bool
	// OnDateChanged is called for every selection.
	OnDateChanged func(calendar.Date)
	Logger        *zap.Logger
	Clock         clockwork.Clock
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	picker *picker.Controller
	config *config.Config
	log    *zap.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Components
	keys keyMap
	help help.Model

	// State
	focus        calendar.Date
	pressed      view.HitKind // Arrow held by the mouse, HitNone otherwise
	exitOnSelect bool
	cancelled    bool
	format       string

	// Terminal dimensions and layout
	width  int
	height int
	layout view.Layout

	// Messages
	statusMsg string
	statusErr bool
	statusSeq int

	// Signalled by picker timers; drained by commands.WaitForRefresh.
	refresh chan struct{}
	// Closed by Close to end the pending WaitForRefresh.
	done      chan struct{}
	closeOnce *sync.Once
}

// New creates a new TUI model. Close must be called to release the picker's
// timers.
func New(cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		log.Warn("loading theme", zap.String("theme", cfg.UI.Theme), zap.Error(err))
	}
	styles := NewStyles(t)

	refresh := make(chan struct{}, 1)
	pickerOpts := []picker.Option{
		picker.WithLogger(log),
		picker.WithInitialDate(opts.InitialDate),
		picker.WithRepeat(cfg.RepeatDelay(), cfg.RepeatInterval()),
		picker.WithOnDateChanged(opts.OnDateChanged),
		picker.WithOnRefresh(func() {
			select {
			case refresh <- struct{}{}:
			default: // a refresh is already pending
			}
		}),
	}
	if opts.Clock != nil {
		pickerOpts = append(pickerOpts, picker.WithClock(opts.Clock))
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpSepStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	h.Styles.FullSeparator = styles.HelpSepStyle
	h.Styles.Ellipsis = styles.HelpSepStyle

	m := &Model{
		picker:       picker.New(pickerOpts...),
		config:       cfg,
		log:          log,
		theme:        t,
		styles:       styles,
		keys:         newKeyMap(),
		help:         h,
		pressed:      view.HitNone,
		exitOnSelect: opts.ExitOnSelect,
		format:       cfg.Picker.DateFormat,
		refresh:      refresh,
		done:         make(chan struct{}),
		closeOnce:    &sync.Once{},
	}

	m.focus = m.picker.Today()
	if sel := m.picker.State().Selected; sel.Valid {
		m.focus = sel.Date
	}
	m.syncFocus()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.WaitForRefresh(m.refresh, m.done)
}

// Close releases the picker's timers and ends the pending refresh wait.
func (m Model) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	return m.picker.Close()
}

// Selection returns the date the session ended with. A cancelled session
// returns no selection.
func (m Model) Selection() calendar.Selection {
	if m.cancelled {
		return calendar.Selection{}
	}
	return m.picker.State().Selected
}

// syncFocus keeps the focus cursor inside the viewed month. The day of month
// is kept and clamped to the month length.
func (m *Model) syncFocus() {
	viewed := m.picker.State().Viewed()
	if calendar.SameMonth(m.focus, viewed) {
		return
	}
	day := min(m.focus.Day, calendar.DaysInMonth(viewed.Year, viewed.Month))
	m.focus = calendar.Date{Year: viewed.Year, Month: viewed.Month, Day: day}
}

// Run starts the TUI and returns the picked date.
func Run(cfg *config.Config, opts Options) (calendar.Selection, error) {
	model := New(cfg, opts)
	defer func() { _ = model.Close() }()

	p := tea.NewProgram(*model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return calendar.Selection{}, fmt.Errorf("running picker: %w", err)
	}
	if m, ok := finalModel.(Model); ok {
		return m.Selection(), nil
	}
	return model.Selection(), nil
}
