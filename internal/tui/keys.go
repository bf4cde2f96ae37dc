package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/calendar"
	"github.com/javiermolinar/calpick/internal/picker"
	"github.com/javiermolinar/calpick/internal/tui/commands"
)

type keyMap struct {
	left      key.Binding
	right     key.Binding
	up        key.Binding
	down      key.Binding
	selectDay key.Binding
	prevMonth key.Binding
	nextMonth key.Binding
	prevYear  key.Binding
	nextYear  key.Binding
	today     key.Binding
	copyDate  key.Binding
	help      key.Binding
	quit      key.Binding
	cancel    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		selectDay: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		prevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		nextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		prevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		nextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		copyDate:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done")),
		cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.selectDay, k.prevMonth, k.nextMonth, k.today, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right, k.up, k.down},
		{k.prevMonth, k.nextMonth, k.prevYear, k.nextYear},
		{k.selectDay, k.today, k.copyDate},
		{k.help, k.quit, k.cancel},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	switch {
	case key.Matches(msg, m.keys.cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	// Focus movement
	case key.Matches(msg, m.keys.left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.up):
		m.moveFocus(-calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.down):
		m.moveFocus(calendar.DaysPerWeek)

	// View navigation
	case key.Matches(msg, m.keys.prevMonth):
		m.picker.StepMonth(picker.Backward)
		m.syncFocus()
	case key.Matches(msg, m.keys.nextMonth):
		m.picker.StepMonth(picker.Forward)
		m.syncFocus()
	case key.Matches(msg, m.keys.prevYear):
		m.picker.StepYear(picker.Backward)
		m.syncFocus()
	case key.Matches(msg, m.keys.nextYear):
		m.picker.StepYear(picker.Forward)
		m.syncFocus()
	case key.Matches(msg, m.keys.today):
		m.picker.GoToToday()
		m.focus = m.picker.Today()

	// Actions
	case key.Matches(msg, m.keys.selectDay):
		return m.selectDate(m.focus)
	case key.Matches(msg, m.keys.copyDate):
		sel := m.picker.State().Selected
		if !sel.Valid {
			return m, commands.Status("Nothing selected")
		}
		return m, commands.CopyToClipboard(sel.Date.Format(m.format))
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// moveFocus moves the focus cursor by days, stepping the viewed month when
// the cursor leaves it.
func (m *Model) moveFocus(days int) {
	from := m.focus
	to := from.AddDays(days)
	view := m.picker.State()
	if !calendar.SameMonth(to, view.Viewed()) {
		dir := picker.Forward
		if days < 0 {
			dir = picker.Backward
		}
		m.picker.StepMonth(dir)
	}
	m.focus = to
	m.syncFocus()
	m.logFocusMove(from, m.focus, "key")
}

// selectDate selects d, moves the focus onto it and quits when configured to.
func (m Model) selectDate(d calendar.Date) (tea.Model, tea.Cmd) {
	m.picker.Select(d)
	m.focus = d
	if m.exitOnSelect {
		return m, tea.Quit
	}
	return m, commands.Status("Selected " + d.Format(m.format))
}
