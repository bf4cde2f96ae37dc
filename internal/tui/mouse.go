package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/calpick/internal/picker"
	"github.com/javiermolinar/calpick/internal/tui/view"
)

// handleMouseMsg maps mouse gestures onto picker transitions. Holding the
// left button on an arrow auto-repeats until release or until the pointer
// leaves the arrow; shift at press time steps by year.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	hit := m.layout.HitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionRelease:
		if m.pressed != view.HitNone {
			m.logMouse(msg, "release")
			m.releaseArrow()
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.pressed != view.HitNone && hit.Kind != m.pressed {
			m.logMouse(msg, "leave")
			m.releaseArrow()
		}
		return m, nil
	}

	// Press events from here on.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.picker.StepMonth(picker.Backward)
		m.syncFocus()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.picker.StepMonth(picker.Forward)
		m.syncFocus()
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	unit := picker.UnitMonth
	if msg.Shift {
		unit = picker.UnitYear
	}

	switch hit.Kind {
	case view.HitPrev:
		m.logMouse(msg, "prev")
		m.pressed = view.HitPrev
		m.picker.Press(picker.Backward, unit)
		m.syncFocus()
	case view.HitNext:
		m.logMouse(msg, "next")
		m.pressed = view.HitNext
		m.picker.Press(picker.Forward, unit)
		m.syncFocus()
	case view.HitCell:
		cells := m.picker.Cells()
		if hit.Index < 0 || hit.Index >= len(cells) {
			return m, nil
		}
		m.logMouse(msg, "cell")
		return m.selectDate(cells[hit.Index].Date)
	}
	return m, nil
}

func (m *Model) releaseArrow() {
	m.picker.Release()
	m.pressed = view.HitNone
}
