package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/calpick/internal/tui/commands"
	"github.com/javiermolinar/calpick/internal/tui/view"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = view.NewLayout(m.width)
		m.help.Width = m.contentWidth()
		return m, nil

	case commands.RefreshMsg:
		// A repeat step or the midnight rollover changed the view.
		m.syncFocus()
		if !m.picker.Pressing() {
			m.pressed = view.HitNone
		}
		return m, commands.WaitForRefresh(m.refresh, m.done)

	case commands.ErrMsg:
		m.log.Error("command failed", zap.Error(msg.Err))
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

// contentWidth is the room right of the left margin.
func (m Model) contentWidth() int {
	return max(view.GridWidth, m.width-m.layout.Left)
}

// setStatus shows a temporary status message.
func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.statusMsg = text
	m.statusErr = isErr
	return m, commands.ClearStatusAfter(commands.StatusTimeout, m.statusSeq)
}
