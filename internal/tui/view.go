package tui

import (
	"github.com/javiermolinar/calpick/internal/tui/view"
)

// View renders the picker centered in the terminal.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	state := m.picker.State()

	header := view.RenderHeader(view.HeaderState{
		Month:             state.Month,
		Year:              state.Year,
		PrevPressed:       m.pressed == view.HitPrev,
		NextPressed:       m.pressed == view.HitNext,
		TitleStyle:        m.styles.TitleStyle,
		ArrowStyle:        m.styles.ArrowStyle,
		ArrowPressedStyle: m.styles.ArrowPressedStyle,
		LabelStyle:        m.styles.WeekdayStyle,
	})

	grid := view.RenderGrid(view.GridState{
		Cells:     m.picker.Cells(),
		Focus:     m.focus,
		ShowFocus: true,
		Styles:    m.styles.Cells,
	})

	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}
	status := m.statusMsg
	if status == "" {
		status = "Selected: " + m.selectionLabel()
	}
	footer := view.RenderFooter(view.FooterState{
		Width:       m.contentWidth(),
		Status:      status,
		StatusStyle: statusStyle,
		Help:        m.help.View(m.keys),
	})

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		Layout:           m.layout,
		Header:           header,
		Grid:             grid,
		Footer:           footer,
		Bg:               m.styles.colorBg,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) selectionLabel() string {
	sel := m.picker.State().Selected
	if !sel.Valid {
		return "none"
	}
	return sel.Date.Format(m.format)
}
