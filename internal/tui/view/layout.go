package view

import "github.com/javiermolinar/calpick/internal/calendar"

// Fixed geometry of the picker. The renderer and the mouse hit test both
// derive positions from these values.
const (
	CellWidth  = 5
	GridWidth  = CellWidth * calendar.DaysPerWeek
	ArrowWidth = 3

	// MarginTop is the number of blank lines above the header.
	MarginTop = 1

	headerRow    = 0
	labelRow     = 1
	firstGridRow = 2
)

// HitKind identifies what a terminal cell belongs to.
type HitKind int

const (
	HitNone HitKind = iota
	HitPrev
	HitNext
	HitCell
)

// Hit is the result of a hit test. Index is the grid position for HitCell.
type Hit struct {
	Kind  HitKind
	Index int
}

// Layout is the placement of the picker inside the terminal.
type Layout struct {
	Left int
	Top  int
}

// NewLayout centers the grid horizontally in a terminal of the given width.
func NewLayout(termWidth int) Layout {
	left := (termWidth - GridWidth) / 2
	if left < 0 {
		left = 0
	}
	return Layout{Left: left, Top: MarginTop}
}

// HitTest maps terminal coordinates to an arrow or a grid cell.
func (l Layout) HitTest(x, y int) Hit {
	col := x - l.Left
	row := y - l.Top
	if col < 0 || col >= GridWidth {
		return Hit{Kind: HitNone}
	}

	switch {
	case row == headerRow && col < ArrowWidth:
		return Hit{Kind: HitPrev}
	case row == headerRow && col >= GridWidth-ArrowWidth:
		return Hit{Kind: HitNext}
	case row >= firstGridRow && row < firstGridRow+calendar.GridWeeks:
		index := (row-firstGridRow)*calendar.DaysPerWeek + col/CellWidth
		return Hit{Kind: HitCell, Index: index}
	}
	return Hit{Kind: HitNone}
}
