package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/tactile/internal/pointer"
)

// Where the stage sits in the host view: a blank line, the header, a blank
// line and the top border above it; an indent and the left border beside it.
const (
	stageLeft = 3
	stageTop  = 4

	chromeCols = 6
	chromeRows = 10

	minStageCols = 20
	minStageRows = 3
)

// stage is the demo area in cells plus the virtual pixel size of a cell.
type stage struct {
	cols, rows   int
	cellW, cellH float64
}

func (s stage) fit(width, height int) stage {
	s.cols = max(minStageCols, width-chromeCols)
	s.rows = max(minStageRows, height-chromeRows)
	return s
}

func (s stage) contains(col, row int) bool {
	return col >= 0 && col < s.cols && row >= 0 && row < s.rows
}

// toPointer maps a terminal mouse event to a pointer event at the centre of
// the cell, in virtual pixels relative to the stage. Presses and wheel turns
// must land on the stage; moves and releases are only reported while held.
func (s stage) toPointer(msg tea.MouseMsg, held bool, now time.Duration) (pointer.Event, bool) {
	col, row := msg.X-stageLeft, msg.Y-stageTop
	ev := pointer.Event{
		X:    (float64(col) + 0.5) * s.cellW,
		Y:    (float64(row) + 0.5) * s.cellH,
		Time: now,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !s.contains(col, row) {
			return ev, false
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Kind = pointer.Down
		case tea.MouseButtonWheelUp:
			ev.Kind, ev.Delta = pointer.Wheel, -s.cellH
		case tea.MouseButtonWheelDown:
			ev.Kind, ev.Delta = pointer.Wheel, s.cellH
		default:
			return ev, false
		}
	case tea.MouseActionMotion:
		if !held {
			return ev, false
		}
		ev.Kind = pointer.Move
	case tea.MouseActionRelease:
		if !held {
			return ev, false
		}
		ev.Kind = pointer.Up
	default:
		return ev, false
	}
	return ev, true
}
