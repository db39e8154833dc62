package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/word-catch/gesture"
	"github.com/lixenwraith/word-catch/parameter"
)

// Machine parses tcell events into intents
// The mouse stands in for the hand sensor: the pointer is the hand, a held primary button is a grab
type Machine struct {
	keyTable *KeyTable
	cellW    float64
	cellH    float64
}

// NewMachine creates a machine mapping cells of cellW x cellH pixels
func NewMachine(cellW, cellH int) *Machine {
	if cellW <= 0 {
		cellW = parameter.CellWidthPxDefault
	}
	if cellH <= 0 {
		cellH = parameter.CellHeightPxDefault
	}
	return &Machine{
		keyTable: DefaultKeyTable(),
		cellW:    float64(cellW),
		cellH:    float64(cellH),
	}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no meaning here
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return m.processMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventFocus:
		if !ev.Focused {
			// Pointer left the window: the hand is gone
			return &Intent{Type: IntentSample, Sample: gesture.NoHand()}
		}
	}
	return nil
}

func (m *Machine) processKey(key tcell.Key, r rune) *Intent {
	t := m.keyTable.Lookup(key, r)
	if t == IntentNone {
		return nil
	}
	return &Intent{Type: t}
}

func (m *Machine) processMouse(x, y int, buttons tcell.ButtonMask) *Intent {
	return &Intent{
		Type: IntentSample,
		Sample: gesture.Sample{
			HandVisible: true,
			Grabbing:    buttons&tcell.Button1 != 0,
			ScreenX:     float64(x)*m.cellW + m.cellW/2,
			ScreenY:     float64(y)*m.cellH + m.cellH/2,
		},
	}
}
