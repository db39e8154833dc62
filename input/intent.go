package input

import "github.com/lixenwraith/word-catch/gesture"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C, Ctrl+Q
	IntentRestart     // r
	IntentToggleMute  // m
	IntentTogglePause // p, Space
	IntentResize      // Terminal resize event

	// Hand
	IntentSample // Pointer moved, pressed, released or left the window
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentRestart:     "restart",
	IntentToggleMute:  "toggle_mute",
	IntentTogglePause: "toggle_pause",
	IntentResize:      "resize",
	IntentSample:      "sample",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a parsed terminal event
type Intent struct {
	Type IntentType

	// IntentSample
	Sample gesture.Sample

	// IntentResize, in cells
	Width, Height int
}
