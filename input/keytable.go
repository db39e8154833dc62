package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Plain rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
			'r': IntentRestart,
			'R': IntentRestart,
			'm': IntentToggleMute,
			'M': IntentToggleMute,
			'p': IntentTogglePause,
			'P': IntentTogglePause,
			' ': IntentTogglePause,
		},
	}
}

// Lookup resolves a key press; r is only consulted for tcell.KeyRune
func (kt *KeyTable) Lookup(key tcell.Key, r rune) IntentType {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
