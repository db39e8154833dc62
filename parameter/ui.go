package parameter

// HUD
const (
	// TopMargin rows reserved for the HUD line
	TopMargin = 1

	// BottomMargin rows reserved for the hint line
	BottomMargin = 1

	HandGlyphOpen    = 'o'
	HandGlyphGrab    = '@'
	ParticleGlyphHot = '*'
	ParticleGlyphMid = '+'
	ParticleGlyphLow = '.'

	// Projected particle radius in pixels at which the larger glyphs are used
	ParticleGlyphHotPx = 12.0
	ParticleGlyphMidPx = 6.0

	CooldownText  = " COOLDOWN "
	RaiseHandText = "move the pointer into the window to start the clock"
	FinishedText  = "ALL CAUGHT! press r to play again"
	HintText      = "hold left button to grab | r restart | m mute | q quit"
)
