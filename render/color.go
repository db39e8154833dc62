package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/word-catch/gesture"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbHUDText    = tcell.NewRGBColor(255, 255, 255)
	RgbHintText   = tcell.NewRGBColor(180, 180, 180)
	RgbMetricText = tcell.NewRGBColor(120, 200, 120)
	RgbCooldownBg = tcell.NewRGBColor(200, 50, 50)
	RgbFinished   = tcell.NewRGBColor(255, 215, 0)

	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Hand cursor colours per tracker state
var handColors = map[gesture.State]colorful.Color{
	gesture.StateTracking:    white,
	gesture.StateGrabPending: {R: 1, G: 0.85, B: 0.2},
	gesture.StateGrabLocked:  {R: 0.3, G: 1, B: 0.4},
	gesture.StateCooldown:    {R: 1, G: 0.3, B: 0.3},
}

// ParseHex decodes a "#rrggbb" palette entry, falling back to white
func ParseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return white
	}
	return c
}

// ToTcell converts to a terminal truecolor
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Fade dims c toward black as life falls from 1 to 0
func Fade(c colorful.Color, life float64) colorful.Color {
	if life <= 0 {
		return black
	}
	if life >= 1 {
		return c
	}
	return black.BlendRgb(c, life)
}

// HandColor returns the cursor colour for a tracker state
func HandColor(s gesture.State) colorful.Color {
	if c, ok := handColors[s]; ok {
		return c
	}
	return white
}
