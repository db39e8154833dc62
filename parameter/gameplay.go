package parameter

import "time"

// Round
const (
	// BaseSpeed is the per-frame token speed before the speed multiplier is applied
	BaseSpeed = 0.015

	// SpeedMultiplierDefault is the multiplier used when none is configured
	SpeedMultiplierDefault = 1.5

	// SpeedMultiplierMin/Max bound the configurable multiplier
	SpeedMultiplierMin = 0.5
	SpeedMultiplierMax = 5.0

	// TokenIDPrefix prefixes every token id
	TokenIDPrefix = "word"
)

// Catch pacing
const (
	// CatchCooldown is the global window after an accepted catch during which no other catch is accepted
	CatchCooldown = 2000 * time.Millisecond
)

// DefaultWords is the word list used when no list is configured
var DefaultWords = []string{
	"run",
	"swim",
	"jump",
	"throw",
	"catch",
	"sports day",
	"play",
}

// TokenPalette is cycled by token index at round start
var TokenPalette = []string{
	"#FF5733",
	"#33FF57",
	"#3357FF",
	"#F333FF",
	"#FFFF33",
	"#33FFFF",
	"#FF33A8",
	"#FFA500",
	"#00FF9F",
	"#FF0055",
}
