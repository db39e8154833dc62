package audio

import (
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/vmath"
)

// Config holds playback settings for the cue player
type Config struct {
	Enabled    bool
	Volume     float64 // Master gain 0.0-1.0
	SampleRate int
}

// DefaultConfig returns enabled audio at full volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioVolumeDefault,
		SampleRate: parameter.AudioSampleRate,
	}
}

// clampVolume keeps v inside [0,1]
func clampVolume(v float64) float64 {
	return vmath.Clamp(v, 0, 1)
}
