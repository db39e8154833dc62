package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolumeDefault is the master gain applied to every cue
	AudioVolumeDefault = 1.0
)

// Catch chirp: exponential sweep up with exponential gain fall-off
const (
	ChirpStartFreq    = 300.0
	ChirpEndFreq      = 1000.0
	ChirpSweep        = 100 * time.Millisecond
	ChirpStartGain    = 0.3
	ChirpEndGain      = 0.01
	ChirpDuration     = 150 * time.Millisecond
	CompleteNoteGap   = 90 * time.Millisecond
	CompleteNoteDur   = 120 * time.Millisecond
	CompleteNoteGain  = 0.25
	CompleteNoteDecay = 18.0
)

// CompleteNotes is the round-complete arpeggio (C5 E5 G5 C6)
var CompleteNotes = []float64{523.25, 659.25, 783.99, 1046.50}
