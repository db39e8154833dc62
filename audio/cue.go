package audio

import (
	"errors"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/word-catch/parameter"
)

// ErrNotInitialized is returned when playback is requested before Initialize succeeded
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// CuePlayer plays the catch and completion cues through a single mixer
// Every method is safe to call without an audio device; cues are then dropped
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	enabled     bool
	initialized bool
	logger      *zap.Logger
}

// NewCuePlayer creates a player; call Initialize to open the speaker
func NewCuePlayer(cfg Config, logger *zap.Logger) *CuePlayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &CuePlayer{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(cfg.SampleRate),
		volume:  clampVolume(cfg.Volume),
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Initialize opens the speaker and starts the mixer
// A disabled player stays silent and returns nil
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", zap.Int("sample_rate", int(p.rate)))
	return nil
}

// Close silences the mixer; the speaker itself stays open
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Ready reports whether cues reach the speaker
func (p *CuePlayer) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayCatch plays the catch chirp
func (p *CuePlayer) PlayCatch() {
	_ = p.Play(NewChirpGenerator(p.rate))
}

// PlayComplete plays the round-complete arpeggio
func (p *CuePlayer) PlayComplete() {
	_ = p.Play(NewCompletionStreamer(p.rate))
}

// Play adds s to the mixer at the current volume
// Muted playback is a silent success
func (p *CuePlayer) Play(s beep.Streamer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}
	if p.muted || p.volume <= 0 {
		return nil
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
	return nil
}

// SetVolume sets master gain, clamped to [0,1]
func (p *CuePlayer) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clampVolume(v)
}

// Volume returns master gain
func (p *CuePlayer) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// ToggleMute flips mute and returns the new state
func (p *CuePlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether cues are suppressed
func (p *CuePlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// withVolume wraps s in a linear gain
// Log2(0) is -Inf, so zero maps to Silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
