package gesture

import (
	"time"

	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/parameter"
)

// Tracker turns hand samples into catch intents
// It enforces one catch per continuous grab (lock) and one catch per cooldown window
type Tracker struct {
	state     InteractionState
	projector Projector
	cooldown  time.Duration
	radius    float64
}

// NewTracker creates a tracker hit testing through projector
func NewTracker(projector Projector) *Tracker {
	return &Tracker{
		projector: projector,
		cooldown:  parameter.CatchCooldown,
		radius:    parameter.HitRadiusPx,
	}
}

// SetHitRadius overrides the pixel hit radius, non-positive values are ignored
func (t *Tracker) SetHitRadius(px float64) {
	if px > 0 {
		t.radius = px
	}
}

// Process applies one sample and returns a catch intent when the grab reached a token
// Cooldown is evaluated against now on every sample, independently of lock and hand state
func (t *Tracker) Process(s Sample, now time.Time, tokens []core.Token, vp Viewport) (Intent, bool) {
	if !s.HandVisible {
		// Lock and cooldown survive the hand leaving the frame
		t.state.HandVisible = false
		t.state.IsGrabbing = false
		t.state.State = StateIdle
		return Intent{}, false
	}

	t.state.HandVisible = true
	t.state.HandPosition = s.Position()
	t.state.IsGrabbing = s.Grabbing

	if !s.Grabbing {
		// Releasing re-arms the next catch
		t.state.IsLocked = false
		t.state.State = StateTracking
		return Intent{}, false
	}

	if t.state.IsLocked {
		t.state.State = StateGrabLocked
		return Intent{}, false
	}

	if t.CooldownActive(now) {
		t.state.State = StateCooldown
		return Intent{}, false
	}

	t.state.State = StateGrabPending
	idx, dist, hit := HitTest(t.projector, tokens, t.state.HandPosition, vp, t.radius)
	if !hit {
		return Intent{}, false
	}

	t.state.LastCatch = now
	t.state.IsLocked = true
	t.state.State = StateGrabLocked

	return Intent{TokenID: tokens[idx].ID, At: now, Distance: dist}, true
}

// CooldownActive reports whether now falls inside the window after the last accepted catch
func (t *Tracker) CooldownActive(now time.Time) bool {
	if t.state.LastCatch.IsZero() {
		return false
	}
	return now.Sub(t.state.LastCatch) < t.cooldown
}

// CooldownProgress returns the elapsed fraction of the cooldown window, 1 when inactive
func (t *Tracker) CooldownProgress(now time.Time) float64 {
	if !t.CooldownActive(now) {
		return 1
	}
	p := float64(now.Sub(t.state.LastCatch)) / float64(t.cooldown)
	if p < 0 {
		return 0
	}
	return p
}

// State returns a copy of the interaction state
func (t *Tracker) State() InteractionState {
	return t.state
}

// Reset clears hand, lock and cooldown for a new round
func (t *Tracker) Reset() {
	t.state = InteractionState{}
}
