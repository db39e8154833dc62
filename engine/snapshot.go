package engine

import (
	"time"

	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/gesture"
)

// Snapshot is a read-only copy of session state for the presentation layer
// Tokens and Particles are owned by the snapshot; mutating them does not affect the session
type Snapshot struct {
	Tokens    []core.Token
	Particles []core.Particle

	Score int
	Total int

	Started  bool
	Finished bool
	Paused   bool

	Hand             gesture.InteractionState
	CooldownActive   bool
	CooldownProgress float64

	ClockStarted bool
	Elapsed      time.Duration
}

// Progress returns Score/Total in [0,1], 0 for an empty round
func (s *Snapshot) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total)
}

// AwaitingHand reports whether a running round is still waiting for the first hand to start its clock
func (s *Snapshot) AwaitingHand() bool {
	return s.Started && !s.Finished && !s.ClockStarted
}
