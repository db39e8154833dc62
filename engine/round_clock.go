package engine

import (
	"fmt"
	"time"
)

// RoundClock measures how long the player took to clear a round
// It starts at the first visible hand, not at round start, and freezes when the round finishes
// Time spent paused is excluded
type RoundClock struct {
	startedAt time.Time // zero until the hand is first seen
	frozenAt  time.Time // zero while running

	pausedAt    time.Time // zero unless paused
	totalPaused time.Duration
}

// Start records the start time once; later calls are ignored
// Returns true when this call started the clock
func (c *RoundClock) Start(now time.Time) bool {
	if !c.startedAt.IsZero() {
		return false
	}
	c.startedAt = now
	return true
}

// Started reports whether the clock has a start time
func (c *RoundClock) Started() bool {
	return !c.startedAt.IsZero()
}

// StartedAt returns the start time, zero if not started
func (c *RoundClock) StartedAt() time.Time {
	return c.startedAt
}

// Freeze stops elapsed time at now
func (c *RoundClock) Freeze(now time.Time) {
	if !c.Started() || c.Frozen() {
		return
	}
	if c.Paused() {
		now = c.pausedAt
	}
	c.frozenAt = now
}

// Frozen reports whether the clock was stopped for good
func (c *RoundClock) Frozen() bool {
	return !c.frozenAt.IsZero()
}

// Pause suspends elapsed time until Resume
func (c *RoundClock) Pause(now time.Time) {
	if c.Paused() || c.Frozen() {
		return
	}
	c.pausedAt = now
}

// Resume continues elapsed time, adding the pause to the excluded total
func (c *RoundClock) Resume(now time.Time) {
	if !c.Paused() {
		return
	}
	if c.Started() {
		start := c.pausedAt
		if start.Before(c.startedAt) {
			start = c.startedAt
		}
		if d := now.Sub(start); d > 0 {
			c.totalPaused += d
		}
	}
	c.pausedAt = time.Time{}
}

// Paused reports whether the clock is suspended
func (c *RoundClock) Paused() bool {
	return !c.pausedAt.IsZero()
}

// Elapsed returns running time as of now
// Zero before start, frozen after Freeze, held while paused
func (c *RoundClock) Elapsed(now time.Time) time.Duration {
	if !c.Started() {
		return 0
	}
	end := now
	switch {
	case c.Frozen():
		end = c.frozenAt
	case c.Paused():
		end = c.pausedAt
	}
	d := end.Sub(c.startedAt) - c.totalPaused
	if d < 0 {
		return 0
	}
	return d
}

// Reset clears the clock for a new round
func (c *RoundClock) Reset() {
	*c = RoundClock{}
}

// FormatElapsed renders a duration as seconds with two decimals, e.g. "12.34s"
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
