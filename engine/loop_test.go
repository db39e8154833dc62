package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/word-catch/event"
	"github.com/lixenwraith/word-catch/vmath"
)

func TestLoopResolvesSamplesBeforePhysics(t *testing.T) {
	f := newFixture(21)
	f.session.StartRound([]string{"run", "swim"}, 1)
	f.spreadTokens()
	f.session.tokens[0].Velocity = vmath.Vec3F{X: 0.02}

	queue := event.NewSampleQueue()
	var frames []Snapshot
	loop := NewLoop(f.session, queue, time.Millisecond, func(s Snapshot) { frames = append(frames, s) })

	queue.Push(event.SensorSample{Sample: grabAt(0), At: f.clock.Now()})
	loop.Frame()

	require.Len(t, frames, 1)
	tok := frames[0].Tokens[0]
	assert.True(t, tok.Caught, "hit tested against the pre-step position")
	assert.Equal(t, vmath.Vec3F{X: 0, Y: 1.5, Z: -3}, tok.Position, "caught tokens do not move")
	assert.Zero(t, queue.Len())
}

func TestLoopAppliesSamplesInOrder(t *testing.T) {
	f := newFixture(22)
	f.session.StartRound([]string{"run", "swim"}, 1)
	f.spreadTokens()

	queue := event.NewSampleQueue()
	loop := NewLoop(f.session, queue, time.Millisecond, nil)

	// Grab on token 0 then slide onto token 1 without releasing: the lock holds
	queue.Push(event.SensorSample{Sample: grabAt(0), At: f.clock.Now()})
	queue.Push(event.SensorSample{Sample: grabAt(1), At: f.clock.Now().Add(3 * time.Second)})
	loop.Frame()

	snap := f.session.Snapshot()
	assert.True(t, snap.Tokens[0].Caught)
	assert.False(t, snap.Tokens[1].Caught)
}

func TestLoopRunsCommandsFirst(t *testing.T) {
	f := newFixture(23)
	queue := event.NewSampleQueue()
	loop := NewLoop(f.session, queue, time.Millisecond, nil)

	require.True(t, loop.Submit(func(s *Session) { s.StartRound([]string{"run"}, 1) }))
	loop.Frame()

	snap := f.session.Snapshot()
	assert.True(t, snap.Started)
	assert.Equal(t, int64(1), f.metrics.Ints.Get("frame.count").Load(), "round started before the tick")
}

func TestLoopSubmitFull(t *testing.T) {
	f := newFixture(24)
	loop := NewLoop(f.session, event.NewSampleQueue(), time.Millisecond, nil)

	accepted := 0
	for i := 0; i < 100; i++ {
		if loop.Submit(func(*Session) {}) {
			accepted++
		}
	}
	assert.Equal(t, cap(loop.commands), accepted)
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	f := newFixture(25)
	f.session.StartRound([]string{"run"}, 1)
	queue := event.NewSampleQueue()
	loop := NewLoop(f.session, queue, time.Hour, nil)

	queue.Push(event.SensorSample{Sample: grabAt(0), At: f.clock.Now()})
	queue.Push(event.SensorSample{Sample: grabAt(0), At: f.clock.Now()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}

	assert.Zero(t, queue.Len(), "pending samples discarded")
	assert.False(t, f.session.Running())
	assert.Zero(t, f.session.Snapshot().Score)
}

func TestLoopRunTicks(t *testing.T) {
	f := newFixture(26)
	f.session.StartRound([]string{"run"}, 1)
	queue := event.NewSampleQueue()

	frames := make(chan Snapshot, 64)
	loop := NewLoop(f.session, queue, time.Millisecond, func(s Snapshot) {
		select {
		case frames <- s:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame produced")
	}
	cancel()
	assert.NoError(t, <-done)
}
