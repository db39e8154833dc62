package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/word-catch/event"
	"github.com/lixenwraith/word-catch/parameter"
)

// Command is a control operation executed on the loop goroutine
type Command func(*Session)

// Loop drives a Session from a frame ticker
// It is the only goroutine that touches the session; other goroutines talk to it through the sample queue and Submit
type Loop struct {
	session  *Session
	queue    *event.SampleQueue
	interval time.Duration
	commands chan Command
	onFrame  func(Snapshot)
	logger   *zap.Logger
}

// NewLoop creates a loop ticking every interval; onFrame receives a snapshot after each frame and may be nil
func NewLoop(session *Session, queue *event.SampleQueue, interval time.Duration, onFrame func(Snapshot)) *Loop {
	if interval <= 0 {
		interval = parameter.FrameInterval(parameter.FrameRateDefault)
	}
	return &Loop{
		session:  session,
		queue:    queue,
		interval: interval,
		commands: make(chan Command, parameter.CommandQueueSize),
		onFrame:  onFrame,
		logger:   session.logger,
	}
}

// Submit queues a command for the next frame; returns false if the command buffer is full
func (l *Loop) Submit(cmd Command) bool {
	select {
	case l.commands <- cmd:
		return true
	default:
		l.logger.Warn("loop command dropped, buffer full")
		return false
	}
}

// Frame runs one iteration: commands, then pending samples in arrival order, then physics
// Catches are resolved against the positions the player saw, before tokens move again
func (l *Loop) Frame() {
	l.drainCommands()

	for _, s := range l.queue.Consume() {
		l.session.HandleSample(s.Sample, s.At)
	}

	l.session.Tick()

	if l.onFrame != nil {
		l.onFrame(l.session.Snapshot())
	}
}

func (l *Loop) drainCommands() {
	for {
		select {
		case cmd := <-l.commands:
			cmd(l.session)
		default:
			return
		}
	}
}

// Run ticks until ctx is cancelled, then stops the round and discards unread samples
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Debug("frame loop started", zap.Duration("interval", l.interval))

	for {
		select {
		case <-ctx.Done():
			dropped := l.queue.Discard()
			l.session.Stop()
			l.logger.Debug("frame loop stopped", zap.Int("discarded_samples", dropped))
			return nil
		case <-ticker.C:
			l.Frame()
		}
	}
}
