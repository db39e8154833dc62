package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/word-catch/audio"
	"github.com/lixenwraith/word-catch/config"
	"github.com/lixenwraith/word-catch/engine"
	"github.com/lixenwraith/word-catch/event"
	"github.com/lixenwraith/word-catch/input"
	"github.com/lixenwraith/word-catch/render"
	"github.com/lixenwraith/word-catch/status"
)

// controller routes intents from the input goroutine to the loop
// It never touches the session directly: samples go through the queue, everything else through Submit
type controller struct {
	cfg      config.Config
	loop     *engine.Loop
	queue    *event.SampleQueue
	cue      *audio.CuePlayer
	renderer *render.Renderer
	screen   tcell.Screen
	metrics  *status.Registry
	logger   *zap.Logger
	now      func() time.Time
}

// handle applies one intent; returns false to quit
func (c *controller) handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		c.logger.Info("quit requested")
		return false

	case input.IntentSample:
		c.queue.Push(event.SensorSample{Sample: in.Sample, At: c.now()})

	case input.IntentRestart:
		words, speed := c.cfg.Words, c.cfg.Speed
		c.loop.Submit(func(s *engine.Session) { s.StartRound(words, speed) })

	case input.IntentTogglePause:
		c.loop.Submit(func(s *engine.Session) { s.TogglePause() })

	case input.IntentToggleMute:
		muted := c.cue.ToggleMute()
		c.metrics.Bools.Get(status.KeyMuted).Store(muted || !c.cue.Ready())
		c.logger.Debug("mute toggled", zap.Bool("muted", muted))

	case input.IntentResize:
		c.screen.Sync()
		vp := c.renderer.Viewport()
		c.loop.Submit(func(s *engine.Session) { s.SetViewport(vp) })
	}
	return true
}
