package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/gesture"
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/particle"
	"github.com/lixenwraith/word-catch/physics"
	"github.com/lixenwraith/word-catch/status"
	"github.com/lixenwraith/word-catch/vmath"
)

// FeedbackCue plays fire-and-forget feedback for catch events
type FeedbackCue interface {
	PlayCatch()
	PlayComplete()
}

type silentCue struct{}

func (silentCue) PlayCatch()    {}
func (silentCue) PlayComplete() {}

// Options configures a Session; nil fields fall back to defaults
type Options struct {
	Projector gesture.Projector
	Cue       FeedbackCue
	Rand      *vmath.FastRand
	Logger    *zap.Logger
	Metrics   *status.Registry
	Clock     TimeProvider
	Viewport  gesture.Viewport

	// BoundaryExtent sizes the volume, 0 uses parameter.BoundaryExtent
	BoundaryExtent float64
	// HitRadiusPx overrides the grab reach, 0 uses parameter.HitRadiusPx
	HitRadiusPx float64
}

// Session is the authoritative state of one player's game
// All mutating methods must be called from a single goroutine, normally the frame Loop
type Session struct {
	tokens    []core.Token
	particles *particle.System
	tracker   *gesture.Tracker
	clock     RoundClock

	score    int
	started  bool
	finished bool
	stopped  bool
	paused   bool

	viewport gesture.Viewport
	extent   float64

	rng    *vmath.FastRand
	cue    FeedbackCue
	time   TimeProvider
	logger *zap.Logger

	// Cached metric pointers
	statCatches   *atomic.Int64
	statRejected  *atomic.Int64
	statFrames    *atomic.Int64
	statParticles *atomic.Int64
	statActive    *atomic.Int64
	statElapsed   *atomic.Int64
	statSamples   *atomic.Int64
	statFinished  *atomic.Bool
	statHand      *status.AtomicString
	statCooldown  *status.AtomicFloat
}

// NewSession creates an idle session; call StartRound to play
func NewSession(opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if opts.Cue == nil {
		opts.Cue = silentCue{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicTimeProvider()
	}
	if opts.BoundaryExtent <= 0 {
		opts.BoundaryExtent = parameter.BoundaryExtent
	}

	tracker := gesture.NewTracker(opts.Projector)
	tracker.SetHitRadius(opts.HitRadiusPx)

	reg := opts.Metrics
	return &Session{
		particles:     particle.NewSystem(opts.Rand),
		tracker:       tracker,
		viewport:      opts.Viewport,
		extent:        opts.BoundaryExtent,
		rng:           opts.Rand,
		cue:           opts.Cue,
		time:          opts.Clock,
		logger:        opts.Logger,
		statCatches:   reg.Ints.Get(status.KeyCatches),
		statRejected:  reg.Ints.Get(status.KeyRejected),
		statFrames:    reg.Ints.Get(status.KeyFrames),
		statParticles: reg.Ints.Get(status.KeyParticlesLive),
		statActive:    reg.Ints.Get(status.KeyTokensActive),
		statElapsed:   reg.Ints.Get(status.KeyElapsedMs),
		statSamples:   reg.Ints.Get(status.KeySamples),
		statFinished:  reg.Bools.Get(status.KeyFinished),
		statHand:      reg.Strings.Get(status.KeyHandState),
		statCooldown:  reg.Floats.Get(status.KeyCooldown),
	}
}

// StartRound replaces all tokens with a fresh set built from words and resets score, particles, clock and hand state
// An empty word list yields a round that is finished immediately
func (s *Session) StartRound(words []string, speedMultiplier float64) {
	speed := parameter.BaseSpeed * speedMultiplier

	tokens := make([]core.Token, 0, len(words))
	for i, text := range words {
		tokens = append(tokens, core.Token{
			ID:    s.tokenID(i),
			Text:  text,
			Color: parameter.TokenPalette[i%len(parameter.TokenPalette)],
			Position: vmath.Vec3F{
				X: (s.rng.Float64() - 0.5) * parameter.BoundaryExtent,
				Y: parameter.SpawnCenterY + (s.rng.Float64()-0.5)*parameter.SpawnSpreadY,
				Z: parameter.SpawnNearZ - s.rng.Float64()*parameter.SpawnDepthZ,
			},
			Velocity: vmath.Vec3F{
				X: (s.rng.Float64() - 0.5) * speed * 2,
				Y: (s.rng.Float64() - 0.5) * speed * 2,
				Z: (s.rng.Float64() - 0.5) * speed * 2,
			},
		})
	}

	s.tokens = tokens
	s.particles.Reset()
	s.tracker.Reset()
	s.clock.Reset()
	s.score = 0
	s.started = true
	s.stopped = false
	s.paused = false
	s.finished = len(tokens) == 0

	s.statCatches.Store(0)
	s.statRejected.Store(0)
	s.statParticles.Store(0)
	s.statActive.Store(int64(len(tokens)))
	s.statElapsed.Store(0)
	s.statFinished.Store(s.finished)
	s.statHand.Store(gesture.StateIdle.String())
	s.statCooldown.Set(1)

	s.logger.Info("round started",
		zap.Int("tokens", len(tokens)),
		zap.Float64("speed_multiplier", speedMultiplier),
	)
	if s.finished {
		s.logger.Warn("round started with an empty word list")
	}
}

// tokenID draws a uuid from the session rng so a seed reproduces ids
func (s *Session) tokenID(i int) string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return fmt.Sprintf("%s-%d", parameter.TokenIDPrefix, i)
	}
	return fmt.Sprintf("%s-%d-%s", parameter.TokenIDPrefix, i, id)
}

// HandleSample feeds one sensor sample stamped at through the gesture tracker
// The first visible hand starts the round clock; a resulting catch intent is applied immediately
// Returns true when the sample produced an accepted catch
func (s *Session) HandleSample(sample gesture.Sample, at time.Time) bool {
	if !s.started || s.stopped || s.paused {
		return false
	}
	s.statSamples.Add(1)

	if sample.HandVisible && !s.finished && s.clock.Start(at) {
		s.logger.Debug("round clock started")
	}

	intent, ok := s.tracker.Process(sample, at, s.tokens, s.viewport)
	s.statHand.Store(s.tracker.State().State.String())
	s.statCooldown.Set(s.tracker.CooldownProgress(at))
	if !ok {
		return false
	}
	return s.handleCatchAt(intent.TokenID, intent.At)
}

// HandleCatch marks a token caught; unknown and already caught ids are ignored
// Returns true when the call changed state
func (s *Session) HandleCatch(tokenID string) bool {
	return s.handleCatchAt(tokenID, s.time.Now())
}

func (s *Session) handleCatchAt(tokenID string, at time.Time) bool {
	idx := core.FindToken(s.tokens, tokenID)
	if idx < 0 || s.tokens[idx].Caught {
		s.statRejected.Add(1)
		s.logger.Debug("catch ignored", zap.String("token", tokenID), zap.Bool("known", idx >= 0))
		return false
	}

	tok := &s.tokens[idx]
	tok.Caught = true
	s.particles.SpawnBurst(tok.Position, tok.Color)
	s.cue.PlayCatch()

	s.score = core.CountCaught(s.tokens)
	s.statCatches.Store(int64(s.score))
	s.statActive.Store(int64(len(s.tokens) - s.score))
	s.statParticles.Store(int64(s.particles.Len()))

	s.logger.Info("token caught",
		zap.String("token", tok.ID),
		zap.String("text", tok.Text),
		zap.Int("score", s.score),
		zap.Int("total", len(s.tokens)),
	)

	if s.score == len(s.tokens) {
		s.finished = true
		s.clock.Freeze(at)
		s.statFinished.Store(true)
		s.statElapsed.Store(s.clock.Elapsed(at).Milliseconds())
		s.cue.PlayComplete()
		s.logger.Info("round finished", zap.Duration("elapsed", s.clock.Elapsed(at)))
	}
	return true
}

// Tick advances physics and particles by one frame
// No-op unless a round is running, unfinished and unpaused
func (s *Session) Tick() {
	if !s.Running() {
		return
	}
	physics.Step(s.tokens, s.extent)
	s.particles.Step()

	s.statFrames.Add(1)
	s.statParticles.Store(int64(s.particles.Len()))
	s.statElapsed.Store(s.clock.Elapsed(s.time.Now()).Milliseconds())
}

// Running reports whether Tick currently advances the simulation
func (s *Session) Running() bool {
	return s.started && !s.finished && !s.stopped && !s.paused
}

// Stop ends the round without finishing it; state stays readable
func (s *Session) Stop() {
	if !s.started || s.stopped {
		return
	}
	s.stopped = true
	s.clock.Freeze(s.time.Now())
	s.logger.Info("round stopped", zap.Int("score", s.score), zap.Int("total", len(s.tokens)))
}

// Pause suspends simulation, sample handling and the round clock
func (s *Session) Pause() {
	if s.paused || !s.started {
		return
	}
	s.paused = true
	s.clock.Pause(s.time.Now())
}

// Resume continues after Pause
func (s *Session) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.clock.Resume(s.time.Now())
}

// TogglePause flips between Pause and Resume
func (s *Session) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// SetViewport updates the presentation size used for hit testing
func (s *Session) SetViewport(vp gesture.Viewport) {
	s.viewport = vp
}

// Viewport returns the current presentation size
func (s *Session) Viewport() gesture.Viewport {
	return s.viewport
}

// Snapshot copies the state the presentation layer needs
func (s *Session) Snapshot() Snapshot {
	now := s.time.Now()

	tokens := make([]core.Token, len(s.tokens))
	copy(tokens, s.tokens)

	return Snapshot{
		Tokens:           tokens,
		Particles:        s.particles.Particles(),
		Score:            s.score,
		Total:            len(s.tokens),
		Started:          s.started,
		Finished:         s.finished,
		Paused:           s.paused,
		Hand:             s.tracker.State(),
		CooldownActive:   s.tracker.CooldownActive(now),
		CooldownProgress: s.tracker.CooldownProgress(now),
		ClockStarted:     s.clock.Started(),
		Elapsed:          s.clock.Elapsed(now),
	}
}
