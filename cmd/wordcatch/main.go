package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/word-catch/audio"
	"github.com/lixenwraith/word-catch/config"
	"github.com/lixenwraith/word-catch/core"
	"github.com/lixenwraith/word-catch/engine"
	"github.com/lixenwraith/word-catch/event"
	"github.com/lixenwraith/word-catch/input"
	"github.com/lixenwraith/word-catch/logger"
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/render"
	"github.com/lixenwraith/word-catch/status"
	"github.com/lixenwraith/word-catch/vmath"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wordcatch: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wordcatch", flag.ContinueOnError)
	flags := config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := flags.Resolve(os.LookupEnv)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Debug, cfg.LogDir)
	if err != nil {
		// Logging is optional, keep going without it
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer log.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting",
		zap.Uint64("seed", seed),
		zap.Int("words", len(cfg.Words)),
		zap.Float64("speed", cfg.Speed),
		zap.Int("fps", cfg.FrameRate),
	)

	metrics := status.NewRegistry()

	cue := audio.NewCuePlayer(cfg.AudioSettings(), log)
	if err := cue.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer cue.Close()
	metrics.Bools.Get(status.KeyMuted).Store(!cue.Ready())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashReset(screen.Fini)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	camera := render.NewPerspectiveCamera()
	renderer := render.NewRenderer(screen, camera, cfg.CellWidthPx, cfg.CellHeightPx, metrics, cfg.Debug)

	session := engine.NewSession(engine.Options{
		Projector: camera,
		Cue:       cue,
		Rand:      vmath.NewFastRand(seed),
		Logger:    log,
		Metrics:   metrics,
		Viewport:  renderer.Viewport(),
	})
	session.StartRound(cfg.Words, cfg.Speed)

	queue := event.NewSampleQueue()
	loop := engine.NewLoop(session, queue, parameter.FrameInterval(cfg.FrameRate), renderer.Draw)

	ctl := &controller{
		cfg:      cfg,
		loop:     loop,
		queue:    queue,
		cue:      cue,
		renderer: renderer,
		screen:   screen,
		metrics:  metrics,
		logger:   log,
		now:      time.Now,
	}

	base, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(base)

	g.Go(core.Guard(func() error {
		return loop.Run(ctx)
	}))

	g.Go(core.Guard(func() error {
		// Quitting from the keyboard ends the frame loop too
		defer cancel()
		return input.Pump(ctx, screen.PollEvent, input.NewMachine(cfg.CellWidthPx, cfg.CellHeightPx), ctl.handle)
	}))

	// Wake PollEvent so the pump sees cancellation
	g.Go(func() error {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	err = g.Wait()
	log.Info("exiting", zap.String("metrics", metrics.Line()))
	return err
}
