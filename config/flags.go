package config

import (
	"flag"

	"github.com/lixenwraith/word-catch/parameter"
)

// Flags holds command-line overrides; only flags the user actually set are applied
type Flags struct {
	fs *flag.FlagSet

	Path  string
	words string
	speed float64
	seed  uint64
	mute  bool
	debug bool
}

// BindFlags registers the config flags on fs
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "path to a YAML config file")
	fs.StringVar(&f.words, "words", "", "comma separated word list")
	fs.Float64Var(&f.speed, "speed", parameter.SpeedMultiplierDefault, "speed multiplier (0.5-5)")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.BoolVar(&f.mute, "mute", false, "disable audio")
	fs.BoolVar(&f.debug, "debug", false, "write a debug log and show metrics")
	return f
}

// Apply copies every explicitly set flag into cfg
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "words":
			cfg.Words = ParseWordList(f.words)
		case "speed":
			cfg.Speed = f.speed
		case "seed":
			cfg.Seed = f.seed
		case "mute":
			if f.mute {
				cfg.Audio.Enabled = false
			}
		case "debug":
			cfg.Debug = f.debug
		}
	})
}

// Resolve builds the final configuration: defaults, file, environment, flags, then validation
func (f *Flags) Resolve(lookup func(string) (string, bool)) (Config, error) {
	cfg, err := LoadFile(f.Path)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	f.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
