package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/word-catch/audio"
	"github.com/lixenwraith/word-catch/parameter"
	"github.com/lixenwraith/word-catch/vmath"
)

var (
	ErrInvalidSpeed     = errors.New("speed multiplier out of range")
	ErrInvalidFrameRate = errors.New("frame rate out of range")
)

// Environment variable names
const (
	EnvWords        = "WORDCATCH_WORDS"
	EnvSpeed        = "WORDCATCH_SPEED"
	EnvSeed         = "WORDCATCH_SEED"
	EnvAudioEnabled = "WORDCATCH_AUDIO_ENABLED"
	EnvVolume       = "WORDCATCH_VOLUME"
	EnvDebug        = "WORDCATCH_DEBUG"
)

// Config is the resolved game configuration
type Config struct {
	Words     []string `yaml:"words"`
	Speed     float64  `yaml:"speed"`
	Seed      uint64   `yaml:"seed"` // 0 seeds from the clock
	FrameRate int      `yaml:"frame_rate"`

	Audio AudioConfig `yaml:"audio"`

	Debug  bool   `yaml:"debug"`
	LogDir string `yaml:"log_dir"`

	CellWidthPx  int `yaml:"cell_width_px"`
	CellHeightPx int `yaml:"cell_height_px"`
}

// AudioConfig is the file form of audio.Config
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Words:        append([]string(nil), parameter.DefaultWords...),
		Speed:        parameter.SpeedMultiplierDefault,
		FrameRate:    parameter.FrameRateDefault,
		Audio:        AudioConfig{Enabled: true, Volume: parameter.AudioVolumeDefault},
		LogDir:       "logs",
		CellWidthPx:  parameter.CellWidthPxDefault,
		CellHeightPx: parameter.CellHeightPxDefault,
	}
}

// Decode reads YAML from r over cfg; keys absent from the document keep their current values
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// LoadFile layers a YAML file over the defaults; an empty path yields the defaults
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from environment variables read through lookup
// Unset variables are skipped; malformed values are reported
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvWords); ok {
		cfg.Words = ParseWordList(v)
	}
	if v, ok := lookup(EnvSpeed); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSpeed, err)
		}
		cfg.Speed = f
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v, ok := lookup(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		cfg.Audio.Enabled = b
	}
	if v, ok := lookup(EnvVolume); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		cfg.Audio.Volume = f
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}
	return nil
}

// ParseWordList splits a comma separated list, trimming blanks and dropping empty entries
func ParseWordList(s string) []string {
	parts := strings.Split(s, ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := strings.TrimSpace(p); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Validate rejects out of range values and normalises the rest in place
func (c *Config) Validate() error {
	if c.Speed < parameter.SpeedMultiplierMin || c.Speed > parameter.SpeedMultiplierMax {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrInvalidSpeed, c.Speed,
			parameter.SpeedMultiplierMin, parameter.SpeedMultiplierMax)
	}
	if c.FrameRate < parameter.FrameRateMin || c.FrameRate > parameter.FrameRateMax {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidFrameRate, c.FrameRate,
			parameter.FrameRateMin, parameter.FrameRateMax)
	}

	c.Audio.Volume = vmath.Clamp(c.Audio.Volume, 0, 1)
	if c.CellWidthPx <= 0 {
		c.CellWidthPx = parameter.CellWidthPxDefault
	}
	if c.CellHeightPx <= 0 {
		c.CellHeightPx = parameter.CellHeightPxDefault
	}
	return nil
}

// AudioSettings converts to the cue player configuration
func (c *Config) AudioSettings() audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.Volume = c.Audio.Volume
	return ac
}
