package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/word-catch/parameter"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, parameter.DefaultWords, cfg.Words)
	assert.Equal(t, parameter.SpeedMultiplierDefault, cfg.Speed)
	assert.Equal(t, parameter.FrameRateDefault, cfg.FrameRate)
	assert.True(t, cfg.Audio.Enabled)
	require.NoError(t, cfg.Validate())

	// Defaults must not alias the package word list
	cfg.Words[0] = "changed"
	assert.NotEqual(t, "changed", parameter.DefaultWords[0])
}

func TestParseWordList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"run,swim", []string{"run", "swim"}},
		{"  sports day , play ", []string{"sports day", "play"}},
		{"a,,b, ,", []string{"a", "b"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseWordList(tt.in))
		})
	}
}

func TestDecodeKeepsUnsetKeys(t *testing.T) {
	cfg := Default()
	doc := `
speed: 2.5
words: [alpha, beta]
audio:
  volume: 0.3
`
	require.NoError(t, Decode(strings.NewReader(doc), &cfg))

	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.Words)
	assert.Equal(t, 0.3, cfg.Audio.Volume)
	assert.True(t, cfg.Audio.Enabled, "absent key keeps default")
	assert.Equal(t, parameter.FrameRateDefault, cfg.FrameRate)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := Decode(strings.NewReader("sped: 2\n"), &cfg)
	assert.Error(t, err)
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg := Default()
	assert.NoError(t, Decode(strings.NewReader(""), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "wordcatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\nframe_rate: 30\n"), 0o644))
	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.FrameRate)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, envMap(map[string]string{
		EnvWords:        "one, two",
		EnvSpeed:        "3",
		EnvSeed:         "7",
		EnvAudioEnabled: "false",
		EnvVolume:       "0.5",
		EnvDebug:        "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, cfg.Words)
	assert.Equal(t, 3.0, cfg.Speed)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.True(t, cfg.Debug)
}

func TestApplyEnvMalformed(t *testing.T) {
	for _, key := range []string{EnvSpeed, EnvSeed, EnvAudioEnabled, EnvVolume, EnvDebug} {
		t.Run(key, func(t *testing.T) {
			cfg := Default()
			err := ApplyEnv(&cfg, envMap(map[string]string{key: "not-a-value"}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"speed low bound", func(c *Config) { c.Speed = 0.5 }, nil},
		{"speed high bound", func(c *Config) { c.Speed = 5 }, nil},
		{"speed too low", func(c *Config) { c.Speed = 0.4 }, ErrInvalidSpeed},
		{"speed too high", func(c *Config) { c.Speed = 5.1 }, ErrInvalidSpeed},
		{"fps zero", func(c *Config) { c.FrameRate = 0 }, ErrInvalidFrameRate},
		{"fps too high", func(c *Config) { c.FrameRate = 241 }, ErrInvalidFrameRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateNormalises(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volume = 7
	cfg.CellWidthPx = 0
	cfg.CellHeightPx = -3
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1.0, cfg.Audio.Volume)
	assert.Equal(t, parameter.CellWidthPxDefault, cfg.CellWidthPx)
	assert.Equal(t, parameter.CellHeightPxDefault, cfg.CellHeightPx)

	cfg.Audio.Volume = -1
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.0, cfg.Audio.Volume)
}

func TestPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordcatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("speed: 2\nseed: 1\nwords: [file]\ndebug: true\n"), 0o644))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-speed", "4", "-mute"}))

	cfg, err := flags.Resolve(envMap(map[string]string{
		EnvSpeed: "3",
		EnvSeed:  "9",
	}))
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Speed, "flag beats env and file")
	assert.Equal(t, uint64(9), cfg.Seed, "env beats file")
	assert.Equal(t, []string{"file"}, cfg.Words, "file beats defaults")
	assert.True(t, cfg.Debug, "unset flag does not reset the file value")
	assert.False(t, cfg.Audio.Enabled)
}

func TestResolveRejectsInvalid(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-speed", "9"}))

	_, err := flags.Resolve(envMap(nil))
	assert.ErrorIs(t, err, ErrInvalidSpeed)
}

func TestAudioSettings(t *testing.T) {
	cfg := Default()
	cfg.Audio = AudioConfig{Enabled: false, Volume: 0.2}
	ac := cfg.AudioSettings()
	assert.False(t, ac.Enabled)
	assert.Equal(t, 0.2, ac.Volume)
	assert.Equal(t, parameter.AudioSampleRate, ac.SampleRate)
}
