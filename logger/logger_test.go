package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := New(false, dir)
	require.NoError(t, err)
	l.Info("dropped")

	assert.False(t, l.Core().Enabled(0))
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no directory without debug")
}

func TestNewWritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := New(true, dir)
	require.NoError(t, err)
	l.Info("round started")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"round started"`)
}

func TestNewRotatesLargeLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LogFileName)
	require.NoError(t, os.WriteFile(path, make([]byte, MaxLogSize+1), 0o644))

	l, err := New(true, dir)
	require.NoError(t, err)
	l.Debug("fresh")
	require.NoError(t, l.Sync())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := false
	for _, e := range entries {
		if e.Name() != LogFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "expected a rotated log file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(MaxLogSize))
}
