package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFileName = "wordcatch.log"

	// MaxLogSize triggers rotation of an existing log before it is reopened
	MaxLogSize = 10 * 1024 * 1024
)

// New returns a JSON file logger writing to dir/wordcatch.log when debug is on, otherwise a no-op logger
// Output never goes to stdout or stderr, which belong to the terminal UI
func New(debug bool, dir string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop(), fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, LogFileName)
	if err := rotate(path); err != nil {
		return zap.NewNop(), err
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
		DisableCaller:    true,
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// rotate renames an oversized log to a timestamped sibling
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
