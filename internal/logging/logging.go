// Package logging builds the zerolog logger used across lyricboss.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing JSON lines to path at the given level.
// Without a path the logger writes human-readable lines to stderr and
// drops anything below warn, because the terminal belongs to the game.
func New(level, path string) (zerolog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if path == "" {
		if lvl < zerolog.WarnLevel {
			lvl = zerolog.WarnLevel
		}
		out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
		return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}
	return zerolog.New(file).Level(lvl).With().Timestamp().Logger(), file, nil
}

// ParseLevel accepts zerolog level names; empty means DefaultLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}
