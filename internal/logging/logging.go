// Package logging owns the process-wide zerolog logger. The TUI holds the
// terminal, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger     = zerolog.Nop()
	logFile    *os.File
	logMu      sync.RWMutex
	defaultDir = os.TempDir
)

// DefaultFile returns the log path used when none is configured
func DefaultFile() string {
	return filepath.Join(defaultDir(), "listkit.log")
}

// ParseLevel parses level, falling back to info for unknown or empty values
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Init points the global logger at path (DefaultFile when empty).
// A level of "disabled" turns logging off without touching the filesystem.
func Init(level, path string) error {
	logMu.Lock()
	defer logMu.Unlock()

	closeLogFileLocked()

	lvl := ParseLevel(level)
	if lvl == zerolog.Disabled {
		logger = zerolog.Nop()
		return nil
	}

	if path == "" {
		path = DefaultFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	logger = newLogger(f, lvl)
	return nil
}

// InitWriter points the global logger at w. Used by tests.
func InitWriter(w io.Writer, level string) {
	logMu.Lock()
	defer logMu.Unlock()

	closeLogFileLocked()
	logger = newLogger(w, ParseLevel(level))
}

// Get returns the global logger
func Get() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// Component returns the global logger tagged with a component name
func Component(name string) zerolog.Logger {
	l := Get()
	return l.With().Str("component", name).Logger()
}

// Close flushes and closes the log file, leaving a no-op logger behind
func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

// closeLogFileLocked must be called with logMu held
func closeLogFileLocked() {
	if logFile == nil {
		return
	}
	_ = logFile.Sync()
	_ = logFile.Close()
	logFile = nil
	logger = zerolog.Nop()
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
