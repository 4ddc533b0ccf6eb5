// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// the convenience constructors used throughout safevault.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Secret values, labels and passwords must never be passed to a logger.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MKhiriev/go-safe-vault/internal/config"
	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "tui",
// "cli") configured by cfg.
//
// The logger is configured with:
//   - the level parsed from cfg.Level (info when empty or unknown);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
//
// Output is appended to cfg.File in JSON format. When the file cannot be
// opened log lines are discarded: stdout and stderr belong to the
// interactive menu and to command output.
func NewLogger(role string, cfg config.Log) *Logger {
	return newLogger(role, cfg.Level, openLogFile(cfg.File))
}

func newLogger(role, level string, w io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func openLogFile(path string) io.Writer {
	if path == "" {
		return io.Discard
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard
	}
	return f
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithSession returns a child logger tagged with a "session" field so the
// lines of one process run can be told apart in a shared log file.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{l.With().Str("session", id).Logger()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}
