// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package logging provides structured logging for memgraph components.
//
// It wraps the standard library's log/slog with a small Level type and a
// Config struct, following the same layered approach as Aleutian's CLI
// logging package: a sensible Default() for simple use, and a Config-driven
// New() for services that want JSON output or a specific minimum level.
package logging

import (
	"log/slog"
	"os"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the human-readable level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures a Logger. The zero value logs Debug+ (LevelDebug is the
// zero Level) to stderr as text.
type Config struct {
	// Level sets the minimum level; messages below it are discarded.
	Level Level

	// Service is attached to every log entry as the "service" attribute.
	Service string

	// JSON enables JSON output instead of human-readable text.
	JSON bool

	// Quiet disables all output. Useful in tests that assert on behavior,
	// not log lines.
	Quiet bool
}

// Logger wraps slog.Logger with the package's Level type.
//
// Thread Safety: safe for concurrent use; it holds no mutable state beyond
// the underlying *slog.Logger, which is itself safe for concurrent use.
type Logger struct {
	slog *slog.Logger
}

// New creates a Logger from config.
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}

	var out *os.File = os.Stderr
	var handler slog.Handler
	if config.Quiet {
		handler = slog.NewTextHandler(discard{}, opts)
	} else if config.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", config.Service)})
	}

	return &Logger{slog: slog.New(handler)}
}

// Default returns a Logger with Info level, text output, service "memgraph".
func Default() *Logger {
	return New(Config{Level: LevelInfo, Service: "memgraph"})
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a child Logger that always includes the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

// Slog exposes the underlying *slog.Logger for callers that need it
// directly (e.g. to pass into a library that accepts one).
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// discard is an io.Writer that drops everything written to it.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
