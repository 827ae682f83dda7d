// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_toSlogLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{Level(-1), slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.toSlogLevel(); got != tt.want {
			t.Errorf("Level(%d).toSlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestDefault_DoesNotPanic(t *testing.T) {
	logger := Default()
	logger.Info("hello", "k", "v")
	logger.Debug("debug message")
	logger.Warn("warn message")
	logger.Error("error message")
}

func TestNew_Quiet(t *testing.T) {
	logger := New(Config{Level: LevelDebug, Quiet: true})
	logger.Info("should not print")
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{slog: slog.New(slog.NewTextHandler(&buf, nil))}
	child := logger.With("request_id", "abc123")
	if child == logger {
		t.Error("With() should return a new Logger, not the same instance")
	}
	child.Info("child log")
	if !strings.Contains(buf.String(), "request_id=abc123") {
		t.Errorf("child log output %q does not contain request_id=abc123", buf.String())
	}
}
