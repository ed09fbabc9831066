// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple level-gated layer on top of the
// standard [log/slog] logging system. The [UserLevel] controls how
// verbose user-facing tools are, independent of the slog handler's
// own level, and can be set at build time via the debug and release
// build tags.
package logx

import (
	"context"
	"log/slog"
)

// UserLevel is the verbosity level that the user has selected for
// user-facing log messages. It defaults based on build tags:
// info normally, debug with the debug tag, and warn with the
// release tag.
var UserLevel = defaultUserLevel

// Print logs the given message at the given level
// if [UserLevel] permits it.
func Print(level slog.Level, msg string, args ...any) {
	if UserLevel > level {
		return
	}
	slog.Log(context.Background(), level, msg, args...)
}

// Debug logs the given message at [slog.LevelDebug] if [UserLevel] permits it.
func Debug(msg string, args ...any) {
	Print(slog.LevelDebug, msg, args...)
}

// Info logs the given message at [slog.LevelInfo] if [UserLevel] permits it.
func Info(msg string, args ...any) {
	Print(slog.LevelInfo, msg, args...)
}

// Warn logs the given message at [slog.LevelWarn] if [UserLevel] permits it.
func Warn(msg string, args ...any) {
	Print(slog.LevelWarn, msg, args...)
}

// Error logs the given message at [slog.LevelError] if [UserLevel] permits it.
func Error(msg string, args ...any) {
	Print(slog.LevelError, msg, args...)
}
