// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for suaps using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level returns the minimum level for the verbosity flags. Quiet wins over
// verbose.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs a slog.TextHandler on stderr as the default logger.
func Setup(verbose, quiet bool) {
	SetupWriter(os.Stderr, verbose, quiet)
}

// SetupWriter installs a slog.TextHandler writing to w as the default
// logger and returns it.
func SetupWriter(w io.Writer, verbose, quiet bool) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	}))
	slog.SetDefault(logger)
	return logger
}
