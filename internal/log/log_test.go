// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func restoreDefault(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Level(false, false))
	assert.Equal(t, slog.LevelDebug, Level(true, false))
	assert.Equal(t, slog.LevelWarn, Level(false, true))
	assert.Equal(t, slog.LevelWarn, Level(true, true), "quiet wins")
}

func TestSetup_DefaultLevel(t *testing.T) {
	restoreDefault(t)
	Setup(false, false)

	ctx := context.Background()
	handler := slog.Default().Handler()
	assert.True(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug))
}

func TestSetupWriter_Quiet(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	SetupWriter(&buf, false, true)

	slog.Info("loaded semester export", "rows", 12)
	slog.Warn("columns missing, views skipped", "section", "advanced")

	assert.NotContains(t, buf.String(), "loaded semester export")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "section=advanced")
}

func TestSetupWriter_Verbose(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	logger := SetupWriter(&buf, true, false)

	logger.Debug("chart skipped, no data", "chart", "periods")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "chart=periods")
}
