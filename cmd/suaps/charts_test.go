// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartsCmd(t *testing.T) {
	dir := setupDataDir(t)
	outDir := filepath.Join(t.TempDir(), "charts")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"charts", dir, "--quiet", "-o", outDir, "--chart-format", "svg"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.NotEmpty(t, lines)
	for _, path := range lines {
		assert.True(t, strings.HasSuffix(path, ".svg"), path)
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
	assert.Contains(t, stdout.String(), filepath.Join(outDir, "presence-beginner.svg"))
}

func TestChartsCmd_BadFormat(t *testing.T) {
	dir := setupDataDir(t)
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"charts", dir, "--quiet", "--chart-format", "gif"})
	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "unknown chart format \"gif\"")
}
