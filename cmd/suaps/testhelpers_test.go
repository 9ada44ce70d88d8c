// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// newTestCmd redirects the output of the shared root command.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores every package-level flag to its default.
func resetFlags() {
	for _, d := range []*dashboardFlags{&reportDash, &attDash, &chartsDash, &serveDash, &insightsDash, &checkDash} {
		d.reset()
	}
	reportFormat, reportSections, reportLevel, reportSession, reportOutput = "", "", "", "", ""
	reportAnonymize, reportNoHistory = false, false
	attLevel, attSession, attJSON, attAnonymize = "", "", false, false
	chartsOutput, chartsFormat = "charts", "png"
	serveAddr = ""
	insightsModel, insightsLanguage, insightsMaxTokens = "", "", 0
	initForce = false
	checkJSON = false
	resetConfigFlags()

	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range []*cobra.Command{reportCmd, attendanceCmd, chartsCmd, serveCmd, insightsCmd, initCmd, checkCmd} {
		c.Flags().VisitAll(reset)
	}
}

// setupDataDir writes the fixture exports into a temp dir and isolates the
// global config and the API key from the developer's environment.
func setupDataDir(t *testing.T) string {
	t.Helper()
	resetFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("SUAPS_ADDR", "")
	dir, err := filepath.EvalSymlinks(dashboardtest.WriteDataDir(t))
	require.NoError(t, err)
	return dir
}

// requireExitCode asserts err is an exitCodeError with the given code.
func requireExitCode(t *testing.T, err error, code int) *exitCodeError {
	t.Helper()
	require.Error(t, err)
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exitCodeError, got %T: %v", err, err)
	assert.Equal(t, code, ece.ExitCode())
	return ece
}
