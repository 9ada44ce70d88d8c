// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/validate"
)

func TestCheckCmd_Valid(t *testing.T) {
	dir := setupDataDir(t)
	cmd, stdout, stderr := newTestCmd()
	cmd.SetArgs([]string{"check", dir, "--quiet"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "valid: 3 exports, 0 warning(s)\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestCheckCmd_Errors(t *testing.T) {
	dir := setupDataDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "presence_basket_debutant.csv")))

	cmd, stdout, stderr := newTestCmd()
	cmd.SetArgs([]string{"check", dir, "--quiet"})
	requireExitCode(t, cmd.Execute(), ExitInvalidArgs)

	assert.Empty(t, stdout.String())
	out := stderr.String()
	assert.Contains(t, out, filepath.Join(dir, "presence_basket_debutant.csv")+": error: file not found")
	assert.Contains(t, out, "  fix: export the sheet")
	assert.Contains(t, out, "1 error(s), 0 warning(s) found in 2 exports")
}

func TestCheckCmd_JSON(t *testing.T) {
	dir := setupDataDir(t)
	writeConfig(t, dir, "attendance:\n  activity: BASKET - LORIEN\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"check", dir, "--quiet", "--json"})
	requireExitCode(t, cmd.Execute(), ExitInvalidArgs)

	var result validate.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, 3, result.Files)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, validate.SeverityError, result.Issues[0].Severity)
	assert.Equal(t, `did you mean "BASKET - LORIENT"?`, result.Issues[0].Suggestion)
}

func TestCheckCmd_UnknownSemester(t *testing.T) {
	dir := setupDataDir(t)
	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"check", dir, "--quiet", "--semester", "winter"})
	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "unknown semester")
}
