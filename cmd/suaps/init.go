// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"maps"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/config"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/llm"
	"github.com/atk0906/Projet-SUAPS/internal/server"
	"github.com/atk0906/Projet-SUAPS/internal/state"
)

// Init flag values.
var initForce bool

// initCmd writes a starter config into a data directory.
var initCmd = &cobra.Command{
	Use:   "init [data-dir]",
	Short: "Write a default .suaps.yaml",
	Long: `Write a .suaps.yaml holding the default semesters, the tracked activity
and its presence exports, history and server settings. Edit it to match the
file names of your exports.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config")
}

func runInit(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir(args)
	if err != nil {
		return exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	path := filepath.Join(dataDir, config.FileName)
	if _, err := cmdFS.Stat(path); err == nil && !initForce {
		return exitError(ExitInvalidArgs, "suaps: %s already exists (use --force to overwrite)", path)
	}

	var buf bytes.Buffer
	buf.WriteString("# suaps configuration. File names resolve against this directory.\n")
	if err := config.Write(&buf, defaultConfig()); err != nil {
		return exitError(ExitTotalFailure, "suaps: %v", err)
	}
	if err := cmdFS.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return exitError(ExitTotalFailure, "suaps: cannot write %s (%v)", path, err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// defaultConfig spells out every default so the file documents them.
func defaultConfig() *config.Config {
	enabled := true
	cfg := &config.Config{
		OutputFormat: "text",
		Semesters:    maps.Clone(dashboard.DefaultSemesters),
		Attendance: config.AttendanceConfig{
			Activity:     dashboard.DefaultActivity,
			SessionLabel: attendance.DefaultSessionLabel,
			Attended:     []string{attendance.Present.String(), attendance.Late.String()},
		},
		History: config.HistoryConfig{Enabled: &enabled, Window: state.DefaultWindowSize},
		LLM:     config.LLMConfig{Model: llm.DefaultModel},
		Server:  config.ServerConfig{Addr: server.DefaultAddr},
	}
	for _, l := range dashboard.DefaultLevels {
		cfg.Attendance.Levels = append(cfg.Attendance.Levels, config.LevelConfig{Name: l.Name, File: l.File})
	}
	return cfg
}
