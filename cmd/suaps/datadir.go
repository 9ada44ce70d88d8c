// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atk0906/Projet-SUAPS/internal/config"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
)

// resolveDataDir resolves the optional [data-dir] argument to an absolute,
// symlink-free directory.
func resolveDataDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	absPath, err := cmdFS.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q (%v)", dir, err)
	}
	absPath, err = cmdFS.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q (%v)", dir, err)
	}
	info, err := cmdFS.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}
	return absPath, nil
}

// loadConfig reads the .env files and the global and project configs of
// dataDir, and validates the result.
func loadConfig(dataDir string) (*config.Config, error) {
	if err := config.LoadEnv(dataDir, "."); err != nil {
		return nil, err
	}
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s (%v)", config.GlobalConfigPath(), err)
	}
	project, err := config.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s (%v)", config.FileName, err)
	}
	cfg := config.MergeGlobal(global, project)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// dashboardFlags are the flags shared by every command that builds a
// dashboard.
type dashboardFlags struct {
	semester string
	site     string
}

func (f *dashboardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.semester, "semester", "", "semester export to read: semester1, semester2 or events (default semester1)")
	cmd.Flags().StringVar(&f.site, "site", "", "only count enrollments at this site (all or tous keep every site)")
}

func (f *dashboardFlags) reset() {
	f.semester = ""
	f.site = ""
}

// setup resolves the data directory, loads its config and merges the
// flags into dashboard options. Every failure maps to ExitInvalidArgs.
func (f *dashboardFlags) setup(args []string, record bool) (*config.Config, dashboard.Options, error) {
	dataDir, err := resolveDataDir(args)
	if err != nil {
		return nil, dashboard.Options{}, exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return nil, dashboard.Options{}, exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	opts, err := config.Merge(cfg, dashboard.Options{
		DataDir:  dataDir,
		Semester: f.semester,
		Site:     f.site,
		Record:   record && cfg.HistoryEnabled(),
	})
	if err != nil {
		return nil, opts, exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	if _, err := opts.SemesterFile(); err != nil {
		return nil, opts, exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	return cfg, opts, nil
}

// build runs a dashboard build; a failure means nothing can be written.
func build(cmd *cobra.Command, opts dashboard.Options) (*dashboard.Dashboard, error) {
	d, err := dashboard.Build(cmd.Context(), opts)
	if err != nil {
		return nil, exitError(ExitTotalFailure, "suaps: %v", err)
	}
	return d, nil
}

// openOutput returns the writer for -o, or stdout when path is empty. The
// returned close function is always non-nil.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := cmdFS.Create(path)
	if err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "suaps: cannot create output file %q (%v)", path, err)
	}
	return f, f.Close, nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
