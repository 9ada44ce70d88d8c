// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/output"
)

// maxHistoryWindow is the history cap; a wider window compares nothing more.
const maxHistoryWindow = 100

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.DefaultSite != "" && len(cfg.Sites) > 0 && !containsFold(cfg.Sites, cfg.DefaultSite) {
		errs = append(errs, fmt.Sprintf("default_site: %q is not one of sites (%s)", cfg.DefaultSite, strings.Join(cfg.Sites, ", ")))
	}

	for name, file := range cfg.Semesters {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "semesters: empty semester name")
		}
		if strings.TrimSpace(file) == "" {
			errs = append(errs, fmt.Sprintf("semesters.%s: file must not be empty", name))
		}
	}

	seen := make(map[string]bool)
	for i, l := range cfg.Attendance.Levels {
		if strings.TrimSpace(l.Name) == "" {
			errs = append(errs, fmt.Sprintf("attendance.levels[%d].name: must not be empty", i))
		} else if seen[strings.ToLower(l.Name)] {
			errs = append(errs, fmt.Sprintf("attendance.levels[%d].name: duplicate level %q", i, l.Name))
		}
		seen[strings.ToLower(l.Name)] = true
		if strings.TrimSpace(l.File) == "" {
			errs = append(errs, fmt.Sprintf("attendance.levels[%d].file: must not be empty", i))
		}
	}
	for name := range cfg.Attendance.StatusAliases {
		if st, err := attendance.ParseStatusName(name); err != nil || st == attendance.Other {
			errs = append(errs, fmt.Sprintf("attendance.status_aliases.%s: invalid status (must be present or late)", name))
		}
	}
	for _, name := range cfg.Attendance.Attended {
		if st, err := attendance.ParseStatusName(name); err != nil || st == attendance.Other {
			errs = append(errs, fmt.Sprintf("attendance.attended: invalid status %q (must be present or late)", name))
		}
	}

	if cfg.History.Window < 0 || cfg.History.Window > maxHistoryWindow {
		errs = append(errs, fmt.Sprintf("history.window: must be between 0 and %d, got %d", maxHistoryWindow, cfg.History.Window))
	}

	if cfg.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Server.Addr); err != nil {
			errs = append(errs, fmt.Sprintf("server.addr: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
