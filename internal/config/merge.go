// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"maps"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/state"
)

// MergeGlobal overlays a project config on the global one. Every field the
// project sets wins; semesters are merged key by key.
func MergeGlobal(global, project *Config) *Config {
	result := *global
	if project.OutputFormat != "" {
		result.OutputFormat = project.OutputFormat
	}
	if project.DefaultSite != "" {
		result.DefaultSite = project.DefaultSite
	}
	if len(project.Sites) > 0 {
		result.Sites = project.Sites
	}
	if len(project.Semesters) > 0 {
		result.Semesters = make(map[string]string, len(global.Semesters)+len(project.Semesters))
		maps.Copy(result.Semesters, global.Semesters)
		maps.Copy(result.Semesters, project.Semesters)
	}

	pa, ga := project.Attendance, &result.Attendance
	if pa.Activity != "" {
		ga.Activity = pa.Activity
	}
	if len(pa.Levels) > 0 {
		ga.Levels = pa.Levels
	}
	if pa.SessionLabel != "" {
		ga.SessionLabel = pa.SessionLabel
	}
	if len(pa.StatusAliases) > 0 {
		ga.StatusAliases = pa.StatusAliases
	}
	if len(pa.Attended) > 0 {
		ga.Attended = pa.Attended
	}

	if project.History.Enabled != nil {
		result.History.Enabled = project.History.Enabled
	}
	if project.History.Window > 0 {
		result.History.Window = project.History.Window
	}
	if project.LLM.Model != "" {
		result.LLM.Model = project.LLM.Model
	}
	if project.LLM.Disabled {
		result.LLM.Disabled = true
	}
	if project.Server.Addr != "" {
		result.Server.Addr = project.Server.Addr
	}
	return &result
}

// Merge combines file-based config with CLI-provided options.
// CLI values take precedence; zero-value CLI fields fall through to the
// file config, then to the dashboard defaults.
func Merge(fileCfg *Config, cli dashboard.Options) (dashboard.Options, error) {
	defaults := dashboard.DefaultOptions(cli.DataDir)
	result := cli

	if result.Semester == "" {
		result.Semester = defaults.Semester
	}
	if len(result.Semesters) == 0 {
		result.Semesters = make(map[string]string, len(defaults.Semesters)+len(fileCfg.Semesters))
		maps.Copy(result.Semesters, defaults.Semesters)
		maps.Copy(result.Semesters, fileCfg.Semesters)
	}
	if result.Site == "" {
		result.Site = fileCfg.DefaultSite
	}

	fa := fileCfg.Attendance
	if result.Activity == "" {
		result.Activity = firstNonEmpty(fa.Activity, defaults.Activity)
	}
	if len(result.Levels) == 0 {
		result.Levels = defaults.Levels
		if len(fa.Levels) > 0 {
			result.Levels = make([]dashboard.Level, len(fa.Levels))
			for i, l := range fa.Levels {
				result.Levels[i] = dashboard.Level{Name: l.Name, File: l.File}
			}
		}
	}
	if result.SessionLabel == "" {
		result.SessionLabel = firstNonEmpty(fa.SessionLabel, defaults.SessionLabel)
	}
	if result.Vocabulary == nil {
		v, err := fa.Vocabulary()
		if err != nil {
			return result, err
		}
		result.Vocabulary = v
	}
	if result.TrendWindow == 0 {
		result.TrendWindow = fileCfg.History.Window
	}
	if result.TrendWindow == 0 {
		result.TrendWindow = state.DefaultWindowSize
	}
	return result, nil
}

// Vocabulary builds the status vocabulary of a, extending the default
// spellings with the configured aliases.
func (a AttendanceConfig) Vocabulary() (*attendance.Vocabulary, error) {
	aliases := make(map[attendance.Status][]string, len(a.StatusAliases))
	for name, words := range a.StatusAliases {
		st, err := attendance.ParseStatusName(name)
		if err != nil {
			return nil, err
		}
		aliases[st] = append(aliases[st], words...)
	}
	attended := make([]attendance.Status, 0, len(a.Attended))
	for _, name := range a.Attended {
		st, err := attendance.ParseStatusName(name)
		if err != nil {
			return nil, err
		}
		attended = append(attended, st)
	}
	return attendance.NewVocabulary(aliases, attended...), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
