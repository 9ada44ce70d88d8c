// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package config handles .suaps.yaml and .suaps.toml configuration files.
package config

// Config represents the contents of a .suaps.yaml file.
type Config struct {
	OutputFormat string            `yaml:"output_format,omitempty" toml:"output_format"`
	DefaultSite  string            `yaml:"default_site,omitempty" toml:"default_site"`
	Sites        []string          `yaml:"sites,omitempty" toml:"sites"`
	Semesters    map[string]string `yaml:"semesters,omitempty" toml:"semesters"`
	Attendance   AttendanceConfig  `yaml:"attendance,omitempty" toml:"attendance"`
	History      HistoryConfig     `yaml:"history,omitempty" toml:"history"`
	LLM          LLMConfig         `yaml:"llm,omitempty" toml:"llm"`
	Server       ServerConfig      `yaml:"server,omitempty" toml:"server"`
}

// AttendanceConfig selects the tracked activity and its presence exports.
type AttendanceConfig struct {
	Activity     string        `yaml:"activity,omitempty" toml:"activity"`
	Levels       []LevelConfig `yaml:"levels,omitempty" toml:"levels"`
	SessionLabel string        `yaml:"session_label,omitempty" toml:"session_label"`

	// StatusAliases adds spellings per status name ("present", "late").
	StatusAliases map[string][]string `yaml:"status_aliases,omitempty" toml:"status_aliases"`
	// Attended lists the status names counted as attended.
	Attended []string `yaml:"attended,omitempty" toml:"attended"`
}

// LevelConfig names a presence export.
type LevelConfig struct {
	Name string `yaml:"name" toml:"name"`
	File string `yaml:"file" toml:"file"`
}

// HistoryConfig controls the attendance history.
type HistoryConfig struct {
	Enabled *bool `yaml:"enabled,omitempty" toml:"enabled"`
	Window  int   `yaml:"window,omitempty" toml:"window"`
}

// LLMConfig controls the insights command.
type LLMConfig struct {
	Model    string `yaml:"model,omitempty" toml:"model"`
	Disabled bool   `yaml:"disabled,omitempty" toml:"disabled"`
}

// ServerConfig controls the HTTP dashboard.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty" toml:"addr"`
}

// HistoryEnabled reports whether report runs are recorded. Unset means yes.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// Config file names in a data directory. FileName wins when both exist.
const (
	FileName     = ".suaps.yaml"
	TOMLFileName = ".suaps.toml"
)
