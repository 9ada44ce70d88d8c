// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
	"github.com/atk0906/Projet-SUAPS/internal/state"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the dashboard views with metadata for the JSON output format.
type JSONEnvelope struct {
	Metadata   JSONMetadata                 `json:"metadata"`
	Overview   *enrollment.Overview         `json:"overview,omitempty"`
	Statistics *enrollment.Statistics       `json:"statistics,omitempty"`
	Advanced   *enrollment.Advanced         `json:"advanced,omitempty"`
	Students   *enrollment.Students         `json:"students,omitempty"`
	Attendance []*dashboard.LevelAttendance `json:"attendance,omitempty"`
	Session    *attendance.ParticipantList  `json:"session,omitempty"`
	Trends     *state.TrendResult           `json:"trends,omitempty"`
}

// JSONMetadata describes the build that produced the dashboard.
type JSONMetadata struct {
	RunID       string   `json:"run_id"`
	GeneratedAt string   `json:"generated_at"`
	Duration    string   `json:"duration"`
	Semester    string   `json:"semester"`
	Site        string   `json:"site,omitempty"`
	Source      string   `json:"source"`
	Activity    string   `json:"activity"`
	Warnings    []string `json:"warnings,omitempty"`
}

// JSONFormatter writes the dashboard as a JSON document.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented for terminals and compact for pipes.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// BuildEnvelope selects the views of d that opts asks for.
func BuildEnvelope(d *dashboard.Dashboard, opts Options) JSONEnvelope {
	env := JSONEnvelope{
		Metadata: JSONMetadata{
			RunID:       d.RunID,
			GeneratedAt: d.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Duration:    d.Duration.Round(time.Millisecond).String(),
			Semester:    d.Semester,
			Site:        d.Site,
			Source:      d.Source,
			Activity:    d.Activity,
			Warnings:    d.Warnings,
		},
	}
	if opts.Includes("overview") {
		env.Overview = &d.Overview
	}
	if opts.Includes("statistics") {
		env.Statistics = &d.Statistics
	}
	if opts.Includes("advanced") {
		env.Advanced = &d.Advanced
	}
	if opts.Includes("students") {
		env.Students = &d.Students
	}
	if opts.Includes("attendance") {
		env.Attendance = selectedLevels(d, opts)
		if opts.Report.Session != "" {
			for _, la := range env.Attendance {
				if list, ok := la.Session(opts.Report.Session); ok {
					env.Session = &list
					break
				}
			}
		}
	}
	if opts.Includes("trends") {
		env.Trends = d.Trends
	}
	return env
}

// Format writes the selected views of d as JSON to w.
func (f *JSONFormatter) Format(d *dashboard.Dashboard, opts Options, w io.Writer) error {
	envelope := BuildEnvelope(d, opts)

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// For non-file writers (e.g., bytes.Buffer in tests), default to pretty.
	return false
}
