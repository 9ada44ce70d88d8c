// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package charts

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
	"github.com/atk0906/Projet-SUAPS/internal/testable"
)

// FS is the file system used by WriteAll. Tests may replace it.
var FS testable.FileSystem = testable.DefaultFS

type renderFunc func(w io.Writer, title string, d *enrollment.Distribution, f Format) error

type distChart struct {
	name   string
	title  string
	dist   *enrollment.Distribution
	render renderFunc
}

func distCharts(d *dashboard.Dashboard) []distChart {
	return []distChart{
		{"groups", "Registrations by activity group", d.Overview.Groups, Donut},
		{"registration-types", "Registration types", d.Overview.Registration, Donut},
		{"student-types", "Student types", d.Overview.Types, Donut},
		{"top-activities", "Top activities", d.Statistics.TopActivities, Bar},
		{"departments", "Registrations by department", d.Statistics.Departments, Bar},
		{"days", "Registrations by day", d.Statistics.Days, Bar},
		{"sites", "Registrations by site", d.Statistics.Sites, Bar},
		{"levels", "Registrations by level", d.Advanced.Levels, Bar},
		{"periods", "Registrations by period", d.Advanced.Periods, Donut},
		{"top-teachers", "Top teachers", d.Advanced.TopTeachers, Bar},
		{"top-departments", "Top departments", d.Students.TopDepartments, Bar},
	}
}

// WriteAll renders every chart of d into dir and returns the written paths.
// Views without data are skipped.
func WriteAll(d *dashboard.Dashboard, dir string, f Format) ([]string, error) {
	if err := FS.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create chart directory: %w", err)
	}

	var written []string
	write := func(name string, render func(io.Writer) error) error {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			if errors.Is(err, ErrNoData) {
				slog.Debug("chart skipped, no data", "chart", name)
				return nil
			}
			return fmt.Errorf("chart %s: %w", name, err)
		}
		path := filepath.Join(dir, name+f.Ext())
		if err := FS.WriteFile(path, buf.Bytes(), 0o600); err != nil {
			return fmt.Errorf("write chart %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	for _, c := range distCharts(d) {
		err := write(c.name, func(w io.Writer) error { return c.render(w, c.title, c.dist, f) })
		if err != nil {
			return written, err
		}
	}
	for _, la := range d.Attendance {
		if !la.Available {
			continue
		}
		title := fmt.Sprintf("%s (%s): presence", d.Activity, la.Level)
		err := write("presence-"+la.Level, func(w io.Writer) error { return Presence(w, title, la.Summaries, f) })
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
