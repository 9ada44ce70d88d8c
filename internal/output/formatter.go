// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package output defines the Formatter interface for writing a built
// dashboard in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/report"
)

// Options select what a formatter writes.
type Options struct {
	// Sections limits output to the named report sections; empty means all.
	Sections []string
	// Report narrows the attendance views to one level or session.
	Report report.Options
}

// Includes reports whether section is selected.
func (o Options) Includes(section string) bool {
	if len(o.Sections) == 0 {
		return true
	}
	for _, s := range o.Sections {
		if s == section {
			return true
		}
	}
	return false
}

// Formatter writes a dashboard to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "json", "html").
	Name() string

	// Format writes the dashboard to w.
	Format(d *dashboard.Dashboard, opts Options, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, strings.Join(names(), ", "))
	}
	return f, nil
}

// Names returns the sorted names of the registered formats.
func Names() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

// selectedLevels returns the attendance levels opts keeps, in order.
func selectedLevels(d *dashboard.Dashboard, opts Options) []*dashboard.LevelAttendance {
	if opts.Report.Level == "" {
		return d.Attendance
	}
	if la, ok := d.Level(opts.Report.Level); ok {
		return []*dashboard.LevelAttendance{la}
	}
	return nil
}
