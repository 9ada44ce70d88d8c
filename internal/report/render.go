// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
)

// SectionResult is the outcome of one section.
type SectionResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"` // "ok", "skipped"
	Reason      string `json:"reason,omitempty"`
	Content     string `json:"content,omitempty"`
}

// Run analyzes and renders the selected sections. Sections whose data is
// unavailable are reported as skipped rather than failing the run.
func Run(d *dashboard.Dashboard, filter []string, opts Options) ([]SectionResult, error) {
	var out []SectionResult
	for _, name := range ResolveSections(filter) {
		sec := Get(name)
		if sec == nil {
			continue
		}
		if c, ok := sec.(Configurable); ok {
			c.Configure(opts)
		}

		res := SectionResult{Name: sec.Name(), Description: sec.Description()}
		if err := sec.Analyze(d); err != nil {
			if errors.Is(err, ErrSectionUnavailable) {
				res.Status = "skipped"
				res.Reason = err.Error()
				out = append(out, res)
				continue
			}
			return nil, fmt.Errorf("section %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			return nil, fmt.Errorf("section %s render: %w", name, err)
		}
		res.Status = "ok"
		res.Content = buf.String()
		out = append(out, res)
	}
	return out, nil
}

// RenderText writes the report header and every selected section to w.
func RenderText(d *dashboard.Dashboard, filter []string, opts Options, w io.Writer) error {
	results, err := Run(d, filter, opts)
	if err != nil {
		return err
	}

	site := d.Site
	if site == "" {
		site = "all sites"
	}
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("SUAPS dashboard"))
	_, _ = fmt.Fprintf(w, "  Semester: %s (%s)\n", d.Semester, site)
	_, _ = fmt.Fprintf(w, "  Source:   %s\n", d.Source)
	_, _ = fmt.Fprintf(w, "  Run:      %s, %s in %s\n\n",
		d.RunID, d.GeneratedAt.Format(time.RFC3339), d.Duration.Round(time.Millisecond))

	var skipped []string
	for _, r := range results {
		if r.Status != "ok" {
			skipped = append(skipped, r.Name)
			continue
		}
		if _, err := io.WriteString(w, r.Content); err != nil {
			return err
		}
	}
	if len(skipped) > 0 {
		_, _ = fmt.Fprintf(w, "  Skipped sections: %s\n", strings.Join(skipped, ", "))
	}
	for _, warn := range d.Warnings {
		_, _ = fmt.Fprintf(w, "  %s %s\n", colorYellow.Sprint("warning:"), warn)
	}
	return nil
}

// ResolveSections determines which sections to run. If filter is empty,
// all registered sections are used; unknown names are dropped.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		return List()
	}

	available := make(map[string]bool)
	for _, name := range List() {
		available[name] = true
	}

	var names []string
	for _, name := range filter {
		if available[name] {
			names = append(names, name)
		}
	}
	return names
}

// UnknownSections returns the names in filter that are not registered.
func UnknownSections(filter []string) []string {
	var out []string
	for _, name := range filter {
		if Get(name) == nil {
			out = append(out, name)
		}
	}
	return out
}
