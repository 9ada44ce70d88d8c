// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/state"
)

// trendsSection reports average attendance trends over recent reports.
type trendsSection struct {
	trends *state.TrendResult
}

func (s *trendsSection) Name() string        { return "trends" }
func (s *trendsSection) Description() string { return "Average attendance trends over recent reports" }

func (s *trendsSection) Analyze(d *dashboard.Dashboard) error {
	if d.Trends == nil || len(d.Trends.Lines) == 0 {
		return fmt.Errorf("trends: insufficient data (need >= 2 reports): %w", ErrSectionUnavailable)
	}
	s.trends = d.Trends
	return nil
}

func (s *trendsSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Attendance trends"))
	_, _ = fmt.Fprintf(w, "  Window: last %d reports\n\n", s.trends.WindowSize)

	tbl := NewTable(
		Column{Header: "Level"},
		Column{Header: "Current", Align: AlignRight},
		Column{Header: "Previous", Align: AlignRight},
		Column{Header: "Delta", Align: AlignRight},
		Column{Header: "Reports", Align: AlignRight},
		Column{Header: "Direction", Color: ColorDirection},
	)
	for _, l := range s.trends.Lines {
		tbl.AddRow(l.Level, l.Current.String(), l.Previous.String(), formatDelta(l.Delta),
			strconv.Itoa(l.DataPoints), string(l.Direction))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

// formatDelta formats a delta in points with a +/- prefix.
func formatDelta(d float64) string {
	if d > 0 {
		return fmt.Sprintf("+%.2f", d)
	}
	return fmt.Sprintf("%.2f", d)
}
