// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
)

// advancedSection reports levels, time-of-day periods, teachers and the
// weekly schedule heatmap.
type advancedSection struct {
	a enrollment.Advanced
}

func (s *advancedSection) Name() string { return "advanced" }
func (s *advancedSection) Description() string {
	return "Levels, time-of-day periods, teachers and weekly heatmap"
}

func (s *advancedSection) Analyze(d *dashboard.Dashboard) error {
	a := d.Advanced
	if a.Levels == nil && a.Periods == nil && a.TopTeachers == nil && a.Heatmap == nil {
		return fmt.Errorf("advanced: %w", ErrSectionUnavailable)
	}
	s.a = a
	return nil
}

func (s *advancedSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Advanced analysis"))
	if s.a.Levels != nil {
		if err := renderCounts(w, "Registrations by level", s.a.Levels); err != nil {
			return err
		}
	}
	if s.a.Periods != nil {
		if err := renderCounts(w, "Registrations by period", s.a.Periods); err != nil {
			return err
		}
	}
	if s.a.TopTeachers != nil {
		title := fmt.Sprintf("Top %d teachers", enrollment.TopTeachers)
		if err := renderCounts(w, title, s.a.TopTeachers); err != nil {
			return err
		}
	}
	if h := s.a.Heatmap; h != nil && len(h.Days) > 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", colorBold.Sprint("Registrations by day and time slot"))
		cols := []Column{{Header: "Time slot"}}
		for _, d := range h.Days {
			cols = append(cols, Column{Header: d, Align: AlignRight})
		}
		tbl := NewTable(cols...)
		for si, slot := range h.Slots {
			row := []string{slot}
			for di := range h.Days {
				n := h.Cells[di][si]
				cell := "."
				if n > 0 {
					cell = strconv.Itoa(n)
				}
				row = append(row, cell)
			}
			tbl.AddRow(row...)
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w)
	}
	renderMissing(w, s.a.Missing)
	return nil
}
