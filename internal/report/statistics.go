// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
)

// statisticsSection reports the main registration distributions.
type statisticsSection struct {
	s enrollment.Statistics
}

func (s *statisticsSection) Name() string { return "statistics" }
func (s *statisticsSection) Description() string {
	return "Registrations by activity, department, day and site"
}

func (s *statisticsSection) Analyze(d *dashboard.Dashboard) error {
	st := d.Statistics
	if st.TopActivities == nil && st.Departments == nil && st.Days == nil && st.Sites == nil {
		return fmt.Errorf("statistics: %w", ErrSectionUnavailable)
	}
	s.s = st
	return nil
}

func (s *statisticsSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Main statistics"))
	views := []struct {
		title string
		d     *enrollment.Distribution
	}{
		{fmt.Sprintf("Top %d activities", enrollment.TopActivities), s.s.TopActivities},
		{"Registrations by department", descending(s.s.Departments)},
		{"Registrations by day", s.s.Days},
		{"Registrations by site", s.s.Sites},
	}
	for _, v := range views {
		if v.d == nil {
			continue
		}
		if err := renderCounts(w, v.title, v.d); err != nil {
			return err
		}
	}
	renderMissing(w, s.s.Missing)
	return nil
}

// descending undoes the chart-oriented ascending order of departments.
func descending(d *enrollment.Distribution) *enrollment.Distribution {
	if d == nil {
		return nil
	}
	r := d.Ascending()
	return &r
}
