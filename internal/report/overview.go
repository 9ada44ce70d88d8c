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

// overviewSection reports headline counts and registration shares.
type overviewSection struct {
	o enrollment.Overview
}

func (s *overviewSection) Name() string { return "overview" }

func (s *overviewSection) Description() string {
	return "Students, activities, teachers and registration shares"
}

func (s *overviewSection) Analyze(d *dashboard.Dashboard) error {
	if d.Overview.Registrations == 0 {
		return fmt.Errorf("overview: no registrations: %w", ErrSectionUnavailable)
	}
	s.o = d.Overview
	return nil
}

func (s *overviewSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Overview"))
	_, _ = fmt.Fprintf(w, "  Registrations: %d\n", s.o.Registrations)
	_, _ = fmt.Fprintf(w, "  Students:      %d\n", s.o.Students)
	_, _ = fmt.Fprintf(w, "  Activities:    %d\n", s.o.Activities)
	_, _ = fmt.Fprintf(w, "  Teachers:      %d\n\n", s.o.Teachers)

	for _, d := range []*enrollment.Distribution{s.o.Groups, s.o.Registration, s.o.Types} {
		if d == nil {
			continue
		}
		if err := renderShares(w, d); err != nil {
			return err
		}
	}
	renderMissing(w, s.o.Missing)
	return nil
}

// renderShares prints a distribution with each label's share of the total.
func renderShares(w io.Writer, d *enrollment.Distribution) error {
	_, _ = fmt.Fprintf(w, "  %s\n", colorBold.Sprint(d.Column))
	tbl := NewTable(
		Column{Header: "Value"},
		Column{Header: "Count", Align: AlignRight},
		Column{Header: "Share", Align: AlignRight},
	)
	for _, c := range d.Counts {
		tbl.AddRow(c.Label, strconv.Itoa(c.Count), fmt.Sprintf("%.1f%%", d.Share(c)))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

// renderCounts prints a distribution with a proportional bar per label.
func renderCounts(w io.Writer, title string, d *enrollment.Distribution) error {
	_, _ = fmt.Fprintf(w, "  %s\n", colorBold.Sprint(title))
	if len(d.Counts) == 0 {
		_, _ = fmt.Fprintf(w, "  No data.\n\n")
		return nil
	}
	tbl := NewTable(
		Column{Header: d.Column},
		Column{Header: "Count", Align: AlignRight},
		Column{Header: "", Color: ColorBar},
	)
	maxCount := d.Max()
	for _, c := range d.Counts {
		tbl.AddRow(c.Label, strconv.Itoa(c.Count), Bar(c.Count, maxCount, 30))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

func renderMissing(w io.Writer, missing []string) {
	for _, col := range missing {
		_, _ = fmt.Fprintf(w, "  (column %q not found)\n", col)
	}
	if len(missing) > 0 {
		_, _ = fmt.Fprintln(w)
	}
}
