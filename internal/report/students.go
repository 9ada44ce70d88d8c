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

// studentsSection reports the department × activity breakdown.
type studentsSection struct {
	s enrollment.Students
}

func (s *studentsSection) Name() string        { return "students" }
func (s *studentsSection) Description() string { return "Students by department and activity" }

func (s *studentsSection) Analyze(d *dashboard.Dashboard) error {
	if d.Students.TopDepartments == nil {
		return fmt.Errorf("students: %w", ErrSectionUnavailable)
	}
	s.s = d.Students
	return nil
}

func (s *studentsSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Students"))
	title := fmt.Sprintf("Top %d departments", enrollment.TopDepartments)
	if err := renderCounts(w, title, s.s.TopDepartments); err != nil {
		return err
	}

	if len(s.s.Treemap) > 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", colorBold.Sprint("Main activities per department"))
		tbl := NewTable(
			Column{Header: "Department"},
			Column{Header: "Activity"},
			Column{Header: "Registrations", Align: AlignRight},
		)
		for _, dept := range s.s.Treemap {
			tbl.AddRow(dept.Label, "(all)", strconv.Itoa(dept.Value))
			for _, act := range dept.Children {
				tbl.AddRow("", act.Label, strconv.Itoa(act.Value))
			}
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w)
	}
	renderMissing(w, s.s.Missing)
	return nil
}
