// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// attendanceSection reports per-session presence of the tracked activity.
type attendanceSection struct {
	opts     Options
	activity string
	levels   []*dashboard.LevelAttendance
}

func (s *attendanceSection) Name() string { return "attendance" }
func (s *attendanceSection) Description() string {
	return "Per-session attendance and participation rate of the tracked activity"
}

func (s *attendanceSection) Configure(opts Options) { s.opts = opts }

func (s *attendanceSection) Analyze(d *dashboard.Dashboard) error {
	s.activity = d.Activity
	s.levels = nil
	for _, la := range d.Attendance {
		if s.opts.Level != "" && dataset.Fold(la.Level) != dataset.Fold(s.opts.Level) {
			continue
		}
		if la.Available {
			s.levels = append(s.levels, la)
		}
	}
	if len(s.levels) == 0 {
		return fmt.Errorf("attendance: no presence export loaded: %w", ErrSectionUnavailable)
	}
	return nil
}

func (s *attendanceSection) Render(w io.Writer) error {
	for _, la := range s.levels {
		if err := RenderLevel(w, s.activity, la); err != nil {
			return err
		}
		if s.opts.Session == "" {
			continue
		}
		list, ok := la.Session(s.opts.Session)
		if !ok {
			_, _ = fmt.Fprintf(w, "  No participants: session %q not found for level %s.\n\n", s.opts.Session, la.Level)
			continue
		}
		if err := RenderParticipants(w, list); err != nil {
			return err
		}
	}
	return nil
}

// RenderLevel writes the session table, average rate and gender breakdown
// of one level.
func RenderLevel(w io.Writer, activity string, la *dashboard.LevelAttendance) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(fmt.Sprintf("Attendance: %s (%s)", activity, la.Level)))
	if len(la.Summaries) == 0 {
		_, _ = fmt.Fprintf(w, "  No course session columns found.\n\n")
	} else {
		tbl := NewTable(
			Column{Header: "Session"},
			Column{Header: "Attended", Align: AlignRight},
			Column{Header: "Students", Align: AlignRight},
			Column{Header: "Rate", Align: AlignRight, Color: ColorRate},
			Column{Header: "", Color: ColorBar},
		)
		for _, sum := range la.Summaries {
			tbl.AddRow(sum.Session, strconv.Itoa(sum.Attended), strconv.Itoa(sum.Total), sum.Rate.String(), rateBar(sum.Rate))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "\n  Average participation: %s\n", ColorRate(la.Average.String()))
	}

	if len(la.Gender) > 0 {
		_, _ = fmt.Fprintf(w, "  Students by gender:    %s\n", joinCounts(la.Gender))
	}
	for _, r := range la.Rejected {
		_, _ = fmt.Fprintf(w, "  (ignored column %q: %s)\n", r.Column, r.Reason)
	}
	if len(la.Missing) > 0 {
		_, _ = fmt.Fprintf(w, "  (missing fields: %s)\n", strings.Join(la.Missing, ", "))
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

// RenderParticipants writes the attendees of one session.
func RenderParticipants(w io.Writer, list attendance.ParticipantList) error {
	_, _ = fmt.Fprintf(w, "  %s\n", colorBold.Sprintf("Participants of %s (%d)", list.Session, len(list.Participants)))
	if len(list.Participants) == 0 {
		_, _ = fmt.Fprintf(w, "  No participants.\n\n")
		return nil
	}
	if len(list.Gender) > 0 {
		_, _ = fmt.Fprintf(w, "  Participants by gender: %s\n\n", joinCounts(list.Gender))
	}
	tbl := NewTable(
		Column{Header: "First name"},
		Column{Header: "Last name"},
		Column{Header: "Email"},
		Column{Header: "Sex"},
		Column{Header: "Status"},
	)
	for _, p := range list.Participants {
		tbl.AddRow(p.FirstName, p.LastName, p.Email, p.Sex, p.Status)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

func rateBar(r attendance.Rate) string {
	if !r.Defined {
		return ""
	}
	return Bar(int(r.Value+0.5), 100, 20)
}

// joinCounts formats counts as "Male 2, Female 1".
func joinCounts(counts []attendance.Count) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s %d", c.Label, c.Count)
	}
	return strings.Join(parts, ", ")
}
