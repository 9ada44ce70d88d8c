// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the dashboard as a Markdown document.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// mdWriter accumulates the first write error so sections can be written
// without checking every call.
type mdWriter struct {
	w   io.Writer
	err error
}

func (m *mdWriter) printf(format string, args ...any) {
	if m.err != nil {
		return
	}
	_, m.err = fmt.Fprintf(m.w, format, args...)
}

// Format writes the selected views of d to w.
func (m *MarkdownFormatter) Format(d *dashboard.Dashboard, opts Options, w io.Writer) error {
	md := &mdWriter{w: w}

	site := d.Site
	if site == "" {
		site = "all sites"
	}
	md.printf("# SUAPS dashboard\n\n")
	md.printf("**Semester:** %s | **Site:** %s | **Generated:** %s\n\n",
		d.Semester, site, d.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))

	if opts.Includes("overview") {
		o := d.Overview
		md.printf("## Overview\n\n")
		md.printf("| Registrations | Students | Activities | Teachers |\n|---:|---:|---:|---:|\n")
		md.printf("| %d | %d | %d | %d |\n\n", o.Registrations, o.Students, o.Activities, o.Teachers)
		for _, dist := range []*enrollment.Distribution{o.Groups, o.Registration, o.Types} {
			if dist != nil {
				md.distribution(dist.Column, dist, true)
			}
		}
	}
	if opts.Includes("statistics") {
		s := d.Statistics
		md.printf("## Main statistics\n\n")
		md.distribution("Top activities", s.TopActivities, false)
		md.distribution("Registrations by department", s.Departments, false)
		md.distribution("Registrations by day", s.Days, false)
		md.distribution("Registrations by site", s.Sites, false)
	}
	if opts.Includes("advanced") {
		a := d.Advanced
		md.printf("## Advanced analysis\n\n")
		md.distribution("Registrations by level", a.Levels, false)
		md.distribution("Registrations by period", a.Periods, false)
		md.distribution("Top teachers", a.TopTeachers, false)
		md.heatmap(a.Heatmap)
	}
	if opts.Includes("attendance") {
		for _, la := range selectedLevels(d, opts) {
			md.level(d.Activity, la, opts.Report.Session)
		}
	}
	if opts.Includes("students") && d.Students.TopDepartments != nil {
		md.printf("## Students\n\n")
		md.distribution("Top departments", d.Students.TopDepartments, false)
		if len(d.Students.Treemap) > 0 {
			md.printf("### Main activities per department\n\n| Department | Activity | Registrations |\n|---|---|---:|\n")
			for _, dept := range d.Students.Treemap {
				for _, act := range dept.Children {
					md.printf("| %s | %s | %d |\n", cell(dept.Label), cell(act.Label), act.Value)
				}
			}
			md.printf("\n")
		}
	}
	if opts.Includes("trends") && d.Trends != nil {
		md.printf("## Attendance trends\n\n| Level | Current | Previous | Delta | Direction |\n|---|---:|---:|---:|---|\n")
		for _, l := range d.Trends.Lines {
			md.printf("| %s | %s | %s | %+.2f | %s |\n", l.Level, l.Current, l.Previous, l.Delta, l.Direction)
		}
		md.printf("\n")
	}
	if len(d.Warnings) > 0 {
		md.printf("## Warnings\n\n")
		for _, warn := range d.Warnings {
			md.printf("- %s\n", warn)
		}
		md.printf("\n")
	}
	return md.err
}

func (m *mdWriter) distribution(title string, d *enrollment.Distribution, shares bool) {
	if d == nil {
		return
	}
	m.printf("### %s\n\n", title)
	if shares {
		m.printf("| %s | Count | Share |\n|---|---:|---:|\n", cell(d.Column))
	} else {
		m.printf("| %s | Count |\n|---|---:|\n", cell(d.Column))
	}
	for _, c := range d.Counts {
		if shares {
			m.printf("| %s | %d | %.1f%% |\n", cell(c.Label), c.Count, d.Share(c))
		} else {
			m.printf("| %s | %d |\n", cell(c.Label), c.Count)
		}
	}
	m.printf("\n")
}

func (m *mdWriter) heatmap(h *enrollment.Heatmap) {
	if h == nil || len(h.Days) == 0 {
		return
	}
	m.printf("### Registrations by day and time slot\n\n| Time slot | %s |\n|---|%s\n",
		strings.Join(h.Days, " | "), strings.Repeat("---:|", len(h.Days)))
	for si, slot := range h.Slots {
		row := make([]string, len(h.Days))
		for di := range h.Days {
			row[di] = fmt.Sprint(h.Cells[di][si])
		}
		m.printf("| %s | %s |\n", cell(slot), strings.Join(row, " | "))
	}
	m.printf("\n")
}

func (m *mdWriter) level(activity string, la *dashboard.LevelAttendance, session string) {
	m.printf("## Attendance: %s (%s)\n\n", activity, la.Level)
	if !la.Available {
		m.printf("_Presence export unavailable: %s_\n\n", la.Error)
		return
	}
	if len(la.Summaries) == 0 {
		m.printf("_No course session columns found._\n\n")
	} else {
		m.printf("| Session | Attended | Students | Rate |\n|---|---:|---:|---:|\n")
		for _, s := range la.Summaries {
			m.printf("| %s | %d | %d | %s |\n", s.Session, s.Attended, s.Total, s.Rate)
		}
		m.printf("\n**Average participation:** %s\n\n", la.Average)
	}
	if session == "" {
		return
	}
	list, ok := la.Session(session)
	if !ok {
		m.printf("_No participants: session %q not found._\n\n", session)
		return
	}
	m.participants(list)
}

func (m *mdWriter) participants(list attendance.ParticipantList) {
	m.printf("### Participants of %s\n\n", list.Session)
	if len(list.Participants) == 0 {
		m.printf("_No participants._\n\n")
		return
	}
	if len(list.Gender) > 0 {
		parts := make([]string, len(list.Gender))
		for i, g := range list.Gender {
			parts[i] = fmt.Sprintf("%s %d", g.Label, g.Count)
		}
		m.printf("**Participants:** %d (%s)\n\n", len(list.Participants), strings.Join(parts, ", "))
	}
	m.printf("| First name | Last name | Email | Sex | Status |\n|---|---|---|---|---|\n")
	for _, p := range list.Participants {
		m.printf("| %s | %s | %s | %s | %s |\n", cell(p.FirstName), cell(p.LastName), cell(p.Email), cell(p.Sex), cell(p.Status))
	}
	m.printf("\n")
}

// cell escapes pipe characters in a table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
