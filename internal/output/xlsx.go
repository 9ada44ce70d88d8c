// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
)

func init() {
	RegisterFormatter(NewXLSXFormatter())
}

// XLSXFormatter writes the dashboard as an Excel workbook with one sheet
// per view. Undefined rates are left as empty cells.
type XLSXFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*XLSXFormatter)(nil)

// NewXLSXFormatter returns a new XLSXFormatter.
func NewXLSXFormatter() *XLSXFormatter {
	return &XLSXFormatter{}
}

// Name returns the format name.
func (x *XLSXFormatter) Name() string {
	return "xlsx"
}

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// xlsxWriter appends rows to sheets and keeps the first error.
type xlsxWriter struct {
	f      *excelize.File
	bold   int
	sheet  string
	row    int
	err    error
	sheets int
}

func (x *xlsxWriter) newSheet(name string) {
	if x.err != nil {
		return
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	if x.sheets == 0 {
		// Reuse the default sheet so the workbook never has a blank first tab.
		x.err = x.f.SetSheetName("Sheet1", name)
	} else {
		_, x.err = x.f.NewSheet(name)
	}
	x.sheets++
	x.sheet = name
	x.row = 0
}

func (x *xlsxWriter) write(values ...any) {
	if x.err != nil {
		return
	}
	x.row++
	cell, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		x.err = err
		return
	}
	x.err = x.f.SetSheetRow(x.sheet, cell, &values)
}

func (x *xlsxWriter) header(values ...any) {
	x.write(values...)
	if x.err != nil {
		return
	}
	x.err = x.f.SetRowStyle(x.sheet, x.row, x.row, x.bold)
}

func (x *xlsxWriter) blank() {
	x.row++
}

// Format writes the selected views of d as an xlsx workbook to w.
func (x *XLSXFormatter) Format(d *dashboard.Dashboard, opts Options, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	xw := &xlsxWriter{f: f, bold: bold}

	if opts.Includes("overview") {
		o := d.Overview
		xw.newSheet("Overview")
		xw.header("Semester", "Site", "Registrations", "Students", "Activities", "Teachers")
		xw.write(d.Semester, d.Site, o.Registrations, o.Students, o.Activities, o.Teachers)
		for _, dist := range []*enrollment.Distribution{o.Groups, o.Registration, o.Types} {
			xw.distribution(dist, true)
		}
	}
	if opts.Includes("statistics") {
		s := d.Statistics
		xw.newSheet("Statistics")
		for _, dist := range []*enrollment.Distribution{s.TopActivities, s.Departments, s.Days, s.Sites} {
			xw.distribution(dist, false)
		}
	}
	if opts.Includes("advanced") {
		a := d.Advanced
		xw.newSheet("Advanced")
		for _, dist := range []*enrollment.Distribution{a.Levels, a.Periods, a.TopTeachers} {
			xw.distribution(dist, false)
		}
		xw.heatmap(a.Heatmap)
	}
	if opts.Includes("attendance") {
		for _, la := range selectedLevels(d, opts) {
			xw.level(la)
		}
	}
	if opts.Includes("students") && len(d.Students.Cells) > 0 {
		xw.newSheet("Students")
		xw.header(enrollment.ColDepartment, enrollment.ColActivity, "Registrations")
		for _, c := range d.Students.Cells {
			xw.write(c.Row, c.Col, c.Count)
		}
	}
	if opts.Includes("trends") && d.Trends != nil {
		xw.newSheet("Trends")
		xw.header("Level", "Current", "Previous", "Delta", "Direction", "Data points")
		for _, l := range d.Trends.Lines {
			xw.write(l.Level, rateCell(l.Current), rateCell(l.Previous), l.Delta, string(l.Direction), l.DataPoints)
		}
	}
	if xw.sheets == 0 {
		xw.newSheet("Dashboard")
		xw.write("No views selected.")
	}
	if xw.err != nil {
		return fmt.Errorf("build workbook: %w", xw.err)
	}
	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (x *xlsxWriter) distribution(d *enrollment.Distribution, shares bool) {
	if d == nil {
		return
	}
	if x.row > 0 {
		x.blank()
	}
	if shares {
		x.header(d.Column, "Count", "Share (%)")
	} else {
		x.header(d.Column, "Count")
	}
	for _, c := range d.Counts {
		if shares {
			x.write(c.Label, c.Count, attendance.NewRate(c.Count, d.Total).Value)
		} else {
			x.write(c.Label, c.Count)
		}
	}
}

func (x *xlsxWriter) heatmap(h *enrollment.Heatmap) {
	if h == nil || len(h.Days) == 0 {
		return
	}
	if x.row > 0 {
		x.blank()
	}
	head := []any{"Time slot"}
	for _, day := range h.Days {
		head = append(head, day)
	}
	x.header(head...)
	for si, slot := range h.Slots {
		row := []any{slot}
		for di := range h.Days {
			row = append(row, h.Cells[di][si])
		}
		x.write(row...)
	}
}

func (x *xlsxWriter) level(la *dashboard.LevelAttendance) {
	x.newSheet("Attendance " + la.Level)
	if !la.Available {
		x.write("Presence export unavailable", la.Error)
		return
	}
	x.header("Session", "Attended", "Students", "Rate (%)")
	for _, s := range la.Summaries {
		x.write(s.Session, s.Attended, s.Total, rateCell(s.Rate))
	}
	x.write("Average", nil, la.Students, rateCell(la.Average))

	if len(la.Participants) == 0 {
		return
	}
	x.newSheet("Participants " + la.Level)
	x.header("Session", "First name", "Last name", "Email", "Sex", "Status")
	for _, list := range la.Participants {
		for _, p := range list.Participants {
			x.write(list.Session, p.FirstName, p.LastName, p.Email, p.Sex, p.Status)
		}
	}
}

// rateCell returns the cell value of r: its percentage, or nil to leave
// the cell empty.
func rateCell(r attendance.Rate) any {
	if !r.Defined {
		return nil
	}
	return r.Value
}
