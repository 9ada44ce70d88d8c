// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package enrollment

import (
	"log/slog"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// View sizes.
const (
	TopActivities      = 10
	TopTeachers        = 10
	TopDepartments     = 8
	TreemapDepartments = 10
	TreemapActivities  = 10
)

// Overview is the headline numbers and shares of the enrollment export.
type Overview struct {
	Registrations int           `json:"registrations"`
	Students      int           `json:"students"`
	Activities    int           `json:"activities"`
	Teachers      int           `json:"teachers"`
	Groups        *Distribution `json:"groups,omitempty"`
	Registration  *Distribution `json:"registration_types,omitempty"`
	Types         *Distribution `json:"types,omitempty"`
	Missing       []string      `json:"missing_columns,omitempty"`
}

// Statistics is the main registration distributions.
type Statistics struct {
	TopActivities *Distribution `json:"top_activities,omitempty"`
	Departments   *Distribution `json:"departments,omitempty"`
	Days          *Distribution `json:"days,omitempty"`
	Sites         *Distribution `json:"sites,omitempty"`
	Missing       []string      `json:"missing_columns,omitempty"`
}

// Advanced is levels, periods, teachers and the weekly heatmap.
type Advanced struct {
	Levels      *Distribution `json:"levels,omitempty"`
	Periods     *Distribution `json:"periods,omitempty"`
	TopTeachers *Distribution `json:"top_teachers,omitempty"`
	Heatmap     *Heatmap      `json:"heatmap,omitempty"`
	Missing     []string      `json:"missing_columns,omitempty"`
}

// Students is the department × activity breakdown.
type Students struct {
	Cells          []Cell        `json:"cells,omitempty"`
	TopDepartments *Distribution `json:"top_departments,omitempty"`
	Treemap        []TreemapNode `json:"treemap,omitempty"`
	Missing        []string      `json:"missing_columns,omitempty"`
}

// missing collects the columns a view could not use.
type missing []string

func (m *missing) dist(d Distribution, ok bool) *Distribution {
	if !ok {
		m.add(d.Column)
		return nil
	}
	return &d
}

func (m *missing) add(cols ...string) {
	for _, c := range cols {
		dup := false
		for _, have := range *m {
			if have == c {
				dup = true
				break
			}
		}
		if !dup {
			*m = append(*m, c)
		}
	}
}

func (m missing) warn(view string) {
	if len(m) > 0 {
		slog.Warn("columns missing, views skipped", "section", view, "columns", []string(m))
	}
}

// BuildOverview computes the overview of t.
func BuildOverview(t *dataset.Table) Overview {
	var m missing
	o := Overview{
		Registrations: t.Len(),
		Students:      TotalStudents(t),
	}
	if !t.Has(ColFirstName) || !t.Has(ColLastName) {
		m.add(ColFirstName, ColLastName)
	}
	var ok bool
	if o.Activities, ok = Nunique(t, ColActivity); !ok {
		m.add(ColActivity)
	}
	if o.Teachers, ok = Nunique(t, ColTeacher); !ok {
		m.add(ColTeacher)
	}
	o.Groups = m.dist(ValueCounts(t, ColGroup))
	o.Registration = m.dist(ValueCounts(t, ColRegistration))
	o.Types = m.dist(DedupValueCounts(t, ColType, ColFirstName, ColLastName, ColType))
	m.warn("overview")
	o.Missing = m
	return o
}

// BuildStatistics computes the main distributions of t.
func BuildStatistics(t *dataset.Table) Statistics {
	var m missing
	var s Statistics
	if d := m.dist(ValueCounts(t, ColActivity)); d != nil {
		top := d.Top(TopActivities)
		s.TopActivities = &top
	}
	if d := m.dist(ValueCounts(t, ColDepartment)); d != nil {
		asc := d.Ascending()
		s.Departments = &asc
	}
	s.Days = m.dist(ValueCounts(t, ColDay))
	s.Sites = m.dist(ValueCounts(t, ColSite))
	m.warn("statistics")
	s.Missing = m
	return s
}

// BuildAdvanced computes levels, periods, teachers and the heatmap of t.
func BuildAdvanced(t *dataset.Table) Advanced {
	var m missing
	var a Advanced
	a.Levels = m.dist(ValueCounts(t, ColLevel))
	a.Periods = m.dist(PeriodCounts(t))
	if d := m.dist(ValueCounts(t, ColTeacher)); d != nil {
		top := d.Top(TopTeachers)
		a.TopTeachers = &top
	}
	if h, ok := BuildHeatmap(t); ok {
		a.Heatmap = &h
	} else {
		for _, c := range []string{ColDay, ColSchedule} {
			if !t.Has(c) {
				m.add(c)
			}
		}
	}
	m.warn("advanced")
	a.Missing = m
	return a
}

// BuildStudents computes the department × activity views of t.
func BuildStudents(t *dataset.Table) Students {
	var m missing
	var s Students
	for _, c := range []string{ColDepartment, ColActivity} {
		if !t.Has(c) {
			m.add(c)
		}
	}
	if len(m) == 0 {
		s.Cells, _ = CrossCounts(t, ColDepartment, ColActivity)
		if d, ok := ValueCounts(t, ColDepartment); ok {
			top := d.Top(TopDepartments)
			s.TopDepartments = &top
		}
		s.Treemap, _ = BuildTreemap(t, TreemapDepartments, TreemapActivities)
	}
	m.warn("students")
	s.Missing = m
	return s
}
