// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package attendance

import (
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// Student is one roster row.
type Student struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Sex       string `json:"sex,omitempty"`
	Activity  string `json:"activity,omitempty"`

	// Statuses maps a session label to the raw status cell.
	Statuses map[string]string `json:"-"`
}

// Name joins first and last name.
func (s Student) Name() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Roster is the students of one activity and level, with the schema their
// export was parsed with.
type Roster struct {
	Schema   *Schema
	Students []Student
}

// NewRoster parses t into a roster. Session labels use labelPrefix (default
// "Course").
func NewRoster(t *dataset.Table, labelPrefix string) *Roster {
	schema := ParseSchema(t.Header, labelPrefix)
	r := &Roster{Schema: schema, Students: make([]Student, 0, t.Len())}
	for _, row := range t.Rows {
		st := Student{
			FirstName: schema.cell(row, FirstName),
			LastName:  schema.cell(row, LastName),
			Email:     schema.cell(row, Email),
			Sex:       schema.cell(row, Sex),
			Activity:  schema.cell(row, Activity),
			Statuses:  make(map[string]string, len(schema.Sessions)),
		}
		for _, sess := range schema.Sessions {
			st.Statuses[sess.Label] = strings.TrimSpace(row[sess.index])
		}
		r.Students = append(r.Students, st)
	}
	return r
}

// Len returns the roster size.
func (r *Roster) Len() int {
	return len(r.Students)
}

// ForActivity keeps the students whose activity equals name, ignoring case
// and accents. The roster is returned unchanged when the export has no
// activity column or name is empty.
func (r *Roster) ForActivity(name string) *Roster {
	if name == "" || !r.Schema.Has(Activity) {
		return r
	}
	want := dataset.Fold(name)
	out := &Roster{Schema: r.Schema}
	for _, st := range r.Students {
		if dataset.Fold(st.Activity) == want {
			out.Students = append(out.Students, st)
		}
	}
	return out
}
