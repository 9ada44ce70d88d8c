// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package attendance

import (
	"sort"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// Participant is a student who attended a session, with the raw status cell.
type Participant struct {
	Student
	Status string `json:"status"`
}

// ParticipantList is the attendees of one session and their split by sex.
// Missing names the identity fields the export lacked; those fields are left
// empty.
type ParticipantList struct {
	Session      string        `json:"session"`
	Participants []Participant `json:"participants"`
	Gender       []Count       `json:"gender"`
	Missing      []string      `json:"missing_fields,omitempty"`
}

// Participants returns the students whose status for session counts as
// attended, in roster order. session may be a label, a raw column name or a
// session number. ok is false when the roster has no such session.
func Participants(r *Roster, session string, v *Vocabulary) (list ParticipantList, ok bool) {
	if v == nil {
		v = DefaultVocabulary()
	}
	sess, ok := r.Schema.Session(session)
	if !ok {
		return ParticipantList{}, false
	}
	list = ParticipantList{
		Session:      sess.Label,
		Participants: []Participant{},
		Missing:      r.Schema.MissingNames(),
	}
	sexes := make(sexCounter)
	for _, st := range r.Students {
		raw := st.Statuses[sess.Label]
		if v.Attended(raw) {
			list.Participants = append(list.Participants, Participant{Student: st, Status: raw})
			sexes.add(st.Sex)
		}
	}
	list.Gender = sexes.counts()
	return list, true
}

// Count is a labelled count.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

var sexLabels = map[string]string{
	"f":      "Female",
	"femme":  "Female",
	"female": "Female",
	"m":      "Male",
	"homme":  "Male",
	"male":   "Male",
}

// GenderBreakdown counts roster students by sex, mapping F and M codes to
// Female and Male. Other values are kept as written; empty cells are skipped.
// Counts are ordered by count descending, then label.
func GenderBreakdown(r *Roster) []Count {
	sexes := make(sexCounter)
	for _, st := range r.Students {
		sexes.add(st.Sex)
	}
	return sexes.counts()
}

// sexCounter counts students by sex label.
type sexCounter map[string]int

func (c sexCounter) add(sex string) {
	if sex == "" {
		return
	}
	label, ok := sexLabels[dataset.Fold(sex)]
	if !ok {
		label = sex
	}
	c[label]++
}

// counts returns the counts ordered by count descending, then label.
func (c sexCounter) counts() []Count {
	out := make([]Count, 0, len(c))
	for label, n := range c {
		out = append(out, Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
