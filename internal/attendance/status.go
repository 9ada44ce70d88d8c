// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package attendance aggregates per-session presence of an activity roster:
// how many students attended each course session, the participation rate,
// and who attended a given session.
package attendance

import (
	"fmt"
	"sort"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// Status is the classification of a raw attendance cell.
type Status int

const (
	// Other covers absent, excused, empty and unrecognized values.
	Other Status = iota
	// Present is an on-time attendance.
	Present
	// Late is a late attendance.
	Late
)

// String returns the English name of s.
func (s Status) String() string {
	switch s {
	case Present:
		return "present"
	case Late:
		return "late"
	default:
		return "other"
	}
}

// ParseStatusName maps a configuration key ("present", "late") to a Status.
func ParseStatusName(name string) (Status, error) {
	switch dataset.Fold(name) {
	case "present":
		return Present, nil
	case "late":
		return Late, nil
	case "other":
		return Other, nil
	}
	return Other, fmt.Errorf("unknown attendance status %q (want present or late)", name)
}

// Vocabulary classifies raw status strings and knows which statuses count as
// attended. A Vocabulary is immutable once built and safe for concurrent use.
type Vocabulary struct {
	spellings map[string]Status
	attended  map[Status]bool
}

var defaultSpellings = map[Status][]string{
	Present: {"Present", "Présent"},
	Late:    {"Late", "En retard", "Retard"},
}

// DefaultVocabulary recognizes the French and English spellings of Present
// and Late and counts both as attended.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(nil)
}

// NewVocabulary extends the default spellings with aliases. When attended is
// empty, Present and Late both count as attended.
func NewVocabulary(aliases map[Status][]string, attended ...Status) *Vocabulary {
	v := &Vocabulary{
		spellings: make(map[string]Status),
		attended:  make(map[Status]bool),
	}
	for st, words := range defaultSpellings {
		v.add(st, words)
	}
	for st, words := range aliases {
		v.add(st, words)
	}
	if len(attended) == 0 {
		attended = []Status{Present, Late}
	}
	for _, st := range attended {
		if st != Other {
			v.attended[st] = true
		}
	}
	return v
}

func (v *Vocabulary) add(st Status, words []string) {
	for _, w := range words {
		if k := dataset.Fold(w); k != "" {
			v.spellings[k] = st
		}
	}
}

// Classify maps a raw cell to a Status, ignoring case and accents.
func (v *Vocabulary) Classify(raw string) Status {
	return v.spellings[dataset.Fold(raw)]
}

// Attended reports whether a raw cell counts toward participation.
func (v *Vocabulary) Attended(raw string) bool {
	return v.attended[v.Classify(raw)]
}

// AttendedStatuses lists the statuses counted as attended, in Status order.
func (v *Vocabulary) AttendedStatuses() []Status {
	out := make([]Status, 0, len(v.attended))
	for st := range v.attended {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AttendedSpellings returns the folded spellings that count as attended,
// sorted.
func (v *Vocabulary) AttendedSpellings() []string {
	var out []string
	for w, st := range v.spellings {
		if v.attended[st] {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}
