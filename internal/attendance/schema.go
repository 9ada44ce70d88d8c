// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package attendance

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// Field is an identity column of a presence export.
type Field int

// Identity fields, in display order.
const (
	FirstName Field = iota
	LastName
	Email
	Sex
	Activity
)

var fieldNames = map[Field][]string{
	FirstName: {"Prénom", "First name", "Firstname"},
	LastName:  {"Nom de famille", "Last name", "Lastname", "Nom"},
	Email:     {"Adresse de courriel", "Email", "E-mail", "Courriel"},
	Sex:       {"Sexe", "Sex", "Gender"},
	Activity:  {"Activité", "Activity"},
}

var allFields = []Field{FirstName, LastName, Email, Sex, Activity}

// String returns the canonical (export) name of f.
func (f Field) String() string {
	return fieldNames[f][0]
}

// DefaultSessionLabel is the prefix of normalized session labels.
const DefaultSessionLabel = "Course"

// Session is a course session column discovered in the header.
type Session struct {
	// Label is the normalized display label, e.g. "Course 3".
	Label string `json:"label"`
	// Number is the session number parsed from the column name.
	Number int `json:"number"`
	// Column is the raw header name.
	Column string `json:"column"`

	index int
}

// RejectedColumn is a header that looks like a session column but was not
// accepted as one.
type RejectedColumn struct {
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// Schema is the typed view of a presence export header, validated once when
// the file is ingested.
type Schema struct {
	// Sessions are ordered by ascending session number.
	Sessions []Session
	// Rejected lists session-like columns that did not match the pattern or
	// repeated an already seen session number.
	Rejected []RejectedColumn
	// Missing lists identity fields absent from the header.
	Missing []Field

	fields map[Field]int
}

var (
	sessionColumn = regexp.MustCompile(`^(?:cours|course)\s*n\s*[°º]\s*(\d+)(?:\D|$)`)
	sessionLike   = regexp.MustCompile(`^(?:cours|course)\b`)
)

// ParseSchema discovers identity fields and session columns in header.
// labelPrefix replaces "Course" in normalized labels when non-empty.
func ParseSchema(header []string, labelPrefix string) *Schema {
	if labelPrefix == "" {
		labelPrefix = DefaultSessionLabel
	}
	s := &Schema{fields: make(map[Field]int)}
	tbl := dataset.NewTable(header, nil)
	for _, f := range allFields {
		if i := tbl.IndexAny(fieldNames[f]...); i >= 0 {
			s.fields[f] = i
		} else {
			s.Missing = append(s.Missing, f)
		}
	}

	seen := make(map[int]string)
	for i, name := range tbl.Header {
		folded := dataset.Fold(name)
		m := sessionColumn.FindStringSubmatch(folded)
		if m == nil {
			if sessionLike.MatchString(folded) {
				s.reject(name, "does not match \"Cours n°<N> ...\"")
			}
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			s.reject(name, "session number out of range")
			continue
		}
		if first, dup := seen[n]; dup {
			s.reject(name, fmt.Sprintf("duplicates session %d (%s)", n, first))
			continue
		}
		seen[n] = name
		s.Sessions = append(s.Sessions, Session{
			Label:  labelPrefix + " " + strconv.Itoa(n),
			Number: n,
			Column: name,
			index:  i,
		})
	}
	sort.SliceStable(s.Sessions, func(i, j int) bool {
		return s.Sessions[i].Number < s.Sessions[j].Number
	})
	return s
}

func (s *Schema) reject(column, reason string) {
	slog.Warn("ignoring session column", "column", column, "reason", reason)
	s.Rejected = append(s.Rejected, RejectedColumn{Column: column, Reason: reason})
}

// Has reports whether the identity field is present.
func (s *Schema) Has(f Field) bool {
	_, ok := s.fields[f]
	return ok
}

// Session looks a session up by label ("Course 3"), raw column name or bare
// number ("3"). Comparison ignores case and accents.
func (s *Schema) Session(key string) (Session, bool) {
	k := dataset.Fold(key)
	n, numErr := strconv.Atoi(strings.TrimSpace(key))
	for _, sess := range s.Sessions {
		if dataset.Fold(sess.Label) == k || dataset.Fold(sess.Column) == k {
			return sess, true
		}
		if numErr == nil && sess.Number == n {
			return sess, true
		}
	}
	return Session{}, false
}

// Labels returns the session labels in order.
func (s *Schema) Labels() []string {
	out := make([]string, len(s.Sessions))
	for i, sess := range s.Sessions {
		out[i] = sess.Label
	}
	return out
}

// MissingNames returns the canonical names of the missing identity fields.
func (s *Schema) MissingNames() []string {
	out := make([]string, len(s.Missing))
	for i, f := range s.Missing {
		out[i] = f.String()
	}
	return out
}

func (s *Schema) cell(row []string, f Field) string {
	i, ok := s.fields[f]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
