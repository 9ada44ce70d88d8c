// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package validate checks the exports of a data directory before a dashboard
// is built. It reports missing files, enrollment columns the views need,
// presence sheets without usable session columns and status spellings that
// look like a typo of an attended status, each with a fix suggestion.
package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/dataset"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
)

// Severity ranks an issue. Errors make a build fail or drop a level; warnings
// only make some view empty.
type Severity string

// Severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// EnrollmentColumns are the columns the enrollment views read.
var EnrollmentColumns = []string{
	enrollment.ColFirstName,
	enrollment.ColLastName,
	enrollment.ColActivity,
	enrollment.ColTeacher,
	enrollment.ColGroup,
	enrollment.ColRegistration,
	enrollment.ColType,
	enrollment.ColDepartment,
	enrollment.ColDay,
	enrollment.ColSchedule,
	enrollment.ColSite,
	enrollment.ColLevel,
}

// Issue is a single problem found in one export.
type Issue struct {
	File       string   `json:"file"`
	Column     string   `json:"column,omitempty"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (e *Issue) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Result contains the outcome of checking a data directory.
type Result struct {
	Files  int     `json:"files"`
	Issues []Issue `json:"issues"`
}

// Valid returns true if no error was found. Warnings do not count.
func (r *Result) Valid() bool {
	return r.Count(SeverityError) == 0
}

// Count returns the number of issues of severity s.
func (r *Result) Count(s Severity) int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == s {
			n++
		}
	}
	return n
}

func (r *Result) add(file, column string, sev Severity, msg, suggestion string) {
	r.Issues = append(r.Issues, Issue{
		File:       file,
		Column:     column,
		Severity:   sev,
		Message:    msg,
		Suggestion: suggestion,
	})
}

// Exports checks every semester export and presence export named by opts.
// Only the selected semester is required; the others are checked when they
// exist.
func Exports(opts dashboard.Options) *Result {
	result := &Result{}
	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = attendance.DefaultVocabulary()
	}
	semesters := opts.Semesters
	if len(semesters) == 0 {
		semesters = dashboard.DefaultSemesters
	}
	selected := opts.Semester
	if selected == "" {
		selected = dashboard.Semester1
	}
	levels := opts.Levels
	if levels == nil {
		levels = dashboard.DefaultLevels
	}

	for _, key := range dashboard.SemesterKeys(semesters) {
		path := opts.Resolve(semesters[key])
		table, ok := load(result, path, key == selected)
		if ok {
			checkEnrollment(result, path, table)
		}
	}
	if _, ok := semesters[selected]; !ok {
		result.add("", "", SeverityError,
			fmt.Sprintf("unknown semester %q", selected),
			fmt.Sprintf("use one of: %s", strings.Join(dashboard.SemesterKeys(semesters), ", ")))
	}

	for _, lvl := range levels {
		path := opts.Resolve(lvl.File)
		table, ok := load(result, path, true)
		if ok {
			checkPresence(result, path, table, opts, vocab)
		}
	}
	return result
}

// load reads path. A missing file is an error when required and skipped
// silently otherwise.
func load(result *Result, path string, required bool) (*dataset.Table, bool) {
	table, err := dataset.LoadFile(path)
	if err == nil {
		result.Files++
		return table, true
	}
	if errors.Is(err, fs.ErrNotExist) {
		if required {
			result.add(path, "", SeverityError, "file not found",
				"export the sheet from the SUAPS platform or fix the file name in .suaps.yaml")
		}
		return nil, false
	}
	result.Files++
	result.add(path, "", SeverityError, fmt.Sprintf("cannot read export: %v", err),
		"save the sheet as CSV (comma or semicolon separated) or XLSX")
	return nil, false
}

// checkEnrollment reports the enrollment columns the views cannot find.
func checkEnrollment(result *Result, path string, t *dataset.Table) {
	if t.Len() == 0 {
		result.add(path, "", SeverityWarning, "no registrations", "")
	}
	for _, col := range EnrollmentColumns {
		if t.Has(col) {
			continue
		}
		suggestion := "the views using this column will be skipped"
		if hint := closestMatch(dataset.Fold(col), t.Header, typoDistance(col)); hint != "" {
			suggestion = fmt.Sprintf("did you mean %q? rename the column to %q", hint, col)
		}
		result.add(path, col, SeverityWarning, "missing column", suggestion)
	}
}

// checkPresence reports the problems of one presence export.
func checkPresence(result *Result, path string, t *dataset.Table, opts dashboard.Options, vocab *attendance.Vocabulary) {
	roster := attendance.NewRoster(t, opts.SessionLabel)
	schema := roster.Schema

	if len(schema.Sessions) == 0 {
		result.add(path, "", SeverityError, "no session columns",
			"session columns must be named \"Cours n°<N> - <date>\"")
	}
	for _, rej := range schema.Rejected {
		result.add(path, rej.Column, SeverityWarning, "ignored session column: "+rej.Reason, "")
	}
	for _, name := range schema.MissingNames() {
		result.add(path, name, SeverityWarning, "missing identity column",
			fmt.Sprintf("add a %q column", name))
	}

	activity := opts.Activity
	if activity == "" {
		activity = dashboard.DefaultActivity
	}
	if schema.Has(attendance.Activity) && roster.Len() > 0 && roster.ForActivity(activity).Len() == 0 {
		suggestion := "check attendance.activity in .suaps.yaml"
		if hint := closestMatch(dataset.Fold(activity), activities(roster), typoDistance(activity)); hint != "" {
			suggestion = fmt.Sprintf("did you mean %q?", hint)
		}
		result.add(path, attendance.Activity.String(), SeverityError,
			fmt.Sprintf("no student of activity %q", activity), suggestion)
	}

	spellings := vocab.AttendedSpellings()
	seen := make(map[string]bool)
	for _, st := range roster.ForActivity(activity).Students {
		for _, sess := range schema.Sessions {
			raw := st.Statuses[sess.Label]
			if raw == "" || seen[raw] || vocab.Attended(raw) {
				continue
			}
			seen[raw] = true
			if hint := closestMatch(dataset.Fold(raw), spellings, typoDistance(raw)); hint != "" {
				result.add(path, sess.Column, SeverityWarning,
					fmt.Sprintf("status %q is not counted as attended", raw),
					fmt.Sprintf("did you mean %q? or add it to attendance.status_aliases", hint))
			}
		}
	}
}

// activities returns the distinct activities of the roster, sorted.
func activities(r *attendance.Roster) []string {
	set := make(map[string]bool)
	for _, st := range r.Students {
		if st.Activity != "" {
			set[st.Activity] = true
		}
	}
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// typoDistance is the largest edit distance still read as a typo of s: one
// edit per four characters, at least one.
func typoDistance(s string) int {
	return max(1, utf8.RuneCountInString(s)/4)
}

// closestMatch finds the candidate closest to input using Levenshtein
// distance on folded values. Returns empty string if no match is within
// maxDist or the closest match is input itself.
func closestMatch(input string, candidates []string, maxDist int) string {
	best := ""
	bestDist := maxDist + 1

	for _, c := range candidates {
		d := levenshtein(input, dataset.Fold(c))
		if d < bestDist {
			bestDist = d
			best = c
		}
	}

	if bestDist == 0 || bestDist > maxDist {
		return ""
	}
	return best
}

// levenshtein computes the Levenshtein edit distance between two strings,
// counting runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}
