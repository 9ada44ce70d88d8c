// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// Semester keys.
const (
	Semester1 = "semester1"
	Semester2 = "semester2"
	Events    = "events"
)

// DefaultActivity is the activity whose presence sheets are analyzed.
const DefaultActivity = "BASKET - LORIENT"

// DefaultSemesters maps semester keys to their enrollment export.
var DefaultSemesters = map[string]string{
	Semester1: "fixed_ses1.csv",
	Semester2: "fixed_ses2.csv",
	Events:    "fixed_even.csv",
}

// Level is a skill level with its presence export.
type Level struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// DefaultLevels are the beginner and confirmed basketball groups.
var DefaultLevels = []Level{
	{Name: "beginner", File: "presence_basket_debutant.csv"},
	{Name: "confirmed", File: "presence_basket_confirme.csv"},
}

// Options control a dashboard build.
type Options struct {
	// DataDir holds the exports; relative file names resolve against it.
	DataDir string
	// Semester is a key of Semesters.
	Semester  string
	Semesters map[string]string
	// Site filters enrollments; empty, "all" and "tous" keep every site.
	Site string

	Activity     string
	Levels       []Level
	SessionLabel string
	Vocabulary   *attendance.Vocabulary

	// Record appends this build to the attendance history.
	Record bool
	// TrendWindow is the number of history entries compared per level.
	TrendWindow int
}

// DefaultOptions returns the options of a plain build of dataDir.
func DefaultOptions(dataDir string) Options {
	return Options{
		DataDir:      dataDir,
		Semester:     Semester1,
		Semesters:    DefaultSemesters,
		Activity:     DefaultActivity,
		Levels:       DefaultLevels,
		SessionLabel: attendance.DefaultSessionLabel,
		TrendWindow:  5,
	}
}

func (o Options) withDefaults() Options {
	if o.Semester == "" {
		o.Semester = Semester1
	}
	if len(o.Semesters) == 0 {
		o.Semesters = DefaultSemesters
	}
	if o.Levels == nil {
		o.Levels = DefaultLevels
	}
	if o.Vocabulary == nil {
		o.Vocabulary = attendance.DefaultVocabulary()
	}
	return o
}

// SemesterFile resolves the enrollment export of the configured semester.
func (o Options) SemesterFile() (string, error) {
	o = o.withDefaults()
	file, ok := o.Semesters[o.Semester]
	if !ok {
		return "", fmt.Errorf("unknown semester %q (available: %s)", o.Semester, strings.Join(SemesterKeys(o.Semesters), ", "))
	}
	return o.Resolve(file), nil
}

// Resolve joins a relative export name to DataDir.
func (o Options) Resolve(file string) string {
	if filepath.IsAbs(file) || o.DataDir == "" {
		return file
	}
	return filepath.Join(o.DataDir, file)
}

// SiteFilter reports the site to filter on, or "" when every site is kept.
func (o Options) SiteFilter() string {
	switch dataset.Fold(o.Site) {
	case "", "all", "tous":
		return ""
	}
	return strings.TrimSpace(o.Site)
}

// SemesterKeys returns the sorted keys of semesters.
func SemesterKeys(semesters map[string]string) []string {
	keys := make([]string, 0, len(semesters))
	for k := range semesters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
