// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package dashboard assembles every view of the sports service dashboard
// from the exports of a data directory: enrollment statistics for one
// semester and per-level attendance of the tracked activity.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dataset"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
	"github.com/atk0906/Projet-SUAPS/internal/state"
)

// ErrNoEnrollmentData is returned when the semester export does not exist.
var ErrNoEnrollmentData = errors.New("no enrollment data")

// Dashboard is the result of one build.
type Dashboard struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Duration    time.Duration `json:"duration_ns"`
	Semester    string        `json:"semester"`
	Site        string        `json:"site,omitempty"`
	Source      string        `json:"source"`

	Overview   enrollment.Overview   `json:"overview"`
	Statistics enrollment.Statistics `json:"statistics"`
	Advanced   enrollment.Advanced   `json:"advanced"`
	Students   enrollment.Students   `json:"students"`

	Activity   string             `json:"activity"`
	Attendance []*LevelAttendance `json:"attendance"`
	Trends     *state.TrendResult `json:"trends,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// LevelAttendance is the attendance of the activity at one level.
type LevelAttendance struct {
	Level     string `json:"level"`
	Source    string `json:"source"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`

	Students     int                          `json:"students"`
	Summaries    []attendance.Summary         `json:"summaries"`
	Average      attendance.Rate              `json:"average_rate"`
	Gender       []attendance.Count           `json:"gender"`
	Participants []attendance.ParticipantList `json:"participants"`
	Rejected     []attendance.RejectedColumn  `json:"rejected_columns,omitempty"`
	Missing      []string                     `json:"missing_fields,omitempty"`

	roster *attendance.Roster
}

// Build loads the exports named by opts and computes every view. A missing
// semester export fails the build with ErrNoEnrollmentData; a missing or
// unreadable presence export only marks its level unavailable.
func Build(ctx context.Context, opts Options) (*Dashboard, error) {
	start := time.Now()
	opts = opts.withDefaults()

	path, err := opts.SemesterFile()
	if err != nil {
		return nil, err
	}
	table, err := dataset.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoEnrollmentData, path)
		}
		return nil, err
	}
	if site := opts.SiteFilter(); site != "" {
		if !table.Has(enrollment.ColSite) {
			slog.Warn("site filter ignored, export has no site column", "site", site, "file", path)
		}
		table = table.FilterEquals(enrollment.ColSite, site)
	}

	d := &Dashboard{
		RunID:       uuid.NewString(),
		GeneratedAt: start.UTC(),
		Semester:    opts.Semester,
		Site:        opts.SiteFilter(),
		Source:      path,
		Activity:    opts.Activity,
		Attendance:  make([]*LevelAttendance, len(opts.Levels)),
	}
	slog.Debug("building dashboard", "run_id", d.RunID, "source", path, "rows", table.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Overview = enrollment.BuildOverview(table)
		d.Statistics = enrollment.BuildStatistics(table)
		d.Advanced = enrollment.BuildAdvanced(table)
		d.Students = enrollment.BuildStudents(table)
		return nil
	})
	for i, lvl := range opts.Levels {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d.Attendance[i] = buildLevel(lvl, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, la := range d.Attendance {
		if !la.Available {
			d.Warnings = append(d.Warnings, fmt.Sprintf("level %s: %s", la.Level, la.Error))
		}
	}

	if err := d.applyHistory(opts); err != nil {
		slog.Warn("attendance history unavailable", "error", err)
		d.Warnings = append(d.Warnings, "history: "+err.Error())
	}

	d.Duration = time.Since(start)
	return d, nil
}

func buildLevel(lvl Level, opts Options) *LevelAttendance {
	la := &LevelAttendance{Level: lvl.Name, Source: opts.Resolve(lvl.File)}
	table, err := dataset.LoadFile(la.Source)
	if err != nil {
		slog.Warn("presence export unavailable", "level", lvl.Name, "error", err)
		la.Error = err.Error()
		return la
	}
	roster := attendance.NewRoster(table, opts.SessionLabel).ForActivity(opts.Activity)
	la.Available = true
	la.roster = roster
	la.Students = roster.Len()
	la.Summaries = attendance.Summarize(roster, opts.Vocabulary)
	la.Average = attendance.AverageRate(la.Summaries)
	la.Gender = attendance.GenderBreakdown(roster)
	la.Rejected = roster.Schema.Rejected
	la.Missing = roster.Schema.MissingNames()
	la.Participants = make([]attendance.ParticipantList, 0, len(la.Summaries))
	for _, s := range la.Summaries {
		if list, ok := attendance.Participants(roster, s.Session, opts.Vocabulary); ok {
			la.Participants = append(la.Participants, list)
		}
	}
	return la
}

func (d *Dashboard) applyHistory(opts Options) error {
	if opts.DataDir == "" {
		return nil
	}
	h, err := state.LoadHistory(opts.DataDir)
	if err != nil {
		return err
	}
	if opts.Record {
		h = state.AppendEntry(h, d.HistoryEntries()...)
		if err := state.SaveHistory(opts.DataDir, h); err != nil {
			return err
		}
	}
	d.Trends = state.ComputeTrends(h, opts.TrendWindow, d.Semester, d.Site)
	return nil
}

// HistoryEntries returns one history entry per available level.
func (d *Dashboard) HistoryEntries() []state.HistoryEntry {
	var out []state.HistoryEntry
	for _, la := range d.Attendance {
		if la.Available {
			out = append(out, state.NewEntry(d.RunID, d.Semester, d.Site, la.Level, la.Students, la.Summaries))
		}
	}
	return out
}

// Level returns the attendance of the named level.
func (d *Dashboard) Level(name string) (*LevelAttendance, bool) {
	for _, la := range d.Attendance {
		if dataset.Fold(la.Level) == dataset.Fold(name) {
			return la, true
		}
	}
	return nil, false
}

// LevelNames lists the configured levels in order.
func (d *Dashboard) LevelNames() []string {
	out := make([]string, len(d.Attendance))
	for i, la := range d.Attendance {
		out[i] = la.Level
	}
	return out
}

// Partial reports whether some level could not be loaded.
func (d *Dashboard) Partial() bool {
	for _, la := range d.Attendance {
		if !la.Available {
			return true
		}
	}
	return false
}

// Session returns the participants of one session, looked up by label,
// column name or number. ok is false for an unknown session or an
// unavailable level.
func (la *LevelAttendance) Session(key string) (attendance.ParticipantList, bool) {
	if la.roster == nil {
		return attendance.ParticipantList{}, false
	}
	sess, ok := la.roster.Schema.Session(key)
	if !ok {
		return attendance.ParticipantList{}, false
	}
	for _, list := range la.Participants {
		if list.Session == sess.Label {
			return list, true
		}
	}
	return attendance.ParticipantList{}, false
}

// Anonymize replaces the email of every participant with mask(email).
func (d *Dashboard) Anonymize(mask func(string) string) {
	for _, la := range d.Attendance {
		for i := range la.Participants {
			for j := range la.Participants[i].Participants {
				p := &la.Participants[i].Participants[j]
				p.Email = mask(p.Email)
			}
		}
	}
}
