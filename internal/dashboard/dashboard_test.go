// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package dashboard_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
	"github.com/atk0906/Projet-SUAPS/internal/state"
)

func TestBuild(t *testing.T) {
	d := dashboardtest.Build(t)

	_, err := uuid.Parse(d.RunID)
	assert.NoError(t, err)
	assert.Equal(t, dashboard.Semester1, d.Semester)
	assert.Equal(t, 5, d.Overview.Registrations)
	assert.Equal(t, 4, d.Overview.Students)
	assert.Empty(t, d.Warnings)
	assert.False(t, d.Partial())
	assert.Equal(t, []string{"beginner", "confirmed"}, d.LevelNames())

	beginner, ok := d.Level("Beginner")
	require.True(t, ok)
	assert.True(t, beginner.Available)
	assert.Equal(t, 4, beginner.Students, "rows of other activities are dropped")

	labels := []string{}
	for _, s := range beginner.Summaries {
		labels = append(labels, s.Session)
	}
	assert.Equal(t, []string{"Course 1", "Course 2", "Course 10"}, labels)
	assert.Equal(t, 3, beginner.Summaries[0].Attended)
	assert.Equal(t, attendance.Rate{Value: 75, Defined: true}, beginner.Summaries[0].Rate)
	assert.Equal(t, attendance.Rate{Value: 50, Defined: true}, beginner.Summaries[2].Rate)
	require.True(t, beginner.Average.Defined)
	assert.InDelta(t, 200.0/3, beginner.Average.Value, 1e-9)
	assert.Equal(t, "66.67%", beginner.Average.String())
	assert.Len(t, beginner.Participants, 3)

	confirmed, ok := d.Level("confirmed")
	require.True(t, ok)
	assert.Equal(t, attendance.Rate{Value: 50, Defined: true}, confirmed.Average)
}

func TestBuild_SiteFilter(t *testing.T) {
	opts := dashboard.DefaultOptions(dashboardtest.WriteDataDir(t))
	opts.Site = "vannes"

	d, err := dashboard.Build(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "vannes", d.Site)
	assert.Equal(t, 2, d.Overview.Registrations)

	opts.Site = "Tous"
	d, err = dashboard.Build(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, d.Site)
	assert.Equal(t, 5, d.Overview.Registrations)
}

func TestBuild_MissingPresenceIsPartial(t *testing.T) {
	dir := dashboardtest.WriteDataDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "presence_basket_confirme.csv")))

	d, err := dashboard.Build(context.Background(), dashboard.DefaultOptions(dir))
	require.NoError(t, err)
	assert.True(t, d.Partial())
	require.Len(t, d.Warnings, 1)
	assert.True(t, strings.HasPrefix(d.Warnings[0], "level confirmed:"))

	confirmed, ok := d.Level("confirmed")
	require.True(t, ok)
	assert.False(t, confirmed.Available)
	_, ok = confirmed.Session("Course 1")
	assert.False(t, ok)
}

func TestBuild_MissingSemester(t *testing.T) {
	opts := dashboard.DefaultOptions(dashboardtest.WriteDataDir(t))
	opts.Semester = dashboard.Events

	_, err := dashboard.Build(context.Background(), opts)
	assert.ErrorIs(t, err, dashboard.ErrNoEnrollmentData)
}

func TestBuild_UnknownSemester(t *testing.T) {
	opts := dashboard.DefaultOptions(t.TempDir())
	opts.Semester = "summer"

	_, err := dashboard.Build(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: events, semester1, semester2")
}

func TestBuild_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dashboard.Build(ctx, dashboard.DefaultOptions(dashboardtest.WriteDataDir(t)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_RecordsHistoryAndTrends(t *testing.T) {
	dir := dashboardtest.WriteDataDir(t)
	opts := dashboard.DefaultOptions(dir)
	opts.Record = true

	first, err := dashboard.Build(context.Background(), opts)
	require.NoError(t, err)
	assert.Nil(t, first.Trends)

	second, err := dashboard.Build(context.Background(), opts)
	require.NoError(t, err)
	require.NotNil(t, second.Trends)
	assert.Len(t, second.Trends.Lines, 2)
	assert.Equal(t, state.Stable, second.Trends.Lines[0].Direction)

	h, err := state.LoadHistory(dir)
	require.NoError(t, err)
	assert.Len(t, h.Entries, 4)
	assert.Equal(t, second.RunID, h.Entries[3].RunID)
}

func TestLevelAttendance_Session(t *testing.T) {
	d := dashboardtest.Build(t)
	beginner, _ := d.Level("beginner")

	list, ok := beginner.Session("10")
	require.True(t, ok)
	assert.Equal(t, "Course 10", list.Session)
	assert.Len(t, list.Participants, 2)

	_, ok = beginner.Session("Course 4")
	assert.False(t, ok)
}

func TestDashboard_Anonymize(t *testing.T) {
	d := dashboardtest.Build(t)
	d.Anonymize(func(string) string { return "hidden" })

	beginner, _ := d.Level("beginner")
	list, ok := beginner.Session("Course 1")
	require.True(t, ok)
	for _, p := range list.Participants {
		assert.Equal(t, "hidden", p.Email)
	}
}
