// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
)

func render(t *testing.T, s Section, d *dashboard.Dashboard) string {
	t.Helper()
	require.NoError(t, s.Analyze(d))
	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	return buf.String()
}

func TestOverviewSection(t *testing.T) {
	out := render(t, &overviewSection{}, dashboardtest.Build(t))

	assert.Contains(t, out, "Registrations: 5")
	assert.Contains(t, out, "Students:      4")
	assert.Contains(t, out, "Groupement d’activités")
	assert.Contains(t, out, "Sports collectifs")
	assert.Contains(t, out, "60.0%")
}

func TestOverviewSection_Empty(t *testing.T) {
	err := (&overviewSection{}).Analyze(&dashboard.Dashboard{})
	assert.True(t, errors.Is(err, ErrSectionUnavailable))
}

func TestStatisticsSection(t *testing.T) {
	out := render(t, &statisticsSection{}, dashboardtest.Build(t))

	assert.Contains(t, out, "Top 10 activities")
	assert.Contains(t, out, "BASKET - LORIENT")
	assert.Contains(t, out, "Registrations by department")
	assert.Contains(t, out, "Registrations by site")
	assert.Less(t, bytes.Index([]byte(out), []byte("GEA")), bytes.Index([]byte(out), []byte("Chimie")),
		"departments are listed largest first")
}

func TestAdvancedSection(t *testing.T) {
	out := render(t, &advancedSection{}, dashboardtest.Build(t))

	assert.Contains(t, out, "Registrations by period")
	assert.Contains(t, out, "Evening")
	assert.Contains(t, out, "Top 10 teachers")
	assert.Contains(t, out, "Registrations by day and time slot")
	assert.Contains(t, out, "18:00 - 20:00")
}

func TestAttendanceSection(t *testing.T) {
	s := &attendanceSection{}
	s.Configure(Options{Level: "beginner", Session: "Course 10"})
	out := render(t, s, dashboardtest.Build(t))

	assert.Contains(t, out, "Attendance: BASKET - LORIENT (beginner)")
	assert.NotContains(t, out, "(confirmed)")
	assert.Contains(t, out, "Course 1 ")
	assert.Contains(t, out, "75.00%")
	assert.Contains(t, out, "Average participation: 66.67%")
	assert.Contains(t, out, "Female 2, Male 2")
	assert.Contains(t, out, "Participants of Course 10 (2)")
	assert.Contains(t, out, "bruno.legoff@univ.fr")
}

func TestAttendanceSection_UnknownSession(t *testing.T) {
	s := &attendanceSection{}
	s.Configure(Options{Level: "confirmed", Session: "Course 7"})
	out := render(t, s, dashboardtest.Build(t))
	assert.Contains(t, out, `No participants: session "Course 7" not found for level confirmed.`)
}

func TestAttendanceSection_Unavailable(t *testing.T) {
	d := &dashboard.Dashboard{Attendance: []*dashboard.LevelAttendance{{Level: "beginner"}}}
	err := (&attendanceSection{}).Analyze(d)
	assert.True(t, errors.Is(err, ErrSectionUnavailable))
}

func TestRenderLevel_EmptyRosterShowsNA(t *testing.T) {
	la := &dashboard.LevelAttendance{
		Level:     "beginner",
		Available: true,
		Summaries: []attendance.Summary{{Session: "Course 1", Number: 1, Rate: attendance.Undefined}},
		Average:   attendance.Undefined,
	}
	var buf bytes.Buffer
	require.NoError(t, RenderLevel(&buf, "BASKET - LORIENT", la))
	assert.Contains(t, buf.String(), "N/A")
	assert.NotContains(t, buf.String(), "NaN")
}

func TestRenderLevel_NoSessions(t *testing.T) {
	la := &dashboard.LevelAttendance{Level: "beginner", Available: true}
	var buf bytes.Buffer
	require.NoError(t, RenderLevel(&buf, "BASKET - LORIENT", la))
	assert.Contains(t, buf.String(), "No course session columns found.")
}

func TestRenderParticipants(t *testing.T) {
	la, ok := dashboardtest.Build(t).Level("beginner")
	require.True(t, ok)
	list, ok := la.Session("Course 10")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, RenderParticipants(&buf, list))
	out := buf.String()
	assert.Contains(t, out, "Participants of Course 10 (2)")
	assert.Contains(t, out, "Participants by gender: Male 2\n")
	assert.Contains(t, out, "bruno.legoff@univ.fr")
}

func TestRenderParticipants_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderParticipants(&buf, attendance.ParticipantList{Session: "Course 2"}))
	assert.Contains(t, buf.String(), "No participants.")
	assert.NotContains(t, buf.String(), "by gender")
}

func TestStudentsSection(t *testing.T) {
	out := render(t, &studentsSection{}, dashboardtest.Build(t))
	assert.Contains(t, out, "Top 8 departments")
	assert.Contains(t, out, "Main activities per department")
	assert.Contains(t, out, "(all)")
}
