// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
	"github.com/atk0906/Projet-SUAPS/internal/report"
)

func TestMarkdownFormatter(t *testing.T) {
	d := dashboardtest.Build(t)
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(d, Options{}, &buf))
	out := buf.String()

	assert.Contains(t, out, "# SUAPS dashboard")
	assert.Contains(t, out, "**Site:** all sites")
	assert.Contains(t, out, "| 5 | 4 | 3 | 2 |")
	assert.Contains(t, out, "## Attendance: BASKET - LORIENT (beginner)")
	assert.Contains(t, out, "| Course 10 | 2 | 4 | 50.00% |")
	assert.Contains(t, out, "**Average participation:** 66.67%")
	assert.Contains(t, out, "### Registrations by day and time slot")
	assert.NotContains(t, out, "### Participants of")
}

func TestMarkdownFormatter_Participants(t *testing.T) {
	d := dashboardtest.Build(t)
	opts := Options{
		Sections: []string{"attendance"},
		Report:   report.Options{Level: "beginner", Session: "Course 1"},
	}
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(d, opts, &buf))
	out := buf.String()

	assert.NotContains(t, out, "## Overview")
	assert.NotContains(t, out, "(confirmed)")
	assert.Contains(t, out, "### Participants of Course 1")
	assert.Contains(t, out, "**Participants:** 3 (Male 2, Female 1)")
	assert.Contains(t, out, "| Bruno | Le Goff | bruno.legoff@univ.fr | M | Late |")
}

func TestMarkdownFormatter_UnknownSession(t *testing.T) {
	d := dashboardtest.Build(t)
	opts := Options{Sections: []string{"attendance"}, Report: report.Options{Session: "Course 4"}}
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(d, opts, &buf))
	assert.Contains(t, buf.String(), `_No participants: session "Course 4" not found._`)
}

func TestMarkdownFormatter_UndefinedRate(t *testing.T) {
	d := dashboardtest.Build(t)
	la, ok := d.Level("confirmed")
	require.True(t, ok)
	la.Average = attendance.Undefined

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(d, Options{Sections: []string{"attendance"}}, &buf))
	assert.Contains(t, buf.String(), "**Average participation:** N/A")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestMarkdownFormatter_WriteError(t *testing.T) {
	d := dashboardtest.Build(t)
	err := NewMarkdownFormatter().Format(d, Options{}, failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCellEscapesPipes(t *testing.T) {
	assert.Equal(t, `a\|b`, cell("a|b"))
}
