// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package charts

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
	"github.com/atk0906/Projet-SUAPS/internal/testable"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sampleDistribution() *enrollment.Distribution {
	return &enrollment.Distribution{
		Column: "Jour",
		Counts: []enrollment.Count{{Label: "Lundi", Count: 3}, {Label: "Mardi", Count: 1}},
		Total:  4,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{" SVG ", SVG, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "available: png, svg")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, ".svg", SVG.Ext())
}

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bar(&buf, "Registrations by day", sampleDistribution(), PNG))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	require.NoError(t, Bar(&buf, "Registrations by day", sampleDistribution(), SVG))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "Lundi")
}

func TestDonut(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Donut(&buf, "Days", sampleDistribution(), SVG))
	assert.Contains(t, buf.String(), "Lundi (75.0%)")
}

func TestNoData(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Bar(&buf, "x", nil, PNG), ErrNoData)
	assert.ErrorIs(t, Bar(&buf, "x", &enrollment.Distribution{}, PNG), ErrNoData)
	assert.ErrorIs(t, Donut(&buf, "x", &enrollment.Distribution{}, PNG), ErrNoData)
	assert.ErrorIs(t, Presence(&buf, "x", nil, PNG), ErrNoData)
}

func TestPresence(t *testing.T) {
	summaries := []attendance.Summary{
		{Session: "Course 1", Number: 1, Attended: 3, Total: 4, Rate: attendance.NewRate(3, 4)},
		{Session: "Course 2", Number: 2, Attended: 0, Total: 0, Rate: attendance.Undefined},
		{Session: "Course 3", Number: 3, Attended: 2, Total: 4, Rate: attendance.NewRate(2, 4)},
	}
	var buf bytes.Buffer
	require.NoError(t, Presence(&buf, "Basket", summaries, SVG))
	assert.Contains(t, buf.String(), "Course 3")
	assert.Contains(t, buf.String(), "Rate (%)")
}

func TestPresence_SingleSession(t *testing.T) {
	summaries := []attendance.Summary{
		{Session: "Course 1", Number: 1, Attended: 1, Total: 2, Rate: attendance.NewRate(1, 2)},
	}
	var buf bytes.Buffer
	require.NoError(t, Presence(&buf, "Basket", summaries, PNG))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestWriteAll(t *testing.T) {
	d := dashboardtest.Build(t)
	dir := filepath.Join(t.TempDir(), "charts")

	paths, err := WriteAll(d, dir, PNG)
	require.NoError(t, err)
	assert.Contains(t, paths, filepath.Join(dir, "top-activities.png"))
	assert.Contains(t, paths, filepath.Join(dir, "presence-beginner.png"))
	assert.Contains(t, paths, filepath.Join(dir, "presence-confirmed.png"))

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic), p)
	}
}

func TestWriteAll_WriteError(t *testing.T) {
	old := FS
	defer func() { FS = old }()
	FS = &testable.MockFileSystem{
		WriteFileFn: func(string, []byte, os.FileMode) error { return errors.New("read-only") },
	}

	_, err := WriteAll(dashboardtest.Build(t), t.TempDir(), SVG)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "read-only"))
}
