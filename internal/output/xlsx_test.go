// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
)

func openWorkbook(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestXLSXFormatter(t *testing.T) {
	d := dashboardtest.Build(t)
	var buf bytes.Buffer
	require.NoError(t, NewXLSXFormatter().Format(d, Options{}, &buf))

	f := openWorkbook(t, &buf)
	assert.Equal(t, []string{
		"Overview", "Statistics", "Advanced",
		"Attendance beginner", "Participants beginner",
		"Attendance confirmed", "Participants confirmed",
		"Students",
	}, f.GetSheetList())

	rows, err := f.GetRows("Overview")
	require.NoError(t, err)
	assert.Equal(t, []string{"Semester", "Site", "Registrations", "Students", "Activities", "Teachers"}, rows[0])
	assert.Equal(t, []string{"semester1", "", "5", "4", "3", "2"}, rows[1])

	rows, err = f.GetRows("Attendance beginner")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Course 10", "2", "4", "50"}, rows[3])
	require.Len(t, rows[4], 4)
	assert.Equal(t, []string{"Average", "", "4"}, rows[4][:3])
	avg, err := strconv.ParseFloat(rows[4][3], 64)
	require.NoError(t, err)
	assert.InDelta(t, 200.0/3, avg, 1e-9)

	rows, err = f.GetRows("Participants beginner")
	require.NoError(t, err)
	assert.Equal(t, []string{"Course 1", "Alice", "Martin", "alice.martin@univ.fr", "F", "Présent"}, rows[1])
}

func TestXLSXFormatter_UndefinedRateIsEmpty(t *testing.T) {
	d := dashboardtest.Build(t)
	la, ok := d.Level("confirmed")
	require.True(t, ok)
	la.Summaries[0].Rate = attendance.Undefined

	var buf bytes.Buffer
	require.NoError(t, NewXLSXFormatter().Format(d, Options{Sections: []string{"attendance"}}, &buf))

	f := openWorkbook(t, &buf)
	v, err := f.GetCellValue("Attendance confirmed", "D2")
	require.NoError(t, err)
	assert.Empty(t, v)
	v, err = f.GetCellValue("Attendance confirmed", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Course 1", v)
}

func TestXLSXFormatter_NoSections(t *testing.T) {
	d := dashboardtest.Build(t)
	var buf bytes.Buffer
	require.NoError(t, NewXLSXFormatter().Format(d, Options{Sections: []string{"trends"}}, &buf))

	f := openWorkbook(t, &buf)
	assert.Equal(t, []string{"Dashboard"}, f.GetSheetList())
}
