// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
	"github.com/atk0906/Projet-SUAPS/internal/report"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type stubFormatter struct{}

func (s *stubFormatter) Name() string { return "stub" }
func (s *stubFormatter) Format(_ *dashboard.Dashboard, _ Options, w io.Writer) error {
	_, err := io.WriteString(w, "stub")
	return err
}

// restoreFormatters re-registers the built-in formatters after a test
// cleared the registry.
func restoreFormatters() {
	resetFmtForTesting()
	RegisterFormatter(&TextFormatter{})
	RegisterFormatter(NewJSONFormatter())
	RegisterFormatter(NewMarkdownFormatter())
	RegisterFormatter(NewHTMLFormatter())
	RegisterFormatter(NewXLSXFormatter())
}

func TestBuiltinFormatters(t *testing.T) {
	assert.Equal(t, []string{"html", "json", "markdown", "text", "xlsx"}, Names())
}

func TestRegisterFormatter(t *testing.T) {
	resetFmtForTesting()
	defer restoreFormatters()

	RegisterFormatter(&stubFormatter{})
	f, err := GetFormatter("stub")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Format(nil, Options{}, &buf))
	assert.Equal(t, "stub", buf.String())
}

func TestGetFormatter_Unknown(t *testing.T) {
	_, err := GetFormatter("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format: "pdf"`)
	assert.Contains(t, err.Error(), "html, json, markdown, text, xlsx")
}

func TestOptionsIncludes(t *testing.T) {
	assert.True(t, Options{}.Includes("overview"))
	opts := Options{Sections: []string{"attendance"}}
	assert.True(t, opts.Includes("attendance"))
	assert.False(t, opts.Includes("overview"))
}

func TestSelectedLevels(t *testing.T) {
	d := dashboardtest.Build(t)

	assert.Len(t, selectedLevels(d, Options{}), 2)

	levels := selectedLevels(d, Options{Report: report.Options{Level: "confirmed"}})
	require.Len(t, levels, 1)
	assert.Equal(t, "confirmed", levels[0].Level)

	assert.Empty(t, selectedLevels(d, Options{Report: report.Options{Level: "expert"}}))
}

func TestTextFormatter(t *testing.T) {
	d := dashboardtest.Build(t)
	var buf bytes.Buffer
	require.NoError(t, (&TextFormatter{}).Format(d, Options{Sections: []string{"attendance"}}, &buf))
	assert.Contains(t, buf.String(), "Course 10")
	assert.Contains(t, buf.String(), "66.67%")
}
