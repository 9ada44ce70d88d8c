// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"io"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/report"
)

func init() {
	RegisterFormatter(&TextFormatter{})
}

// TextFormatter renders the report sections for a terminal.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes the selected report sections to w.
func (f *TextFormatter) Format(d *dashboard.Dashboard, opts Options, w io.Writer) error {
	return report.RenderText(d, opts.Sections, opts.Report, w)
}
