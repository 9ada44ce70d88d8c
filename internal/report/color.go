// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
)

// SectionTitle renders a bold section title followed by an underline.
func SectionTitle(title string) string {
	return colorBold.Sprint(title) + "\n" + strings.Repeat("-", width(title))
}

// ColorDirection colors trend direction labels.
func ColorDirection(val string) string {
	switch val {
	case "improving":
		return colorGreen.Sprint(val)
	case "degrading":
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// ColorRate colors a formatted participation rate: 75% and above green,
// 50% and above yellow, below red. "N/A" is left plain.
func ColorRate(val string) string {
	v, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
	if err != nil {
		return val
	}
	switch {
	case v >= 75:
		return colorGreen.Sprint(val)
	case v >= 50:
		return colorYellow.Sprint(val)
	default:
		return colorRed.Sprint(val)
	}
}

// ColorBar colors a bar drawn by Bar.
func ColorBar(val string) string {
	return colorCyan.Sprint(val)
}
