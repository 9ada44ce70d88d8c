// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package charts renders dashboard views as PNG or SVG images.
package charts

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
)

// ErrNoData is returned when a chart has nothing to plot.
var ErrNoData = errors.New("no data to plot")

// Format is an image encoding.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown chart format %q (available: png, svg)", s)
	}
}

// Ext returns the file extension of f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) renderer() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

var (
	primary   = drawing.ColorFromHex("1E88E5")
	secondary = drawing.ColorFromHex("26A69A")
	accent    = drawing.ColorFromHex("FF8A65")

	palette = []drawing.Color{
		primary,
		secondary,
		accent,
		drawing.ColorFromHex("7986CB"),
		drawing.ColorFromHex("4DB6AC"),
		drawing.ColorFromHex("FFB74D"),
		drawing.ColorFromHex("BA68C8"),
		drawing.ColorFromHex("4FC3F7"),
	}
)

const (
	height   = 400
	barWidth = 40
	minWidth = 480
)

// maxLabel is the longest bar label drawn before truncation.
const maxLabel = 18

func shorten(s string) string {
	r := []rune(s)
	if len(r) <= maxLabel {
		return s
	}
	return string(r[:maxLabel-2]) + ".."
}

// Bar renders d as a vertical bar chart.
func Bar(w io.Writer, title string, d *enrollment.Distribution, f Format) error {
	if d == nil || len(d.Counts) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(d.Counts))
	maxCount := 1
	for i, c := range d.Counts {
		bars[i] = chart.Value{
			Label: shorten(c.Label),
			Value: float64(c.Count),
			Style: chart.Style{FillColor: palette[i%len(palette)], StrokeColor: palette[i%len(palette)]},
		}
		maxCount = max(maxCount, c.Count)
	}
	bc := chart.BarChart{
		Title:    title,
		Height:   height,
		Width:    max(minWidth, len(bars)*(barWidth+20)+120),
		BarWidth: barWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}
	if err := bc.Render(f.renderer(), w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// Donut renders the shares of d as a donut chart.
func Donut(w io.Writer, title string, d *enrollment.Distribution, f Format) error {
	if d == nil || d.Total == 0 {
		return ErrNoData
	}
	values := make([]chart.Value, 0, len(d.Counts))
	for i, c := range d.Counts {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", shorten(c.Label), d.Share(c)),
			Value: float64(c.Count),
			Style: chart.Style{FillColor: palette[i%len(palette)]},
		})
	}
	dc := chart.DonutChart{
		Title:  title,
		Width:  height,
		Height: height,
		Values: values,
	}
	if err := dc.Render(f.renderer(), w); err != nil {
		return fmt.Errorf("render donut chart: %w", err)
	}
	return nil
}
