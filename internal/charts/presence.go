// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
)

// Presence renders the attended count of every session as a line on the
// left axis and its participation rate on a right axis scaled 0-100.
// Sessions with an undefined rate have no point on the rate line.
func Presence(w io.Writer, title string, summaries []attendance.Summary, f Format) error {
	if len(summaries) == 0 {
		return ErrNoData
	}

	attended := chart.ContinuousSeries{
		Name:  "Attended",
		Style: chart.Style{StrokeColor: primary, StrokeWidth: 3, DotColor: primary, DotWidth: 4},
	}
	rates := chart.ContinuousSeries{
		Name:  "Rate (%)",
		YAxis: chart.YAxisSecondary,
		Style: chart.Style{StrokeColor: accent, StrokeWidth: 2, StrokeDashArray: []float64{5, 3}, DotColor: accent, DotWidth: 4},
	}
	// Blank end ticks pad the axis so a single session still has a range.
	ticks := []chart.Tick{{Value: 0.5}}
	maxAttended := 1
	for i, s := range summaries {
		x := float64(i + 1)
		ticks = append(ticks, chart.Tick{Value: x, Label: s.Session})
		attended.XValues = append(attended.XValues, x)
		attended.YValues = append(attended.YValues, float64(s.Attended))
		maxAttended = max(maxAttended, s.Attended, s.Total)
		if s.Rate.Defined {
			rates.XValues = append(rates.XValues, x)
			rates.YValues = append(rates.YValues, s.Rate.Value)
		}
	}

	ticks = append(ticks, chart.Tick{Value: float64(len(summaries)) + 0.5})

	series := []chart.Series{attended}
	if len(rates.XValues) > 0 {
		series = append(series, rates)
	}
	graph := chart.Chart{
		Title:  title,
		Width:  max(minWidth, len(summaries)*70+160),
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(len(summaries)) + 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  "Attended",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxAttended)},
			ValueFormatter: func(v any) string {
				if n, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", n)
				}
				return ""
			},
		},
		YAxisSecondary: chart.YAxis{
			Name:  "Rate (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(f.renderer(), w); err != nil {
		return fmt.Errorf("render presence chart: %w", err)
	}
	return nil
}
