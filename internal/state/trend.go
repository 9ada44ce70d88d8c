// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package state

import (
	"math"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
)

// DefaultWindowSize is the default number of entries to compare for trends.
const DefaultWindowSize = 5

// deadbandPoints is the rate change, in percentage points, below which a
// trend is "stable".
const deadbandPoints = 1.0

// Direction describes whether attendance is improving, stable, or degrading.
type Direction string

const (
	Improving Direction = "improving"
	Stable    Direction = "stable"
	Degrading Direction = "degrading"
)

// TrendLine captures the change of the average rate of one level.
type TrendLine struct {
	Level      string          `json:"level"`
	Current    attendance.Rate `json:"current"`
	Previous   attendance.Rate `json:"previous"`
	Delta      float64         `json:"delta"`
	Direction  Direction       `json:"direction"`
	DataPoints int             `json:"data_points"`
}

// TrendResult holds the trends of every level with enough history.
type TrendResult struct {
	Lines      []TrendLine `json:"lines"`
	WindowSize int         `json:"window_size"`
}

// ComputeTrends compares, per level, the oldest and newest entries within
// the window among the entries recorded for semester and site. Levels with
// fewer than 2 data points are omitted; nil is returned when no level has
// a trend.
func ComputeTrends(h *History, windowSize int, semester, site string) *TrendResult {
	if h == nil || len(h.Entries) < 2 {
		return nil
	}
	if windowSize < 2 {
		windowSize = DefaultWindowSize
	}

	result := &TrendResult{WindowSize: windowSize}
	for _, level := range h.Levels() {
		var entries []HistoryEntry
		for _, e := range h.Entries {
			if e.Level == level && e.Semester == semester && e.Site == site {
				entries = append(entries, e)
			}
		}
		if len(entries) < 2 {
			continue
		}
		if len(entries) > windowSize {
			entries = entries[len(entries)-windowSize:]
		}
		oldest, newest := entries[0], entries[len(entries)-1]
		line := computeTrendLine(oldest.Average, newest.Average)
		line.Level = level
		line.DataPoints = len(entries)
		result.Lines = append(result.Lines, line)
	}
	if len(result.Lines) == 0 {
		return nil
	}
	return result
}

// computeTrendLine determines direction from old→new using the deadband.
func computeTrendLine(oldRate, newRate attendance.Rate) TrendLine {
	line := TrendLine{
		Current:   newRate,
		Previous:  oldRate,
		Direction: Stable,
	}
	if !oldRate.Defined || !newRate.Defined {
		return line
	}
	line.Delta = math.Round((newRate.Value-oldRate.Value)*100) / 100
	line.Direction = classifyDirection(line.Delta)
	return line
}

// classifyDirection applies the deadband. A higher rate is better.
func classifyDirection(delta float64) Direction {
	switch {
	case math.Abs(delta) <= deadbandPoints:
		return Stable
	case delta > 0:
		return Improving
	default:
		return Degrading
	}
}
