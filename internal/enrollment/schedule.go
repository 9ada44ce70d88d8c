// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package enrollment

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// Period is a time-of-day bucket of a class schedule.
type Period int

// Periods in display order.
const (
	Morning Period = iota
	Afternoon
	Evening
)

// Periods lists every period in display order.
var Periods = []Period{Morning, Afternoon, Evening}

func (p Period) String() string {
	switch p {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	default:
		return "Evening"
	}
}

var clock = regexp.MustCompile(`^\s*(\d{1,2})\s*[:hH]\s*(\d{2})`)

// ParsePeriod buckets a schedule cell such as "18:30 - 20:00" by its start
// hour: before 12 is Morning, before 18 Afternoon, before 24 Evening.
func ParsePeriod(schedule string) (Period, bool) {
	m := clock.FindStringSubmatch(schedule)
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil || h > 23 {
		return 0, false
	}
	if mm, _ := strconv.Atoi(m[2]); mm > 59 {
		return 0, false
	}
	switch {
	case h < 12:
		return Morning, true
	case h < 18:
		return Afternoon, true
	default:
		return Evening, true
	}
}

// PeriodCounts counts registrations per period of the schedule column.
// Every period is listed, in display order, even with a zero count;
// unparseable schedules are not counted.
func PeriodCounts(t *dataset.Table) (Distribution, bool) {
	values, ok := t.Column(ColSchedule)
	if !ok {
		return Distribution{Column: ColSchedule}, false
	}
	var n [3]int
	total := 0
	for _, v := range values {
		if p, ok := ParsePeriod(v); ok {
			n[p]++
			total++
		}
	}
	d := Distribution{Column: ColSchedule, Total: total}
	for _, p := range Periods {
		d.Counts = append(d.Counts, Count{Label: p.String(), Count: n[p]})
	}
	return d, true
}

var weekdays = map[string]int{
	"lundi": 1, "monday": 1,
	"mardi": 2, "tuesday": 2,
	"mercredi": 3, "wednesday": 3,
	"jeudi": 4, "thursday": 4,
	"vendredi": 5, "friday": 5,
	"samedi": 6, "saturday": 6,
	"dimanche": 7, "sunday": 7,
}

// sortDays orders weekday names Monday first; unknown names follow,
// alphabetically.
func sortDays(days []string) {
	rank := func(d string) int {
		if r, ok := weekdays[dataset.Fold(d)]; ok {
			return r
		}
		return 8
	}
	sort.SliceStable(days, func(i, j int) bool {
		ri, rj := rank(days[i]), rank(days[j])
		if ri != rj {
			return ri < rj
		}
		return days[i] < days[j]
	})
}

// Heatmap is the registration count of every (day, time slot) pair.
type Heatmap struct {
	Days  []string `json:"days"`
	Slots []string `json:"slots"`
	// Cells[d][s] is the count for Days[d] and Slots[s].
	Cells [][]int `json:"cells"`
	Max   int     `json:"max"`
}

// BuildHeatmap groups rows by day and schedule. ok is false when either
// column is missing.
func BuildHeatmap(t *dataset.Table) (Heatmap, bool) {
	cells, ok := CrossCounts(t, ColDay, ColSchedule)
	if !ok {
		return Heatmap{}, false
	}
	dayIdx := map[string]int{}
	slotIdx := map[string]int{}
	var h Heatmap
	for _, c := range cells {
		if _, ok := dayIdx[c.Row]; !ok {
			dayIdx[c.Row] = 0
			h.Days = append(h.Days, c.Row)
		}
		if _, ok := slotIdx[c.Col]; !ok {
			slotIdx[c.Col] = 0
			h.Slots = append(h.Slots, c.Col)
		}
	}
	sortDays(h.Days)
	sort.Strings(h.Slots)
	for i, d := range h.Days {
		dayIdx[d] = i
	}
	for i, s := range h.Slots {
		slotIdx[s] = i
	}
	h.Cells = make([][]int, len(h.Days))
	for i := range h.Cells {
		h.Cells[i] = make([]int, len(h.Slots))
	}
	for _, c := range cells {
		h.Cells[dayIdx[c.Row]][slotIdx[c.Col]] = c.Count
		if c.Count > h.Max {
			h.Max = c.Count
		}
	}
	return h, true
}
