// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package enrollment computes the descriptive statistics of a semester
// enrollment export: value counts per column, time-of-day periods, the
// day × time-slot heatmap and the department × activity breakdowns.
package enrollment

import (
	"sort"
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// Column names of the enrollment export.
const (
	ColFirstName    = "Prénom"
	ColLastName     = "Nom de famille"
	ColActivity     = "Activité"
	ColTeacher      = "Enseignant"
	ColGroup        = "Groupement d’activités"
	ColRegistration = "Type d’inscription"
	ColType         = "Type"
	ColDepartment   = "Département"
	ColDay          = "Jour"
	ColSite         = "Site"
	ColLevel        = "Niveau"
	ColSchedule     = "Horaires"
)

// Count is the number of rows sharing a label.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Distribution is the value counts of one column.
type Distribution struct {
	Column string  `json:"column"`
	Counts []Count `json:"counts"`
	// Total is the number of counted (non-empty) cells, before any Top cut.
	Total int `json:"total"`
}

// ValueCounts counts the non-empty values of column, ordered by count
// descending then label ascending. ok is false when the column is missing.
func ValueCounts(t *dataset.Table, column string) (Distribution, bool) {
	values, ok := t.Column(column)
	if !ok {
		return Distribution{Column: column}, false
	}
	return countValues(column, values), true
}

func countValues(column string, values []string) Distribution {
	counts := make(map[string]int)
	total := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
		total++
	}
	d := Distribution{Column: column, Counts: make([]Count, 0, len(counts)), Total: total}
	for label, n := range counts {
		d.Counts = append(d.Counts, Count{Label: label, Count: n})
	}
	sortCounts(d.Counts)
	return d
}

func sortCounts(c []Count) {
	sort.Slice(c, func(i, j int) bool {
		if c[i].Count != c[j].Count {
			return c[i].Count > c[j].Count
		}
		return c[i].Label < c[j].Label
	})
}

// Top keeps the n largest counts.
func (d Distribution) Top(n int) Distribution {
	if n < 0 || n >= len(d.Counts) {
		return d
	}
	out := d
	out.Counts = append([]Count(nil), d.Counts[:n]...)
	return out
}

// Ascending returns the counts smallest first, the order a horizontal bar
// chart draws bottom-up.
func (d Distribution) Ascending() Distribution {
	out := d
	out.Counts = make([]Count, len(d.Counts))
	for i, c := range d.Counts {
		out.Counts[len(d.Counts)-1-i] = c
	}
	return out
}

// Max returns the largest count, or 0 for an empty distribution.
func (d Distribution) Max() int {
	m := 0
	for _, c := range d.Counts {
		if c.Count > m {
			m = c.Count
		}
	}
	return m
}

// Share returns the percentage of Total held by c.
func (d Distribution) Share(c Count) float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(c.Count) / float64(d.Total) * 100
}

// Nunique counts the distinct non-empty values of column.
func Nunique(t *dataset.Table, column string) (int, bool) {
	values, ok := t.Column(column)
	if !ok {
		return 0, false
	}
	seen := make(map[string]struct{})
	for _, v := range values {
		if v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen), true
}

// TotalStudents counts distinct (first name, last name) pairs, falling back
// to the row count when either name column is missing.
func TotalStudents(t *dataset.Table) int {
	fi, li := t.Index(ColFirstName), t.Index(ColLastName)
	if fi < 0 || li < 0 {
		return t.Len()
	}
	return len(distinctRows(t, []int{fi, li}))
}

// DedupValueCounts counts column over the rows left after dropping
// duplicates on keys (column included when listed). Key columns that are
// missing are ignored; ok is false only when column itself is missing.
func DedupValueCounts(t *dataset.Table, column string, keys ...string) (Distribution, bool) {
	ci := t.Index(column)
	if ci < 0 {
		return Distribution{Column: column}, false
	}
	idx := make([]int, 0, len(keys))
	for _, k := range keys {
		if i := t.Index(k); i >= 0 {
			idx = append(idx, i)
		}
	}
	rows := distinctRows(t, idx)
	values := make([]string, len(rows))
	for i, row := range rows {
		values[i] = strings.TrimSpace(row[ci])
	}
	return countValues(column, values), true
}

// distinctRows keeps the first row of each distinct key tuple, in table order.
func distinctRows(t *dataset.Table, idx []int) [][]string {
	if len(idx) == 0 {
		return t.Rows
	}
	seen := make(map[string]struct{}, t.Len())
	var out [][]string
	var b strings.Builder
	for _, row := range t.Rows {
		b.Reset()
		for _, i := range idx {
			b.WriteString(strings.TrimSpace(row[i]))
			b.WriteByte(0)
		}
		k := b.String()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, row)
	}
	return out
}
