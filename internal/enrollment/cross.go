// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package enrollment

import (
	"sort"
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

// Cell is the number of rows with a given pair of values.
type Cell struct {
	Row   string `json:"row"`
	Col   string `json:"col"`
	Count int    `json:"count"`
}

// CrossCounts is the group size of every (rowColumn, colColumn) pair present
// in the table, ordered by row then column label. Rows with an empty value in
// either column are skipped.
func CrossCounts(t *dataset.Table, rowColumn, colColumn string) ([]Cell, bool) {
	ri, ci := t.Index(rowColumn), t.Index(colColumn)
	if ri < 0 || ci < 0 {
		return nil, false
	}
	type key struct{ r, c string }
	counts := make(map[key]int)
	for _, row := range t.Rows {
		k := key{strings.TrimSpace(row[ri]), strings.TrimSpace(row[ci])}
		if k.r == "" || k.c == "" {
			continue
		}
		counts[k]++
	}
	out := make([]Cell, 0, len(counts))
	for k, n := range counts {
		out = append(out, Cell{Row: k.r, Col: k.c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out, true
}

// TreemapNode is a department with its activities as children.
type TreemapNode struct {
	Label    string        `json:"label"`
	Value    int           `json:"value"`
	Children []TreemapNode `json:"children,omitempty"`
}

// BuildTreemap nests activity counts under departments, restricted to the
// topDepartments largest departments and topActivities largest activities.
// Departments are ordered by value descending, children likewise.
func BuildTreemap(t *dataset.Table, topDepartments, topActivities int) ([]TreemapNode, bool) {
	depts, ok := ValueCounts(t, ColDepartment)
	if !ok {
		return nil, false
	}
	acts, ok := ValueCounts(t, ColActivity)
	if !ok {
		return nil, false
	}
	keepDept := labelSet(depts.Top(topDepartments))
	keepAct := labelSet(acts.Top(topActivities))

	cells, _ := CrossCounts(t, ColDepartment, ColActivity)
	byDept := make(map[string]*TreemapNode)
	var order []string
	for _, c := range cells {
		if !keepDept[c.Row] || !keepAct[c.Col] {
			continue
		}
		n, ok := byDept[c.Row]
		if !ok {
			n = &TreemapNode{Label: c.Row}
			byDept[c.Row] = n
			order = append(order, c.Row)
		}
		n.Children = append(n.Children, TreemapNode{Label: c.Col, Value: c.Count})
		n.Value += c.Count
	}

	out := make([]TreemapNode, 0, len(order))
	for _, d := range order {
		n := byDept[d]
		sort.SliceStable(n.Children, func(i, j int) bool { return n.Children[i].Value > n.Children[j].Value })
		out = append(out, *n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out, true
}

func labelSet(d Distribution) map[string]bool {
	s := make(map[string]bool, len(d.Counts))
	for _, c := range d.Counts {
		s[c.Label] = true
	}
	return s
}
