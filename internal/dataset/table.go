// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package dataset loads the tabular exports of the sports service (CSV or
// XLSX) into an in-memory Table of raw string cells.
package dataset

import "strings"

// Table is a header plus rows of raw cells. Every row has exactly
// len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a Table, trimming header names, stripping a UTF-8 byte
// order mark from the first header and padding or truncating ragged rows.
func NewTable(header []string, rows [][]string) *Table {
	h := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		h[i] = strings.TrimSpace(name)
	}

	normalized := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		r := make([]string, len(h))
		copy(r, row)
		normalized = append(normalized, r)
	}

	t := &Table{Header: h, Rows: normalized}
	t.buildIndex()
	return t
}

func (t *Table) buildIndex() {
	t.index = make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		key := Fold(name)
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of the named column, comparing folded names,
// or -1 when the table has no such column. The first of duplicate headers wins.
func (t *Table) Index(name string) int {
	if t.index == nil {
		t.buildIndex()
	}
	if i, ok := t.index[Fold(name)]; ok {
		return i
	}
	return -1
}

// IndexAny returns the position of the first present column among names.
func (t *Table) IndexAny(names ...string) int {
	for _, n := range names {
		if i := t.Index(n); i >= 0 {
			return i
		}
	}
	return -1
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Column returns the trimmed values of the named column.
func (t *Table) Column(name string) ([]string, bool) {
	i := t.Index(name)
	if i < 0 {
		return nil, false
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = strings.TrimSpace(row[i])
	}
	return out, true
}

// Filter returns a table sharing t's header with the rows for which keep
// returns true.
func (t *Table) Filter(keep func(row []string) bool) *Table {
	out := &Table{Header: t.Header, index: t.index}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// FilterEquals keeps the rows whose column equals value after folding.
// The table is returned unchanged when the column does not exist.
func (t *Table) FilterEquals(column, value string) *Table {
	i := t.Index(column)
	if i < 0 {
		return t
	}
	want := Fold(value)
	return t.Filter(func(row []string) bool {
		return Fold(row[i]) == want
	})
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
