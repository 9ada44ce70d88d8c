// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

var presenceHeader = []string{
	"Prénom", "Nom de famille", "Adresse de courriel", "Sexe", "Activité",
	"Cours n°1 - 12/09/2025",
}

func basketRoster(t *testing.T) *Roster {
	t.Helper()
	tbl := dataset.NewTable(presenceHeader, [][]string{
		{"Alice", "Martin", "alice@univ.fr", "F", "BASKET - LORIENT", "Présent"},
		{"Bruno", "Le Goff", "bruno@univ.fr", "M", "BASKET - LORIENT", "En retard"},
		{"Chloé", "Durand", "chloe@univ.fr", "F", "BASKET - LORIENT", "Absent"},
		{"David", "Roux", "david@univ.fr", "M", "BASKET - LORIENT", "Présent"},
	})
	return NewRoster(tbl, "")
}

func TestSummarize_Scenario(t *testing.T) {
	got := Summarize(basketRoster(t), nil)

	require.Len(t, got, 1)
	assert.Equal(t, "Course 1", got[0].Session)
	assert.Equal(t, 3, got[0].Attended)
	assert.Equal(t, 4, got[0].Total)
	assert.Equal(t, Rate{Value: 75.0, Defined: true}, got[0].Rate)
}

func TestSummarize_NoSessionColumns(t *testing.T) {
	tbl := dataset.NewTable([]string{"Prénom", "Nom de famille"}, [][]string{
		{"Alice", "Martin"},
		{"Bruno", "Le Goff"},
	})

	got := Summarize(NewRoster(tbl, ""), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarize_EmptyRoster(t *testing.T) {
	tbl := dataset.NewTable([]string{"Prénom", "Cours n°1 x", "Cours n°2 y"}, nil)

	got := Summarize(NewRoster(tbl, ""), nil)
	require.Len(t, got, 2)
	for _, s := range got {
		assert.Equal(t, 0, s.Attended)
		assert.False(t, s.Rate.Defined)
		assert.Equal(t, "N/A", s.Rate.String())
	}
	assert.False(t, AverageRate(got).Defined)
}

func TestSummarize_NumericOrdering(t *testing.T) {
	tbl := dataset.NewTable(
		[]string{"Prénom", "Cours n°2 - b", "Cours n°10 - c", "Cours n°1 - a"},
		[][]string{{"Alice", "Présent", "Absent", "Présent"}},
	)

	got := Summarize(NewRoster(tbl, ""), nil)
	labels := make([]string, len(got))
	for i, s := range got {
		labels[i] = s.Session
	}
	assert.Equal(t, []string{"Course 1", "Course 2", "Course 10"}, labels)
}

func TestSummarize_Deterministic(t *testing.T) {
	r := basketRoster(t)
	assert.Equal(t, Summarize(r, nil), Summarize(r, nil))
}

func TestSummarize_AttendedWithinBounds(t *testing.T) {
	tbl := dataset.NewTable(
		[]string{"Prénom", "Cours n°1", "Cours n°2", "Cours n°3"},
		[][]string{
			{"a", "Présent", "", "retard"},
			{"b", "PRESENT", "Excusé", "Late"},
			{"c", "present", "?", "En Retard"},
		},
	)
	for _, s := range Summarize(NewRoster(tbl, ""), nil) {
		assert.GreaterOrEqual(t, s.Attended, 0)
		assert.LessOrEqual(t, s.Attended, s.Total)
		assert.GreaterOrEqual(t, s.Rate.Value, 0.0)
		assert.LessOrEqual(t, s.Rate.Value, 100.0)
	}
}

func TestSummarize_CustomVocabulary(t *testing.T) {
	v := NewVocabulary(map[Status][]string{Present: {"P"}}, Present)
	tbl := dataset.NewTable([]string{"Cours n°1"}, [][]string{{"P"}, {"En retard"}, {"Présent"}})

	got := Summarize(NewRoster(tbl, ""), v)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Attended)
	assert.InDelta(t, 66.67, got[0].Rate.Value, 1e-9)
}

func TestSummarize_LabelPrefix(t *testing.T) {
	tbl := dataset.NewTable([]string{"Cours n°4"}, [][]string{{"Présent"}})
	got := Summarize(NewRoster(tbl, "Cours"), nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Cours 4", got[0].Session)
}

func TestAverageRate(t *testing.T) {
	summaries := []Summary{
		{Rate: Rate{Value: 75, Defined: true}},
		{Rate: Rate{Value: 50, Defined: true}},
		{Rate: Rate{Value: 33.33, Defined: true}},
	}
	avg := AverageRate(summaries)
	require.True(t, avg.Defined)
	assert.InDelta(t, (75+50+33.33)/3, avg.Value, 1e-9)

	assert.False(t, AverageRate(nil).Defined)
}

func TestAverageRate_NotRounded(t *testing.T) {
	avg := AverageRate([]Summary{
		{Rate: Rate{Value: 33.33, Defined: true}},
		{Rate: Rate{Value: 33.33, Defined: true}},
		{Rate: Rate{Value: 33.34, Defined: true}},
		{Rate: Rate{Value: 0.01, Defined: true}},
	})
	require.True(t, avg.Defined)
	assert.InDelta(t, 25.0025, avg.Value, 1e-9)
	assert.Equal(t, "25.00%", avg.String())
}

func TestAverageRate_SkipsUndefined(t *testing.T) {
	avg := AverageRate([]Summary{
		{Rate: Rate{Value: 80, Defined: true}},
		{Rate: Undefined},
	})
	assert.Equal(t, Rate{Value: 80, Defined: true}, avg)
}

func TestNewRate(t *testing.T) {
	assert.Equal(t, Rate{Value: 33.33, Defined: true}, NewRate(1, 3))
	assert.Equal(t, Rate{Value: 100, Defined: true}, NewRate(2, 2))
	assert.Equal(t, Undefined, NewRate(0, 0))
	assert.Equal(t, "33.33%", NewRate(1, 3).String())
}

func TestRate_JSON(t *testing.T) {
	data, err := json.Marshal(Summary{Session: "Course 1", Rate: Undefined})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rate":null`)

	var s Summary
	require.NoError(t, json.Unmarshal([]byte(`{"rate":12.5}`), &s))
	assert.Equal(t, Rate{Value: 12.5, Defined: true}, s.Rate)

	require.NoError(t, json.Unmarshal([]byte(`{"rate":null}`), &s))
	assert.False(t, s.Rate.Defined)
}
