// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/dataset"
)

func semesterTable() *dataset.Table {
	return dataset.NewTable(
		[]string{"Prénom", "Nom de famille", "Activité", "Enseignant", "Département", "Jour", "Horaires", "Site", "Niveau", "Type"},
		[][]string{
			{"Alice", "Martin", "BASKET - LORIENT", "Le Bihan", "Informatique", "Lundi", "18:00 - 20:00", "LORIENT", "Débutant", "Etudiant"},
			{"Alice", "Martin", "YOGA - VANNES", "Morvan", "Informatique", "Mardi", "12:15 - 13:30", "VANNES", "Tous niveaux", "Etudiant"},
			{"Bruno", "Le Goff", "BASKET - LORIENT", "Le Bihan", "GEA", "Lundi", "18:00 - 20:00", "LORIENT", "Confirmé", "Personnel"},
			{"Chloé", "Durand", "NATATION - VANNES", "Morvan", "GEA", "Jeudi", "08:30 - 10:00", "VANNES", "Débutant", "Etudiant"},
			{"David", "Roux", "BASKET - LORIENT", "Le Bihan", "Chimie", "Lundi", "bientôt", "LORIENT", "", "Etudiant"},
		},
	)
}

func TestValueCounts(t *testing.T) {
	d, ok := ValueCounts(semesterTable(), "Activité")
	require.True(t, ok)
	assert.Equal(t, []Count{
		{Label: "BASKET - LORIENT", Count: 3},
		{Label: "NATATION - VANNES", Count: 1},
		{Label: "YOGA - VANNES", Count: 1},
	}, d.Counts)
	assert.Equal(t, 5, d.Total)
	assert.Equal(t, 3, d.Max())
	assert.InDelta(t, 60.0, d.Share(d.Counts[0]), 1e-9)
}

func TestValueCounts_SkipsEmptyAndMissing(t *testing.T) {
	d, ok := ValueCounts(semesterTable(), "Niveau")
	require.True(t, ok)
	assert.Equal(t, 4, d.Total)

	_, ok = ValueCounts(semesterTable(), "Groupement d’activités")
	assert.False(t, ok)
}

func TestDistribution_TopAndAscending(t *testing.T) {
	d := Distribution{Counts: []Count{{"a", 5}, {"b", 3}, {"c", 1}}, Total: 9}

	top := d.Top(2)
	assert.Equal(t, []Count{{"a", 5}, {"b", 3}}, top.Counts)
	assert.Equal(t, 9, top.Total)
	assert.Len(t, d.Counts, 3, "Top must not alias the receiver")

	assert.Equal(t, d, d.Top(10))
	assert.Equal(t, []Count{{"c", 1}, {"b", 3}, {"a", 5}}, d.Ascending().Counts)
}

func TestTotalStudents(t *testing.T) {
	assert.Equal(t, 4, TotalStudents(semesterTable()))

	noNames := dataset.NewTable([]string{"Activité"}, [][]string{{"a"}, {"a"}})
	assert.Equal(t, 2, TotalStudents(noNames))
}

func TestNunique(t *testing.T) {
	n, ok := Nunique(semesterTable(), "Enseignant")
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestDedupValueCounts(t *testing.T) {
	d, ok := DedupValueCounts(semesterTable(), ColType, ColFirstName, ColLastName, ColType)
	require.True(t, ok)
	assert.Equal(t, []Count{{"Etudiant", 3}, {"Personnel", 1}}, d.Counts)
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
		ok   bool
	}{
		{"08:30 - 10:00", Morning, true},
		{"11:59", Morning, true},
		{"12:00 - 13:00", Afternoon, true},
		{"17h45", Afternoon, true},
		{"18:00 - 20:00", Evening, true},
		{"23:30", Evening, true},
		{"24:00", 0, false},
		{"bientôt", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, ok := ParsePeriod(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, p)
			}
		})
	}
}

func TestPeriodCounts(t *testing.T) {
	d, ok := PeriodCounts(semesterTable())
	require.True(t, ok)
	assert.Equal(t, []Count{{"Morning", 1}, {"Afternoon", 1}, {"Evening", 2}}, d.Counts)
	assert.Equal(t, 4, d.Total)
}

func TestBuildHeatmap(t *testing.T) {
	h, ok := BuildHeatmap(semesterTable())
	require.True(t, ok)
	assert.Equal(t, []string{"Lundi", "Mardi", "Jeudi"}, h.Days)
	assert.Equal(t, []string{"08:30 - 10:00", "12:15 - 13:30", "18:00 - 20:00", "bientôt"}, h.Slots)
	assert.Equal(t, 2, h.Cells[0][2])
	assert.Equal(t, 1, h.Cells[0][3])
	assert.Equal(t, 0, h.Cells[1][0])
	assert.Equal(t, 2, h.Max)
}

func TestCrossCounts(t *testing.T) {
	cells, ok := CrossCounts(semesterTable(), ColDepartment, ColActivity)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: "Chimie", Col: "BASKET - LORIENT", Count: 1}, cells[0])
	assert.Len(t, cells, 5)

	_, ok = CrossCounts(semesterTable(), ColDepartment, "Composante")
	assert.False(t, ok)
}

func TestBuildTreemap(t *testing.T) {
	nodes, ok := BuildTreemap(semesterTable(), 2, 1)
	require.True(t, ok)
	require.Len(t, nodes, 2)
	assert.Equal(t, "GEA", nodes[0].Label)
	assert.Equal(t, 1, nodes[0].Value)
	assert.Equal(t, "Informatique", nodes[1].Label)
	assert.Equal(t, []TreemapNode{{Label: "BASKET - LORIENT", Value: 1}}, nodes[1].Children)
}

func TestBuildOverview(t *testing.T) {
	o := BuildOverview(semesterTable())
	assert.Equal(t, 5, o.Registrations)
	assert.Equal(t, 4, o.Students)
	assert.Equal(t, 3, o.Activities)
	assert.Equal(t, 2, o.Teachers)
	assert.Nil(t, o.Groups)
	assert.NotNil(t, o.Types)
	assert.Equal(t, []string{ColGroup, ColRegistration}, o.Missing)
}

func TestBuildStatistics(t *testing.T) {
	s := BuildStatistics(semesterTable())
	require.NotNil(t, s.Departments)
	assert.Equal(t, "Chimie", s.Departments.Counts[0].Label)
	assert.Equal(t, "GEA", s.Departments.Counts[2].Label)
	require.NotNil(t, s.Sites)
	assert.Empty(t, s.Missing)
}

func TestBuildAdvanced_MissingColumns(t *testing.T) {
	tbl := dataset.NewTable([]string{"Jour", "Enseignant"}, [][]string{{"Lundi", "x"}})
	a := BuildAdvanced(tbl)
	assert.Nil(t, a.Levels)
	assert.Nil(t, a.Heatmap)
	assert.NotNil(t, a.TopTeachers)
	assert.Equal(t, []string{ColLevel, ColSchedule}, a.Missing)
}

func TestBuildStudents(t *testing.T) {
	s := BuildStudents(semesterTable())
	assert.Len(t, s.Cells, 5)
	require.NotNil(t, s.TopDepartments)
	assert.Len(t, s.TopDepartments.Counts, 3)
	assert.NotEmpty(t, s.Treemap)

	empty := BuildStudents(dataset.NewTable([]string{"Activité"}, nil))
	assert.Equal(t, []string{ColDepartment}, empty.Missing)
	assert.Nil(t, empty.Cells)
}
