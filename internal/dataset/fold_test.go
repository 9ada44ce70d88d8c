// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Prénom", "prenom"},
		{"  Nom   de famille ", "nom de famille"},
		{"Groupement d’activités", "groupement d'activites"},
		{"Type d'inscription", "type d'inscription"},
		{"PRÉSENT", "present"},
		{"En retard", "en retard"},
		{"Cours n°3 - 12/10", "cours n°3 - 12/10"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}
