// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package dashboardtest writes small export fixtures for tests of the
// packages that consume a dashboard.
package dashboardtest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
)

// Semester1 is a semester export with two sites.
const Semester1 = `Prénom,Nom de famille,Activité,Enseignant,Groupement d’activités,Type d’inscription,Type,Département,Jour,Horaires,Site,Niveau
Alice,Martin,BASKET - LORIENT,Le Bihan,Sports collectifs,Libre,Etudiant,Informatique,Lundi,18:00 - 20:00,LORIENT,Débutant
Alice,Martin,YOGA - VANNES,Morvan,Bien-être,Libre,Etudiant,Informatique,Mardi,12:15 - 13:30,VANNES,Tous niveaux
Bruno,Le Goff,BASKET - LORIENT,Le Bihan,Sports collectifs,Evalué,Personnel,GEA,Lundi,18:00 - 20:00,LORIENT,Confirmé
Chloé,Durand,NATATION - VANNES,Morvan,Sports aquatiques,Libre,Etudiant,GEA,Jeudi,08:30 - 10:00,VANNES,Débutant
David,Roux,BASKET - LORIENT,Le Bihan,Sports collectifs,Evalué,Etudiant,Chimie,Lundi,18:00 - 20:00,LORIENT,Confirmé
`

// Beginner is the beginner presence export.
const Beginner = `Prénom;Nom de famille;Adresse de courriel;Sexe;Activité;Cours n°2 - 19/09;Cours n°10 - 28/11;Cours n°1 - 12/09
Alice;Martin;alice.martin@univ.fr;F;BASKET - LORIENT;Présent;Absent;Présent
Bruno;Le Goff;bruno.legoff@univ.fr;M;BASKET - LORIENT;En retard;Présent;Late
Chloé;Durand;chloe.durand@univ.fr;F;BASKET - LORIENT;Absent;Absent;Absent
David;Roux;david.roux@univ.fr;M;BASKET - LORIENT;Présent;Présent;Présent
Eva;Le Gall;eva.legall@univ.fr;F;BASKET - VANNES;Présent;Présent;Présent
`

// Confirmed is the confirmed presence export.
const Confirmed = `Prénom,Nom de famille,Adresse de courriel,Sexe,Activité,Cours n°1 - 12/09
Fanny,Le Roy,fanny.leroy@univ.fr,F,BASKET - LORIENT,Présent
Gaël,Tanguy,gael.tanguy@univ.fr,M,BASKET - LORIENT,Absent
`

// WriteDataDir writes the semester1 and both presence exports into a new
// temporary directory and returns it.
func WriteDataDir(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"fixed_ses1.csv":               Semester1,
		"presence_basket_debutant.csv": Beginner,
		"presence_basket_confirme.csv": Confirmed,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

// Build builds the dashboard of a fresh fixture directory without
// recording history.
func Build(t testing.TB) *dashboard.Dashboard {
	t.Helper()
	d, err := dashboard.Build(context.Background(), dashboard.DefaultOptions(WriteDataDir(t)))
	require.NoError(t, err)
	return d
}
