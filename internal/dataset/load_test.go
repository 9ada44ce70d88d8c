// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/atk0906/Projet-SUAPS/internal/testable"
)

func TestReadCSV_Comma(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("Prénom,Site\nAlice,VANNES\nBob,LORIENT\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Prénom", "Site"}, tbl.Header)
	assert.Equal(t, 2, tbl.Len())
}

func TestReadCSV_SemicolonSniffed(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("Prénom;Horaires\nAlice;12:00, 13:30\n"))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "12:00, 13:30", tbl.Rows[0][1])
}

func TestReadCSV_RaggedRows(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b,c\n1,2\n1,2,3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, tbl.Rows[1])
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("  \n"))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Prénom", "Cours n°1"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Alice", "Présent"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tbl, err := ReadXLSX(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Prénom", "Cours n°1"}, tbl.Header)
	assert.Equal(t, [][]string{{"Alice", "Présent"}}, tbl.Rows)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixed_ses1.csv")
	require.NoError(t, os.WriteFile(path, []byte("Activité\nBASKET - LORIENT\n"), 0o600))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestLoadFile_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFile_ReadError(t *testing.T) {
	old := FS
	defer func() { FS = old }()
	FS = &testable.MockFileSystem{
		ReadFileFn: func(string) ([]byte, error) { return nil, errors.New("disk gone") },
	}

	_, err := LoadFile("x.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}
