// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/atk0906/Projet-SUAPS/internal/testable"
)

var (
	// ErrEmptyFile indicates a data file without even a header row.
	ErrEmptyFile = errors.New("empty file")

	// ErrUnsupportedFormat indicates a data file whose extension is neither
	// CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported data format")
)

// FS is the file system used to read data files. Tests may replace it.
var FS testable.FileSystem = testable.DefaultFS

// LoadFile reads a CSV (.csv, .txt) or Excel (.xlsx) export into a Table.
func LoadFile(path string) (*Table, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var t *Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		t, err = ReadCSV(bytes.NewReader(data))
	case ".xlsx":
		t, err = ReadXLSX(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses comma- or semicolon-separated data. The delimiter is the
// one that occurs most often in the header line.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	return NewTable(records[0], records[1:]), nil
}

// ReadXLSX reads the first worksheet of an Excel workbook.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx: no worksheet found")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return NewTable(rows[0], rows[1:]), nil
}

func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
