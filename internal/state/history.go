// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
)

// historyFile is the filename for attendance history.
const historyFile = "attendance-history.json"

// historySchemaVersion is the current history file schema version.
const historySchemaVersion = "1"

// maxHistoryEntries is the FIFO cap for history entries.
const maxHistoryEntries = 100

// HistoryEntry captures the attendance of one level in one report run.
type HistoryEntry struct {
	RunID     string                     `json:"run_id"`
	Timestamp time.Time                  `json:"timestamp"`
	Semester  string                     `json:"semester"`
	Site      string                     `json:"site,omitempty"`
	Level     string                     `json:"level"`
	Students  int                        `json:"students"`
	Average   attendance.Rate            `json:"average_rate"`
	Sessions  map[string]attendance.Rate `json:"session_rates"`
}

// History stores a time-series of attendance entries.
type History struct {
	Version string         `json:"version"`
	Entries []HistoryEntry `json:"entries"`
}

// LoadHistory reads the history of dataDir. If the file does not exist, it
// returns (nil, nil).
func LoadHistory(dataDir string) (*History, error) {
	data, err := FS.ReadFile(historyPath(dataDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parse %s: %w", historyFile, err)
	}
	return &h, nil
}

// SaveHistory writes the history of dataDir, creating the .suaps directory
// if it does not exist.
func SaveHistory(dataDir string, h *History) error {
	dir := Dir(dataDir)
	if err := FS.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}

	if err := FS.WriteFile(filepath.Join(dir, historyFile), data, 0o644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

// AppendEntry adds entries to the history and enforces the FIFO cap.
func AppendEntry(h *History, entries ...HistoryEntry) *History {
	if h == nil {
		h = &History{}
	}
	h.Version = historySchemaVersion
	h.Entries = append(h.Entries, entries...)
	if len(h.Entries) > maxHistoryEntries {
		h.Entries = h.Entries[len(h.Entries)-maxHistoryEntries:]
	}
	return h
}

// NewEntry builds a history entry for one level. A random run id is assigned
// when runID is empty.
func NewEntry(runID, semester, site, level string, students int, summaries []attendance.Summary) HistoryEntry {
	if runID == "" {
		runID = uuid.NewString()
	}
	sessions := make(map[string]attendance.Rate, len(summaries))
	for _, s := range summaries {
		sessions[s.Session] = s.Rate
	}
	return HistoryEntry{
		RunID:     runID,
		Timestamp: time.Now().UTC(),
		Semester:  semester,
		Site:      site,
		Level:     level,
		Students:  students,
		Average:   attendance.AverageRate(summaries),
		Sessions:  sessions,
	}
}

// historyPath returns the full path to the history file.
func historyPath(dataDir string) string {
	return filepath.Join(Dir(dataDir), historyFile)
}

// Levels returns the sorted distinct levels recorded in h.
func (h *History) Levels() []string {
	if h == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, e := range h.Entries {
		seen[e.Level] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
