// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package state persists the attendance history of a data directory so
// successive reports can show whether participation is improving.
//
// History lives in <data-dir>/.suaps/attendance-history.json.
package state

import (
	"path/filepath"

	"github.com/atk0906/Projet-SUAPS/internal/testable"
)

// stateDir is the directory name within a data directory where state is stored.
const stateDir = ".suaps"

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Dir returns the state directory of dataDir.
func Dir(dataDir string) string {
	return filepath.Join(dataDir, stateDir)
}
