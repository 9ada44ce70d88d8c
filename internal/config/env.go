// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFileName is the dotenv file read from the data and working directories.
const EnvFileName = ".env"

// Environment variables read by suaps.
const (
	EnvAPIKey = "ANTHROPIC_API_KEY"
	EnvAddr   = "SUAPS_ADDR"
)

// LoadEnv loads the .env file of each directory into the process
// environment. Variables already set are never overridden, so earlier
// directories win. Missing files are ignored.
func LoadEnv(dirs ...string) error {
	for _, dir := range dirs {
		path := filepath.Join(dir, EnvFileName)
		err := godotenv.Load(path)
		if err == nil {
			slog.Debug("loaded env file", "path", path)
			continue
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
