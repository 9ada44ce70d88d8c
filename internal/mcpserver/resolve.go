// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the dashboard views as read-only tools over stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atk0906/Projet-SUAPS/internal/config"
)

// PathInfo holds the resolved location of a data directory.
type PathInfo struct {
	// AbsPath is the absolute, symlink-resolved path.
	AbsPath string
	// Root is the nearest ancestor (or AbsPath itself) holding a project
	// config file. It equals AbsPath when no config file is found.
	Root string
}

// ResolvePath resolves a data directory to an absolute path and finds the
// project root holding its config. It returns an error if the path does
// not exist or is not a directory.
func ResolvePath(path string) (*PathInfo, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", path)
	}

	// Walk up to the first directory with a config file.
	root := absPath
	for config.Path(root) == "" {
		parent := filepath.Dir(root)
		if parent == root {
			root = absPath
			break
		}
		root = parent
	}

	return &PathInfo{
		AbsPath: absPath,
		Root:    root,
	}, nil
}
