// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package report provides a pluggable section registry for the text report.
// Each section reads one part of a built dashboard and renders a focused
// terminal view of it.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
)

// ErrSectionUnavailable indicates the data a section needs is missing,
// typically because the export lacks the columns it reads.
var ErrSectionUnavailable = errors.New("section data not available")

// Section is a pluggable report section that analyzes a dashboard and
// renders a focused report segment.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "attendance").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Analyze reads the dashboard and prepares internal state for rendering.
	// Returns ErrSectionUnavailable (wrapped) if the data it needs is missing.
	Analyze(d *dashboard.Dashboard) error

	// Render writes the section output to w.
	Render(w io.Writer) error
}

// Options narrow what sections show.
type Options struct {
	// Level limits attendance output to one level.
	Level string
	// Session additionally lists the participants of one session.
	Session string
}

// Configurable is implemented by sections that honor Options.
type Configurable interface {
	Configure(opts Options)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

func init() {
	for _, s := range builtinSections() {
		Register(s)
	}
}

// builtinSections returns fresh instances of the built-in sections in
// display order.
func builtinSections() []Section {
	return []Section{
		&overviewSection{},
		&statisticsSection{},
		&advancedSection{},
		&attendanceSection{},
		&studentsSection{},
		&trendsSection{},
	}
}

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}
