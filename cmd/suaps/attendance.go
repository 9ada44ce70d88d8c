// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/redact"
	"github.com/atk0906/Projet-SUAPS/internal/report"
)

// Attendance-specific flag values.
var (
	attDash      dashboardFlags
	attLevel     string
	attSession   string
	attJSON      bool
	attAnonymize bool
)

// attendanceCmd prints the per-session attendance of the tracked activity.
var attendanceCmd = &cobra.Command{
	Use:   "attendance [data-dir]",
	Short: "Show per-session attendance of the tracked activity",
	Long: `Print, for every level (or the one named by --level), how many students
attended each course session, the participation rate and its average.
With --session, also list the students who attended that session.`,
	Example: `  suaps attendance ./exports
  suaps attendance --level confirmed --session 3
  suaps attendance --level beginner --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAttendance,
}

func init() {
	attDash.register(attendanceCmd)
	attendanceCmd.Flags().StringVar(&attLevel, "level", "", "only show this level")
	attendanceCmd.Flags().StringVar(&attSession, "session", "", "list the participants of one session (label, column or number)")
	attendanceCmd.Flags().BoolVar(&attJSON, "json", false, "write JSON instead of tables")
	attendanceCmd.Flags().BoolVar(&attAnonymize, "anonymize", false, "mask student e-mail addresses")
}

func runAttendance(cmd *cobra.Command, args []string) error {
	_, opts, err := attDash.setup(args, false)
	if err != nil {
		return err
	}
	d, err := build(cmd, opts)
	if err != nil {
		return err
	}
	if attAnonymize {
		d.Anonymize(redact.MaskEmail)
	}

	levels := d.Attendance
	if attLevel != "" {
		la, ok := d.Level(attLevel)
		if !ok {
			return exitError(ExitInvalidArgs, "suaps: unknown level %q (available: %s)",
				attLevel, strings.Join(d.LevelNames(), ", "))
		}
		levels = []*dashboard.LevelAttendance{la}
	}

	w := cmd.OutOrStdout()
	if attJSON {
		err = writeAttendanceJSON(w, levels)
	} else {
		err = writeAttendanceText(w, d.Activity, levels)
	}
	if err != nil {
		return err
	}

	for _, la := range levels {
		if !la.Available {
			return exitError(ExitPartialFailure, "")
		}
	}
	return nil
}

func writeAttendanceText(w io.Writer, activity string, levels []*dashboard.LevelAttendance) error {
	for _, la := range levels {
		if !la.Available {
			_, _ = fmt.Fprintf(w, "%s\n  Presence export unavailable: %s\n\n",
				report.SectionTitle(fmt.Sprintf("Attendance: %s (%s)", activity, la.Level)), la.Error)
			continue
		}
		if err := report.RenderLevel(w, activity, la); err != nil {
			return exitError(ExitTotalFailure, "suaps: rendering failed (%v)", err)
		}
		if attSession == "" {
			continue
		}
		list, ok := la.Session(attSession)
		if !ok {
			_, _ = fmt.Fprintf(w, "  No participants: session %q not found for level %s.\n\n", attSession, la.Level)
			continue
		}
		if err := report.RenderParticipants(w, list); err != nil {
			return exitError(ExitTotalFailure, "suaps: rendering failed (%v)", err)
		}
	}
	return nil
}

func writeAttendanceJSON(w io.Writer, levels []*dashboard.LevelAttendance) error {
	var v any = levels
	if attSession != "" {
		lists := make(map[string]any, len(levels))
		for _, la := range levels {
			if !la.Available {
				continue
			}
			// A level without the session encodes as null.
			list, ok := la.Session(attSession)
			if !ok {
				lists[la.Level] = nil
				continue
			}
			lists[la.Level] = list
		}
		v = lists
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return exitError(ExitTotalFailure, "suaps: rendering failed (%v)", err)
	}
	return nil
}
