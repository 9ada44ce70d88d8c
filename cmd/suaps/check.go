// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/atk0906/Projet-SUAPS/internal/validate"
)

// Check-specific flag values.
var (
	checkDash dashboardFlags
	checkJSON bool
)

// checkCmd validates the exports of a data directory.
var checkCmd = &cobra.Command{
	Use:   "check [data-dir]",
	Short: "Check the exports of a data directory before building a dashboard",
	Long: `Check that the semester export and the presence exports exist and can be
read, that the enrollment export has the columns the views need, and that
every presence export has session columns, identity columns and students of
the tracked activity. Status values that look like a misspelled attended
status are reported with a suggestion.

Errors exit with status 1; warnings only mark views that will be empty.`,
	Example: `  suaps check ./exports
  suaps check --semester semester2 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkDash.register(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "write the issues as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, opts, err := checkDash.setup(args, false)
	if err != nil {
		return err
	}
	result := validate.Exports(opts)

	if checkJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return exitError(ExitTotalFailure, "suaps: %v", err)
		}
	} else {
		printIssues(cmd, result)
	}

	if !result.Valid() {
		return exitError(ExitInvalidArgs, "")
	}
	return nil
}

func printIssues(cmd *cobra.Command, result *validate.Result) {
	w := cmd.ErrOrStderr()
	for _, is := range result.Issues {
		sev := color.YellowString(string(is.Severity))
		if is.Severity == validate.SeverityError {
			sev = color.RedString(string(is.Severity))
		}
		_, _ = fmt.Fprintf(w, "%s: %s:", is.File, sev)
		if is.Column != "" {
			_, _ = fmt.Fprintf(w, " %s:", is.Column)
		}
		_, _ = fmt.Fprintf(w, " %s\n", is.Message)
		if is.Suggestion != "" {
			_, _ = fmt.Fprintf(w, "  fix: %s\n", is.Suggestion)
		}
	}

	errs, warns := result.Count(validate.SeverityError), result.Count(validate.SeverityWarning)
	if errs == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d exports, %d warning(s)\n", color.GreenString("valid:"), result.Files, warns)
		return
	}
	_, _ = fmt.Fprintf(w, "\n%d error(s), %d warning(s) found in %d exports\n", errs, warns, result.Files)
}
