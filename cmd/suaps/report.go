// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atk0906/Projet-SUAPS/internal/output"
	"github.com/atk0906/Projet-SUAPS/internal/redact"
	"github.com/atk0906/Projet-SUAPS/internal/report"
)

// Report-specific flag values.
var (
	reportDash      dashboardFlags
	reportFormat    string
	reportSections  string
	reportLevel     string
	reportSession   string
	reportOutput    string
	reportAnonymize bool
	reportNoHistory bool
)

// reportCmd builds the dashboard and writes it in one format.
var reportCmd = &cobra.Command{
	Use:   "report [data-dir]",
	Short: "Generate the enrollment and attendance dashboard",
	Long: `Read the semester enrollment export and the presence sheets of a data
directory and write the dashboard: overview, statistics, advanced views,
per-level attendance, students and trends.

Each run is appended to the attendance history of the data directory
(.suaps/attendance-history.json) unless --no-history is set or
history.enabled is false. The exit code is 2 when some presence export
could not be read; the dashboard is still written.`,
	Example: `  suaps report ./exports
  suaps report ./exports --format html -o dashboard.html
  suaps report --semester semester2 --site VANNES --sections overview,statistics
  suaps report --level beginner --session "Course 3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportDash.register(reportCmd)
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format: "+strings.Join(output.Names(), ", ")+" (default text)")
	reportCmd.Flags().StringVar(&reportSections, "sections", "", "comma-separated list of report sections to include")
	reportCmd.Flags().StringVar(&reportLevel, "level", "", "limit attendance to one level")
	reportCmd.Flags().StringVar(&reportSession, "session", "", "list the participants of one session (label, column or number)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
	reportCmd.Flags().BoolVar(&reportAnonymize, "anonymize", false, "mask student e-mail addresses")
	reportCmd.Flags().BoolVar(&reportNoHistory, "no-history", false, "do not record this run in the attendance history")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, opts, err := reportDash.setup(args, !reportNoHistory)
	if err != nil {
		return err
	}

	format := firstNonEmpty(reportFormat, cfg.OutputFormat, "text")
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return exitError(ExitInvalidArgs, "suaps: %v", err)
	}

	sections := splitList(reportSections)
	if unknown := report.UnknownSections(sections); len(unknown) > 0 {
		return exitError(ExitInvalidArgs, "suaps: unknown sections: %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(report.List(), ", "))
	}

	d, err := build(cmd, opts)
	if err != nil {
		return err
	}
	if reportLevel != "" {
		if _, ok := d.Level(reportLevel); !ok {
			return exitError(ExitInvalidArgs, "suaps: unknown level %q (available: %s)",
				reportLevel, strings.Join(d.LevelNames(), ", "))
		}
	}
	if reportAnonymize {
		d.Anonymize(redact.MaskEmail)
	}

	w, closeOut, err := openOutput(cmd, reportOutput)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck // best-effort close on output file

	outOpts := output.Options{
		Sections: sections,
		Report:   report.Options{Level: reportLevel, Session: reportSession},
	}
	if err := formatter.Format(d, outOpts, w); err != nil {
		return exitError(ExitTotalFailure, "suaps: rendering failed (%v)", err)
	}

	slog.Info("report complete", "run_id", d.RunID, "format", format, "duration", d.Duration)
	if d.Partial() {
		return exitError(ExitPartialFailure, "")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
