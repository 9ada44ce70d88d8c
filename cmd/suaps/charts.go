// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/atk0906/Projet-SUAPS/internal/charts"
)

// Charts-specific flag values.
var (
	chartsDash   dashboardFlags
	chartsOutput string
	chartsFormat string
)

// chartsCmd renders the dashboard charts to image files.
var chartsCmd = &cobra.Command{
	Use:   "charts [data-dir]",
	Short: "Render the dashboard charts as PNG or SVG files",
	Long: `Render one bar or donut chart per enrollment distribution and one
presence evolution chart per level into a directory. Charts without data
are skipped.`,
	Example: `  suaps charts ./exports -o charts
  suaps charts --chart-format svg --site LORIENT`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCharts,
}

func init() {
	chartsDash.register(chartsCmd)
	chartsCmd.Flags().StringVarP(&chartsOutput, "output", "o", "charts", "output directory")
	chartsCmd.Flags().StringVar(&chartsFormat, "chart-format", "png", "image format: png or svg")
}

func runCharts(cmd *cobra.Command, args []string) error {
	format, err := charts.ParseFormat(chartsFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "suaps: %v", err)
	}
	_, opts, err := chartsDash.setup(args, false)
	if err != nil {
		return err
	}
	d, err := build(cmd, opts)
	if err != nil {
		return err
	}

	written, err := charts.WriteAll(d, chartsOutput, format)
	for _, path := range written {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if err != nil {
		return exitError(ExitTotalFailure, "suaps: %v", err)
	}
	slog.Info("charts written", "count", len(written), "dir", chartsOutput)

	if d.Partial() {
		return exitError(ExitPartialFailure, "")
	}
	return nil
}
