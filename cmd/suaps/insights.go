// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/atk0906/Projet-SUAPS/internal/llm"
	"github.com/atk0906/Projet-SUAPS/internal/narrate"
)

// newProvider builds the LLM provider; tests swap in a mock.
var newProvider = narrate.NewProvider

// Insights-specific flag values.
var (
	insightsDash      dashboardFlags
	insightsModel     string
	insightsLanguage  string
	insightsMaxTokens int
)

// insightsCmd asks a language model to comment on the dashboard.
var insightsCmd = &cobra.Command{
	Use:   "insights [data-dir]",
	Short: "Write a short commentary of the dashboard with an LLM",
	Long: `Send the headline figures of the dashboard (counts, top activities,
per-session attendance and trends) to the Anthropic API and print a short
commentary. Student names and e-mail addresses are never sent.

Requires ANTHROPIC_API_KEY (read from the environment or a .env file) and
fails when llm.disabled is set in the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInsights,
}

func init() {
	insightsDash.register(insightsCmd)
	insightsCmd.Flags().StringVar(&insightsModel, "model", "", "model to use (default: llm.model from config)")
	insightsCmd.Flags().StringVar(&insightsLanguage, "language", "", "language of the commentary (default English)")
	insightsCmd.Flags().IntVar(&insightsMaxTokens, "max-tokens", 0, "maximum length of the answer in tokens")
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, opts, err := insightsDash.setup(args, false)
	if err != nil {
		return err
	}
	llmCfg := cfg.LLM
	if insightsModel != "" {
		llmCfg.Model = insightsModel
	}
	provider, err := newProvider(llmCfg)
	if err != nil {
		if errors.Is(err, narrate.ErrDisabled) || errors.Is(err, llm.ErrNoAPIKey) {
			return exitError(ExitInvalidArgs, "suaps: %v", err)
		}
		return exitError(ExitTotalFailure, "suaps: %v", err)
	}

	d, err := build(cmd, opts)
	if err != nil {
		return err
	}

	insight, err := narrate.Summarize(cmd.Context(), provider, d, narrate.Options{
		MaxTokens: insightsMaxTokens,
		Language:  insightsLanguage,
	})
	if err != nil {
		return exitError(ExitTotalFailure, "suaps: %v", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), insight.Text)
	slog.Debug("insights complete", "model", insight.Model, "tokens", insight.Usage.Total())
	return nil
}
