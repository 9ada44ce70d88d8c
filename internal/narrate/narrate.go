// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package narrate asks a language model for a short written commentary of a
// built dashboard: who enrolls, in what, and how attendance evolves.
package narrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atk0906/Projet-SUAPS/internal/config"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard"
	"github.com/atk0906/Projet-SUAPS/internal/enrollment"
	"github.com/atk0906/Projet-SUAPS/internal/llm"
)

// ErrDisabled is returned when llm.disabled is set in the configuration.
var ErrDisabled = errors.New("narrate: LLM commentary disabled by configuration (llm.disabled)")

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("narrate: empty response from model")

const systemPrompt = "You write short, factual commentaries for the staff of a university sports service. " +
	"Use only the figures you are given. Do not invent numbers or names."

// topN bounds every distribution listed in the prompt.
const topN = 5

// Options tune a commentary request.
type Options struct {
	// Model overrides the provider default.
	Model string
	// MaxTokens caps the answer; zero uses the provider default.
	MaxTokens int
	// Language is the language of the answer; empty means English.
	Language string
}

// Insight is a generated commentary.
type Insight struct {
	Text  string    `json:"text"`
	Model string    `json:"model"`
	Usage llm.Usage `json:"usage"`
}

// NewProvider returns the provider configured by cfg. It fails with
// ErrDisabled when commentary is turned off and with llm.ErrNoAPIKey when no
// key is available.
func NewProvider(cfg config.LLMConfig) (llm.Provider, error) {
	if cfg.Disabled {
		return nil, ErrDisabled
	}
	return llm.NewAnthropicProvider(llm.WithModel(cfg.Model))
}

// Summarize sends the figures of d to provider and returns its commentary.
func Summarize(ctx context.Context, provider llm.Provider, d *dashboard.Dashboard, opts Options) (*Insight, error) {
	prompt := BuildPrompt(d, opts.Language)
	slog.Debug("requesting commentary", "run_id", d.RunID, "prompt_bytes", len(prompt))

	resp, err := provider.Complete(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    prompt,
		Model:     opts.Model,
		MaxTokens: opts.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("narrate: %w", err)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	slog.Debug("commentary received", "model", resp.Model, "tokens", resp.Usage.Total())
	return &Insight{Text: text, Model: resp.Model, Usage: resp.Usage}, nil
}

// BuildPrompt lists the headline figures of d: enrollment counts, the top
// activities, sites and departments, and the attendance of every level.
// Student names and e-mail addresses are never included.
func BuildPrompt(d *dashboard.Dashboard, language string) string {
	var b strings.Builder

	scope := "all sites"
	if d.Site != "" {
		scope = "site " + d.Site
	}
	fmt.Fprintf(&b, "Enrollment export of %s, %s.\n\n", d.Semester, scope)

	ov := d.Overview
	b.WriteString("ENROLLMENT\n")
	fmt.Fprintf(&b, "- Registrations: %d\n", ov.Registrations)
	fmt.Fprintf(&b, "- Distinct students: %d\n", ov.Students)
	fmt.Fprintf(&b, "- Activities: %d\n", ov.Activities)
	fmt.Fprintf(&b, "- Teachers: %d\n", ov.Teachers)
	writeDist(&b, "Registration types", ov.Registration)
	writeDist(&b, "Top activities", d.Statistics.TopActivities)
	writeDist(&b, "Sites", d.Statistics.Sites)
	writeDist(&b, "Days", d.Statistics.Days)
	writeDist(&b, "Departments", d.Statistics.Departments)

	fmt.Fprintf(&b, "\nATTENDANCE OF %s\n", d.Activity)
	for _, la := range d.Attendance {
		if !la.Available {
			fmt.Fprintf(&b, "- Level %s: no data\n", la.Level)
			continue
		}
		fmt.Fprintf(&b, "- Level %s: %d students, average participation %s\n", la.Level, la.Students, la.Average)
		for _, s := range la.Summaries {
			fmt.Fprintf(&b, "  - %s: %d/%d (%s)\n", s.Session, s.Attended, s.Total, s.Rate)
		}
	}

	if d.Trends != nil && len(d.Trends.Lines) > 0 {
		b.WriteString("\nTRENDS OVER RECENT REPORTS\n")
		for _, line := range d.Trends.Lines {
			fmt.Fprintf(&b, "- Level %s: %s (%s -> %s, %+.2f points)\n",
				line.Level, line.Direction, line.Previous, line.Current, line.Delta)
		}
	}

	if language == "" {
		language = "English"
	}
	fmt.Fprintf(&b, "\nWrite a commentary of at most 5 sentences in %s. ", language)
	b.WriteString("Highlight the most popular activities, sessions with low participation, and any trend. ")
	b.WriteString("Answer in plain text without markdown.\n")
	return b.String()
}

func writeDist(b *strings.Builder, title string, d *enrollment.Distribution) {
	if d == nil || len(d.Counts) == 0 {
		return
	}
	top := d.Top(topN)
	parts := make([]string, len(top.Counts))
	for i, c := range top.Counts {
		parts[i] = fmt.Sprintf("%s (%d)", c.Label, c.Count)
	}
	fmt.Fprintf(b, "- %s: %s\n", title, strings.Join(parts, ", "))
}
