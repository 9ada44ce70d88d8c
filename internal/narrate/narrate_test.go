// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package narrate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atk0906/Projet-SUAPS/internal/attendance"
	"github.com/atk0906/Projet-SUAPS/internal/config"
	"github.com/atk0906/Projet-SUAPS/internal/dashboard/dashboardtest"
	"github.com/atk0906/Projet-SUAPS/internal/llm"
	"github.com/atk0906/Projet-SUAPS/internal/state"
)

func TestBuildPrompt(t *testing.T) {
	d := dashboardtest.Build(t)
	prompt := BuildPrompt(d, "")

	assert.Contains(t, prompt, "Enrollment export of semester1, all sites.")
	assert.Contains(t, prompt, "- Registrations: 5")
	assert.Contains(t, prompt, "- Distinct students: 4")
	assert.Contains(t, prompt, "- Top activities: BASKET - LORIENT (3)")
	assert.Contains(t, prompt, "ATTENDANCE OF BASKET - LORIENT")
	assert.Contains(t, prompt, "- Level beginner: 4 students, average participation 66.67%")
	assert.Contains(t, prompt, "  - Course 10: 2/4 (50.00%)")
	assert.Contains(t, prompt, "in English")
	assert.NotContains(t, prompt, "TRENDS")

	for _, private := range []string{"@univ.fr", "Le Goff", "Alice"} {
		assert.NotContains(t, prompt, private)
	}
}

func TestBuildPrompt_SiteTrendsAndLanguage(t *testing.T) {
	d := dashboardtest.Build(t)
	d.Site = "VANNES"
	d.Attendance[1].Available = false
	d.Trends = &state.TrendResult{
		WindowSize: 5,
		Lines: []state.TrendLine{{
			Level:     "beginner",
			Previous:  attendance.Rate{Value: 70, Defined: true},
			Current:   attendance.Rate{Value: 66.67, Defined: true},
			Delta:     -3.33,
			Direction: state.Degrading,
		}},
	}

	prompt := BuildPrompt(d, "French")
	assert.Contains(t, prompt, "site VANNES")
	assert.Contains(t, prompt, "- Level confirmed: no data")
	assert.Contains(t, prompt, "- Level beginner: degrading (70.00% -> 66.67%, -3.33 points)")
	assert.Contains(t, prompt, "in French")
}

func TestSummarize(t *testing.T) {
	d := dashboardtest.Build(t)
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  Basketball leads enrollments.\n"})

	insight, err := Summarize(context.Background(), mock, d, Options{Model: "claude-haiku-4-5", MaxTokens: 300})
	require.NoError(t, err)
	assert.Equal(t, "Basketball leads enrollments.", insight.Text)
	assert.Equal(t, "mock", insight.Model)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, systemPrompt, calls[0].System)
	assert.Equal(t, "claude-haiku-4-5", calls[0].Model)
	assert.Equal(t, 300, calls[0].MaxTokens)
	assert.Contains(t, calls[0].Prompt, "Distinct students: 4")
}

func TestSummarize_Errors(t *testing.T) {
	d := dashboardtest.Build(t)

	failure := errors.New("overloaded")
	_, err := Summarize(context.Background(), llm.NewMockProvider(llm.MockResponse{Err: failure}), d, Options{})
	assert.ErrorIs(t, err, failure)

	_, err = Summarize(context.Background(), llm.NewMockProvider(llm.MockResponse{Text: " "}), d, Options{})
	assert.ErrorIs(t, err, ErrEmptyResponse)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Summarize(ctx, llm.NewMockProvider(), d, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(config.LLMConfig{Disabled: true})
	assert.ErrorIs(t, err, ErrDisabled)

	t.Setenv("ANTHROPIC_API_KEY", "")
	_, err = NewProvider(config.LLMConfig{})
	assert.ErrorIs(t, err, llm.ErrNoAPIKey)

	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	p, err := NewProvider(config.LLMConfig{Model: "claude-haiku-4-5"})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5", p.(*llm.AnthropicProvider).Model())
}
