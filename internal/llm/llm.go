// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

// Package llm is the language model client behind the narrated attendance
// insights. Providers are synchronous: one prompt in, one text out.
package llm

import (
	"context"
	"errors"
)

// ErrNoAPIKey is returned when a provider needs an API key and none was
// configured.
var ErrNoAPIKey = errors.New("llm: ANTHROPIC_API_KEY not set and no API key provided")

// Provider completes a single prompt.
type Provider interface {
	// Complete sends req and returns the model's text. Implementations must
	// respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request is one completion request.
type Request struct {
	// System is the system instruction; empty sends none.
	System string
	// Prompt is the user message.
	Prompt string
	// Model overrides the provider default.
	Model string
	// MaxTokens caps the response; zero uses the provider default.
	MaxTokens int
	// Temperature is left to the provider when nil.
	Temperature *float64
}

// Response is the result of a completion.
type Response struct {
	Text       string
	Model      string
	StopReason string
	Usage      Usage
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}
