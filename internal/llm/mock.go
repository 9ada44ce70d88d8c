// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"sync"
)

// MockResponse is one canned answer of a MockProvider.
type MockResponse struct {
	Text string
	Err  error
}

// MockProvider replays canned responses in order, repeating the last one
// once they run out, and records every request.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
	idx       int
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider returns a mock answering with responses in order. With
// no responses, Complete returns an empty text.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Complete records req and returns the next canned response.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)

	if len(m.responses) == 0 {
		return &Response{Model: "mock", StopReason: "end_turn"}, nil
	}
	r := m.responses[m.idx]
	if m.idx < len(m.responses)-1 {
		m.idx++
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return &Response{
		Text:       r.Text,
		Model:      "mock",
		StopReason: "end_turn",
		Usage:      Usage{InputTokens: len(req.Prompt) / 4, OutputTokens: len(r.Text) / 4},
	}, nil
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset forgets the recorded requests and rewinds the responses.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.idx = 0
}
