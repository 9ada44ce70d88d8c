// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_RedactsAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-TESTSECRET123") //nolint:gosec // fake test credential
	ResetForTest()
	t.Cleanup(ResetForTest)

	got := String("request failed: invalid x-api-key sk-ant-TESTSECRET123")
	assert.Equal(t, "request failed: invalid x-api-key [REDACTED]", got)
}

func TestString_NoSecretSetIsNoop(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("SUAPS_API_TOKEN", "")
	ResetForTest()
	t.Cleanup(ResetForTest)

	assert.Equal(t, "some normal error message", String("some normal error message"))
}

func TestString_ShortValuesIgnored(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "abc")
	ResetForTest()
	t.Cleanup(ResetForTest)

	assert.Equal(t, "abc is in the string abc", String("abc is in the string abc"))
}

func TestString_MultipleSecrets(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-token-aaaa")
	t.Setenv("SUAPS_API_TOKEN", "test-token-bbbb")
	ResetForTest()
	t.Cleanup(ResetForTest)

	got := String("tokens: test-token-aaaa and test-token-bbbb")
	assert.Equal(t, "tokens: [REDACTED] and [REDACTED]", got)
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"jean.dupont@univ.fr", "j***@univ.fr"},
		{"  élodie@etud.univ-ubs.fr ", "é***@etud.univ-ubs.fr"},
		{"not-an-email", "***"},
		{"@univ.fr", "***"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.in))
		})
	}
}
