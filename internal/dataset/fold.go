// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation maps typographic variants found in spreadsheet exports onto
// their ASCII equivalents.
var punctuation = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"\u00a0", " ",
	"\u202f", " ",
)

// Fold returns the comparison key for a header or cell value: diacritics
// removed, lower case, typographic apostrophes normalized and inner
// whitespace collapsed. "Groupement d’activités" and "groupement d'activites"
// fold to the same key.
func Fold(s string) string {
	// transform.Chain keeps internal state, so each call gets its own chain.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, punctuation.Replace(s))
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}
