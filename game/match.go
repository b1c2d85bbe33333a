/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeWord folds case, trims surrounding space and strips combining marks,
// so "César " and "cesar" compare equal.
func normalizeWord(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return strings.ToLower(out)
}

// WordsMatch reports whether a guess names the same word, ignoring case,
// accents and surrounding whitespace.
func WordsMatch(guess, word string) bool {
	if strings.TrimSpace(guess) == "" || strings.TrimSpace(word) == "" {
		return false
	}
	return normalizeWord(guess) == normalizeWord(word)
}
