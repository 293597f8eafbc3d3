package utils

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold returns the lowercase form used for every title comparison.
// Invalid UTF-8 becomes U+FFFD first, so a folded term can only match a
// folded title on a rune boundary.
// cases.Caser keeps state between calls, so a fresh one is built each time.
func Fold(s string) string {
	return cases.Lower(language.Und).String(strings.ToValidUTF8(s, "\uFFFD"))
}

// StringContainsIgnoreCase checks if string contains substring case-insensitively
func StringContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// Suffixes returns every non-empty suffix of s that starts on a rune boundary,
// longest first.
func Suffixes(s string) []string {
	out := make([]string, 0, len(s))
	for i := range s {
		out = append(out, s[i:])
	}
	return out
}

// FormatScore renders a score in its shortest decimal form (9, 8.5, 7.25).
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
