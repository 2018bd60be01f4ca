// Package normalize prepares raw terminal input for rule matching.
// All rule patterns are written against normalized text: lowercase,
// punctuation-free, single-spaced.
package normalize

import (
	"regexp"
	"strings"
)

var (
	punctuation = regexp.MustCompile(`[^\w\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Input lowercases the text, strips punctuation and collapses runs of
// whitespace into single spaces. Leading and trailing whitespace is removed.
func Input(text string) string {
	cleaned := strings.ToLower(strings.TrimSpace(text))
	cleaned = punctuation.ReplaceAllString(cleaned, "")
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
