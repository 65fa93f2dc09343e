// Package city prepares free text city input for the weather API.
package city

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// anything but letters, marks, digits, underscore and whitespace
var nonWordRegExp = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s\p{Z}]+`)

// Normalize returns the canonical query for the given input: punctuation stripped,
// whitespace collapsed and trimmed, every word title cased.
// Empty or whitespace only input gives an empty string.
func Normalize(input string) string {
	cleaned := nonWordRegExp.ReplaceAllString(input, "")

	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}

	// casers keep state, one per call
	lower := cases.Lower(language.Und)
	for i, w := range words {
		words[i] = titleWord(w, lower)
	}

	return strings.Join(words, " ")
}

// IsEmpty reports whether input normalizes to nothing.
func IsEmpty(input string) bool {
	return Normalize(input) == ""
}

func titleWord(w string, lower cases.Caser) string {
	first, size := utf8.DecodeRuneInString(w)

	return string(unicode.ToTitle(first)) + lower.String(w[size:])
}
