// Package extract holds the field extractors of the normalization
// pipeline. Each extractor is a pure function of the raw request text and
// the shared pattern tables; they run independently and in any order.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lucid-sh/lucid/internal/patterns"
)

// Goal returns the primary goal: the first sentence of the input with any
// leading filler phrase stripped and the first letter capitalized. Inputs
// without a sentence boundary use the whole trimmed text.
func Goal(raw string, t *patterns.Tables) string {
	goal := firstSentence(strings.TrimSpace(raw))

	lower := strings.ToLower(goal)
	for _, filler := range t.Fillers {
		if strings.HasPrefix(lower, filler) {
			rest := goal[len(filler):]
			// Only strip when the filler ends at a word boundary.
			if rest == "" || !isWordChar(rest[0]) {
				goal = strings.TrimLeft(rest, " \t,")
				break
			}
		}
	}

	return capitalize(goal)
}

// firstSentence cuts text at the first sentence terminator, exclusive.
func firstSentence(text string) string {
	if i := strings.IndexAny(text, ".!?"); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
