package bank

import (
	"strings"
	"unicode"
)

// normalizeRune folds a character for confusable-tolerant matching:
// lower-case first, then l/i/1 collapse to 'i' and o/0 collapse to '0'.
// Question ids mix letters and digits that render near-identically in
// many fonts, so a query typed with the wrong one should still hit.
func normalizeRune(r rune) rune {
	switch r = unicode.ToLower(r); r {
	case 'l', 'i', '1':
		return 'i'
	case 'o', '0':
		return '0'
	default:
		return r
	}
}

func normalize(s string) string {
	return strings.Map(normalizeRune, s)
}

// fuzzyMatch reports whether pattern occurs in text, ignoring case and
// confusable characters. Empty pattern or text never matches. The
// shared primitive behind every search mode.
func fuzzyMatch(pattern, text string) bool {
	if pattern == "" || text == "" {
		return false
	}

	// Plain case-insensitive containment covers most queries.
	if strings.Contains(strings.ToLower(text), strings.ToLower(pattern)) {
		return true
	}

	return strings.Contains(normalize(text), normalize(pattern))
}
