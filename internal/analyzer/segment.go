package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r belongs inside a word: ASCII letters, digits
// and underscore. Any other non-space rune, accented letters included, is a
// special character.
func isWordRune(r rune) bool {
	return r < utf8.RuneSelf && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_')
}

// isSpace reports whether r is whitespace: the Unicode White_Space runes
// except U+0085, plus the byte order mark U+FEFF.
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

// Words lower-cases text and splits it into word fragments. Whitespace
// separates fragments and every special character forms a fragment of its
// own, so "don't!" yields "don", "'", "t", "!".
func Words(text string) []string {
	lower := strings.ToLower(text)

	var words []string
	start := -1
	for i := 0; i < len(lower); {
		r, size := utf8.DecodeRuneInString(lower[i:])
		switch {
		case isSpace(r):
			if start >= 0 {
				words = append(words, lower[start:i])
				start = -1
			}
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		default:
			if start >= 0 {
				words = append(words, lower[start:i])
				start = -1
			}
			words = append(words, lower[i:i+size])
		}
		i += size
	}
	if start >= 0 {
		words = append(words, lower[start:])
	}
	return words
}

// Tokenize runs segmentation and subword splitting, returning tokens in
// source order.
func Tokenize(text string) []string {
	words := Words(text)
	toks := make([]string, 0, len(words))
	for _, w := range words {
		toks = append(toks, SplitSubwords(w)...)
	}
	return toks
}
