package analyzer

import (
	"regexp"
	"strings"
)

var (
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
	// The class matches everything isSpace accepts.
	paragraphBreakRe = regexp.MustCompile(`\n[\s\v\p{Z}\x{FEFF}]*\n`)
)

type structure struct {
	words      int
	sentences  int
	paragraphs int
	specials   int
	whitespace int
}

func scanStructure(text string) structure {
	st := structure{
		words:      len(strings.FieldsFunc(text, isSpace)),
		sentences:  countNonBlank(sentenceEndRe.Split(text, -1)),
		paragraphs: countNonBlank(paragraphBreakRe.Split(text, -1)),
	}
	for _, r := range text {
		switch {
		case isSpace(r):
			st.whitespace++
		case !isWordRune(r):
			st.specials++
		}
	}
	return st
}

// countNonBlank counts fragments with non-whitespace content, never
// returning less than one.
func countNonBlank(fragments []string) int {
	n := 0
	for _, f := range fragments {
		if strings.TrimFunc(f, isSpace) != "" {
			n++
		}
	}
	return max(n, 1)
}
