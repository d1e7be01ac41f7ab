package analyzer

const (
	// maxUnsplitLength is the longest word kept as a single token.
	maxUnsplitLength = 4
	// maxPieceLength bounds the length of a subword piece.
	maxPieceLength = 6
	// minCutIndex is the lowest index probed for a vowel boundary.
	minCutIndex = 2
)

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// SplitSubwords breaks a word into subword pieces. Words of up to four
// characters are returned whole. Longer words are cut greedily into pieces
// of at most six characters, preferring to end a piece right after a vowel
// that is followed by a non-vowel.
func SplitSubwords(word string) []string {
	rem := []rune(word)
	if len(rem) <= maxUnsplitLength {
		return []string{word}
	}

	var pieces []string
	for len(rem) > 0 {
		cut := min(maxPieceLength, len(rem))
		if len(rem) > cut {
			for i := cut - 1; i >= minCutIndex; i-- {
				if isVowel(rem[i]) && !isVowel(rem[i+1]) {
					cut = i + 1
					break
				}
			}
		}
		pieces = append(pieces, string(rem[:cut]))
		rem = rem[cut:]
	}
	return pieces
}
