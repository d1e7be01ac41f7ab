package analyzer

import (
	"sort"
	"unicode/utf8"
)

type aggregates struct {
	unique    int
	avgLength float64
	lengths   [HistogramBuckets]int
	top       []TokenFrequency
}

func aggregate(toks []string, limit int) aggregates {
	var agg aggregates

	freq := make(map[string]int)
	// distinct tokens in order of first occurrence
	var order []string
	totalLen := 0
	for _, tok := range toks {
		if freq[tok] == 0 {
			order = append(order, tok)
		}
		freq[tok]++

		n := utf8.RuneCountInString(tok)
		totalLen += n
		agg.lengths[min(n, HistogramBuckets)-1]++
	}

	agg.unique = len(order)
	if len(toks) > 0 {
		agg.avgLength = float64(totalLen) / float64(len(toks))
	}
	agg.top = rankTokens(freq, order, limit)
	return agg
}

// rankTokens orders tokens by descending frequency. Ties keep first
// occurrence order.
func rankTokens(freq map[string]int, order []string, limit int) []TokenFrequency {
	ranked := make([]TokenFrequency, len(order))
	for i, tok := range order {
		ranked[i] = TokenFrequency{Token: tok, Frequency: freq[tok]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
