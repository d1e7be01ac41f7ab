// Package analyzer computes deterministic token statistics for free-form text.
//
// Tokens approximate how an LLM tokenizer would segment the input: text is
// lower-cased, split on whitespace with every special character isolated,
// and words longer than four characters are broken into subword pieces at
// vowel boundaries. Lexical and structural metrics (words, sentences,
// paragraphs, character composition) are computed on the raw text.
//
// The package holds no state between calls; an Analyzer may be shared by
// any number of goroutines.
package analyzer

// DefaultTopTokens is the number of ranked tokens kept in Result.TopTokens.
const DefaultTopTokens = 20

// HistogramBuckets is the number of slots in Result.TokenLengthDistribution.
// Tokens longer than HistogramBuckets characters land in the last slot.
const HistogramBuckets = 20

// TokenFrequency pairs a distinct token with its number of occurrences.
type TokenFrequency struct {
	Token     string `json:"token"`
	Frequency int    `json:"frequency"`
}

// Result holds the statistics produced for one text.
type Result struct {
	TotalTokens             int                   `json:"totalTokens"`
	UniqueTokens            int                   `json:"uniqueTokens"`
	WordCount               int                   `json:"wordCount"`
	SentenceCount           int                   `json:"sentenceCount"`
	ParagraphCount          int                   `json:"paragraphCount"`
	AvgTokenLength          float64               `json:"avgTokenLength"`
	AvgTokensPerSentence    float64               `json:"avgTokensPerSentence"`
	SpecialCharCount        int                   `json:"specialCharCount"`
	WhitespaceCount         int                   `json:"whitespaceCount"`
	TokenLengthDistribution [HistogramBuckets]int `json:"tokenLengthDistribution"`
	TopTokens               []TokenFrequency      `json:"topTokens"`
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTopTokens sets how many ranked tokens are reported. Values <= 0 keep
// DefaultTopTokens.
func WithTopTokens(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topTokens = n
		}
	}
}

// Analyzer runs the analysis pipeline with a fixed configuration.
type Analyzer struct {
	topTokens int
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{topTokens: DefaultTopTokens}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes the statistics for text. It accepts any string,
// including the empty string, and never fails.
func (a *Analyzer) Analyze(text string) Result {
	toks := Tokenize(text)
	agg := aggregate(toks, a.topTokens)
	st := scanStructure(text)

	return Result{
		TotalTokens:             len(toks),
		UniqueTokens:            agg.unique,
		WordCount:               st.words,
		SentenceCount:           st.sentences,
		ParagraphCount:          st.paragraphs,
		AvgTokenLength:          agg.avgLength,
		AvgTokensPerSentence:    float64(len(toks)) / float64(st.sentences),
		SpecialCharCount:        st.specials,
		WhitespaceCount:         st.whitespace,
		TokenLengthDistribution: agg.lengths,
		TopTokens:               agg.top,
	}
}

var defaultAnalyzer = New()

// Analyze runs the default Analyzer on text.
func Analyze(text string) Result {
	return defaultAnalyzer.Analyze(text)
}
