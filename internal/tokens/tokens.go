package tokens

import (
	"fmt"
	"math"
	"strings"

	"github.com/spboyer/toklens/internal/analyzer"
)

//go:generate go tool mockgen -destination=mocks/mock_counter.go -package=mocks . Counter

const charsPerToken = 4

// Tokenizer names a token counting strategy.
type Tokenizer string

const (
	// TokenizerHeuristic counts tokens produced by the subword heuristic in
	// package analyzer.
	TokenizerHeuristic Tokenizer = "heuristic"
	// TokenizerEstimate approximates ~4 characters per token.
	TokenizerEstimate Tokenizer = "estimate"
)

// ValidTokenizers lists the accepted tokenizer names.
var ValidTokenizers = []string{string(TokenizerHeuristic), string(TokenizerEstimate)}

// ValidateTokenizer returns an error for unknown tokenizer names.
func ValidateTokenizer(name string) error {
	for _, v := range ValidTokenizers {
		if name == v {
			return nil
		}
	}
	return fmt.Errorf("unknown tokenizer %q; expected one of: %s", name, strings.Join(ValidTokenizers, ", "))
}

// Counter counts tokens in text.
type Counter interface {
	Count(text string) int
}

// NewCounter returns the Counter for t.
func NewCounter(t Tokenizer) (Counter, error) {
	switch t {
	case TokenizerHeuristic:
		return &heuristicCounter{}, nil
	case TokenizerEstimate:
		return &estimatingCounter{}, nil
	default:
		return nil, ValidateTokenizer(string(t))
	}
}

type heuristicCounter struct{}

func (*heuristicCounter) Count(text string) int {
	return len(analyzer.Tokenize(text))
}

// estimatingCounter approximates token count as ~4 characters per token.
type estimatingCounter struct{}

func (*estimatingCounter) Count(text string) int {
	return Estimate(text)
}

// Estimate approximates the token count of text from its byte length.
func Estimate(text string) int {
	return int(math.Ceil(float64(len(text)) / float64(charsPerToken)))
}
