package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeuristicCounter(t *testing.T) {
	counter, err := NewCounter(TokenizerHeuristic)
	require.NoError(t, err)
	for _, tt := range []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello world", 2},
		{"elephant", 2},
		{"The quick brown fox jumps over the lazy dog.", 10},
	} {
		require.Equal(t, tt.want, counter.Count(tt.input), "Count(%q)", tt.input)
	}
}

func TestEstimatingCounter(t *testing.T) {
	counter, err := NewCounter(TokenizerEstimate)
	require.NoError(t, err)
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"test", 1},
		{"testing", 2},
		{"The quick brown fox jumps over the lazy dog.", 11},
		{string(make([]byte, 100)), 25},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, counter.Count(tt.input), "Count(%q)", tt.input)
	}
}

func TestNewCounter_Unknown(t *testing.T) {
	_, err := NewCounter("bpe")
	require.ErrorContains(t, err, `unknown tokenizer "bpe"`)
}

func TestValidateTokenizer(t *testing.T) {
	for _, name := range ValidTokenizers {
		require.NoError(t, ValidateTokenizer(name))
	}
	require.Error(t, ValidateTokenizer(""))
	require.Error(t, ValidateTokenizer("Heuristic"))
}

var benchInput = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 100)

func BenchmarkHeuristicCounter(b *testing.B) {
	counter := &heuristicCounter{}
	for b.Loop() {
		counter.Count(benchInput)
	}
}

func BenchmarkEstimatingCounter(b *testing.B) {
	counter := &estimatingCounter{}
	for b.Loop() {
		counter.Count(benchInput)
	}
}
