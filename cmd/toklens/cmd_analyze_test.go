package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spboyer/toklens/internal/textio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "Hi there! How are you? Fine."

func TestAnalyze_JSONFormat(t *testing.T) {
	chdirTemp(t, map[string]string{"a.txt": sampleText})

	out, err := runToklens(t, "", "analyze", "--format", "json", "a.txt")
	require.NoError(t, err)

	var result analyzeJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result), "invalid JSON output: %s", out)
	require.NotEmpty(t, result.GeneratedAt)
	require.Len(t, result.Documents, 1)

	doc := result.Documents[0]
	assert.Equal(t, "a.txt", doc.Name)
	assert.Equal(t, 28, doc.Characters)
	assert.Equal(t, 28, doc.Bytes)
	assert.Equal(t, 9, doc.Analysis.TotalTokens)
	assert.Equal(t, 6, doc.Analysis.WordCount)
	assert.Equal(t, 3, doc.Analysis.SentenceCount)
	assert.Equal(t, 1, doc.Analysis.ParagraphCount)
	assert.Equal(t, 3, doc.Analysis.SpecialCharCount)
	assert.Equal(t, 5, doc.Analysis.WhitespaceCount)
}

func TestAnalyze_TableFormat(t *testing.T) {
	chdirTemp(t, map[string]string{"a.txt": sampleText})

	out, err := runToklens(t, "", "analyze", "a.txt")
	require.NoError(t, err)

	require.Contains(t, out, "📄 a.txt")
	require.Regexp(t, `(?m)^Tokens\s+9$`, out)
	require.Regexp(t, `(?m)^Sentences\s+3$`, out)
	require.Contains(t, out, "Token length distribution:")
	require.Contains(t, out, "Top tokens:")
	require.Contains(t, out, "    1. hi")
}

func TestAnalyze_EmptyFileSkipsCharts(t *testing.T) {
	chdirTemp(t, map[string]string{"empty.txt": ""})

	out, err := runToklens(t, "", "analyze", "empty.txt")
	require.NoError(t, err)
	require.Regexp(t, `(?m)^Tokens\s+0$`, out)
	require.NotContains(t, out, "Top tokens:")
}

func TestAnalyze_Stdin(t *testing.T) {
	chdirTemp(t, nil)

	out, err := runToklens(t, "para one\n\npara two", "analyze", "--format", "json")
	require.NoError(t, err)

	var result analyzeJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Documents, 1)
	require.Equal(t, "stdin", result.Documents[0].Name)
	require.Equal(t, 2, result.Documents[0].Analysis.ParagraphCount)
}

func TestAnalyze_RepeatedStdinIsReadOnce(t *testing.T) {
	chdirTemp(t, map[string]string{"a.txt": "alpha"})

	out, err := runToklens(t, "one two", "analyze", "--format", "json", "-", "a.txt", "-")
	require.NoError(t, err)

	var result analyzeJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Documents, 2)
	require.Equal(t, "stdin", result.Documents[0].Name)
	require.Equal(t, 2, result.Documents[0].Analysis.TotalTokens)
	require.Equal(t, "a.txt", result.Documents[1].Name)
}

func TestAnalyze_TopFlag(t *testing.T) {
	chdirTemp(t, map[string]string{"a.txt": sampleText})

	out, err := runToklens(t, "", "analyze", "--format", "json", "--top", "2", "a.txt")
	require.NoError(t, err)

	var result analyzeJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Documents[0].Analysis.TopTokens, 2)
}

func TestAnalyze_DirectoryKeepsOrder(t *testing.T) {
	chdirTemp(t, map[string]string{
		"docs/b.txt":        "beta",
		"docs/a.txt":        "alpha",
		"docs/c.md":         "# Gamma\n\ntext",
		"docs/skip.py":      "print('no')",
		"docs/.git/x.txt":   "ignored",
		"docs/sub/d.prompt": "delta",
	})

	out, err := runToklens(t, "", "analyze", "--format", "json", "--workers", "2", "docs")
	require.NoError(t, err)

	var result analyzeJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	var names []string
	for _, d := range result.Documents {
		names = append(names, d.Name)
	}
	require.Equal(t, []string{"docs/a.txt", "docs/b.txt", "docs/c.md", "docs/sub/d.prompt"}, names)
}

func TestAnalyze_MarkdownProse(t *testing.T) {
	chdirTemp(t, map[string]string{"notes.md": "# Title\n\nSome **bold** words.\n"})

	out, err := runToklens(t, "", "analyze", "--format", "json", "notes.md")
	require.NoError(t, err)

	var result analyzeJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	for _, tf := range result.Documents[0].Analysis.TopTokens {
		assert.NotEqual(t, "#", tf.Token)
		assert.NotEqual(t, "*", tf.Token)
	}
}

func TestAnalyze_MissingFile(t *testing.T) {
	chdirTemp(t, nil)

	_, err := runToklens(t, "", "analyze", "missing.txt")
	require.Error(t, err)
	require.Equal(t, ExitError, exitCode(err))
}

func TestAnalyze_NoTextFiles(t *testing.T) {
	chdirTemp(t, map[string]string{"src/main.go": "package main"})

	_, err := runToklens(t, "", "analyze", "src")
	require.ErrorIs(t, err, textio.ErrNoInput)
	require.Equal(t, ExitNoInput, exitCode(err))
}

func TestAnalyze_HistogramBuckets(t *testing.T) {
	chdirTemp(t, map[string]string{"a.txt": "a bb bb " + strings.Repeat("x", 30)})

	out, err := runToklens(t, "", "analyze", "a.txt")
	require.NoError(t, err)
	// a, bb and five six-character pieces of the long word
	require.Regexp(t, `(?m)^\s+1  █+ 1$`, out)
	require.Regexp(t, `(?m)^\s+2  █+ 2$`, out)
	require.Regexp(t, `(?m)^\s+6  █{30} 5$`, out)
	require.NotRegexp(t, `(?m)^\s+3  █`, out)
}
