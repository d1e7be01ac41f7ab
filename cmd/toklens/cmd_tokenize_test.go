package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize_Lines(t *testing.T) {
	chdirTemp(t, map[string]string{"a.txt": "Hello, world! Elephant"})

	out, err := runToklens(t, "", "tokenize", "a.txt")
	require.NoError(t, err)
	require.Equal(t, "hello\n,\nworld\n!\nelepha\nnt\n", out)
}

func TestTokenize_JSON(t *testing.T) {
	chdirTemp(t, nil)

	out, err := runToklens(t, "Hi there!", "tokenize", "--format", "json")
	require.NoError(t, err)

	var toks []string
	require.NoError(t, json.Unmarshal([]byte(out), &toks))
	require.Equal(t, []string{"hi", "there", "!"}, toks)
}

func TestTokenize_EmptyInputIsEmptyArray(t *testing.T) {
	chdirTemp(t, nil)

	out, err := runToklens(t, "   \n\t", "tokenize", "--format", "json", "-")
	require.NoError(t, err)
	require.JSONEq(t, "[]", out)
}

func TestTokenize_Errors(t *testing.T) {
	chdirTemp(t, map[string]string{"a.txt": "text"})

	_, err := runToklens(t, "", "tokenize", "--format", "table", "a.txt")
	require.ErrorContains(t, err, `unsupported format "table"`)

	_, err = runToklens(t, "", "tokenize", "a.txt", "b.txt")
	require.Error(t, err)
}

func TestTokenize_Encoding(t *testing.T) {
	// "café" in ISO-8859-1
	chdirTemp(t, map[string]string{"latin1.txt": "caf\xe9"})

	out, err := runToklens(t, "", "tokenize", "--encoding", "iso-8859-1", "latin1.txt")
	require.NoError(t, err)
	require.Equal(t, "caf\né\n", out)
}
