package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var compareFiles = map[string]string{
	"a.txt": "one two three",
	"b.txt": "alpha beta alpha beta alpha",
}

func compareNames(t *testing.T, out string) []string {
	t.Helper()
	var report comparisonReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), "invalid JSON output: %s", out)
	var names []string
	for _, d := range report.Documents {
		names = append(names, d.Name)
	}
	return names
}

func TestCompare_JSON(t *testing.T) {
	chdirTemp(t, compareFiles)

	out, err := runToklens(t, "", "compare", "--format", "json", "a.txt", "b.txt")
	require.NoError(t, err)

	var report comparisonReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotEmpty(t, report.GeneratedAt)
	require.Equal(t, "GPT-4", report.Model)
	require.Len(t, report.Documents, 2)

	b := report.Documents[0]
	assert.Equal(t, "b.txt", b.Name)
	assert.Equal(t, 5, b.Tokens)
	assert.Equal(t, 2, b.UniqueTokens)
	assert.InDelta(t, 40.0, b.Efficiency, 1e-9)
	assert.InDelta(t, 0.00015, b.Cost, 1e-12)

	a := report.Documents[1]
	assert.Equal(t, "a.txt", a.Name)
	assert.Equal(t, 3, a.Tokens)
	assert.InDelta(t, 100.0, a.Efficiency, 1e-9)

	assert.Equal(t, 2, report.Summary.Count)
	assert.Equal(t, 3.0, report.Summary.Min)
	assert.Equal(t, 5.0, report.Summary.Max)
	assert.InDelta(t, 4.0, report.Summary.Mean, 1e-9)
	assert.InDelta(t, 4.0, report.Summary.Median, 1e-9)
	assert.InDelta(t, 1.0, report.Summary.StdDev, 1e-9)
}

func TestCompare_Sort(t *testing.T) {
	tests := []struct {
		sort string
		want []string
	}{
		{"tokens", []string{"b.txt", "a.txt"}},
		{"cost", []string{"b.txt", "a.txt"}},
		{"efficiency", []string{"a.txt", "b.txt"}},
		{"name", []string{"a.txt", "b.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			chdirTemp(t, compareFiles)

			out, err := runToklens(t, "", "compare", "--format", "json", "--sort", tt.sort, "b.txt", "a.txt")
			require.NoError(t, err)
			require.Equal(t, tt.want, compareNames(t, out))
		})
	}
}

func TestCompare_UsesFirstConfiguredModel(t *testing.T) {
	files := map[string]string{
		".toklens.yaml": "pricing:\n  models:\n    - name: Local\n      input_per_1k: 1\n      output_per_1k: 1\n",
	}
	for k, v := range compareFiles {
		files[k] = v
	}
	chdirTemp(t, files)

	out, err := runToklens(t, "", "compare", "--format", "json", "a.txt", "b.txt")
	require.NoError(t, err)

	var report comparisonReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, "Local", report.Model)
	require.InDelta(t, 0.005, report.Documents[0].Cost, 1e-12)
}

func TestCompare_Table(t *testing.T) {
	chdirTemp(t, compareFiles)

	out, err := runToklens(t, "", "compare", "a.txt", "b.txt")
	require.NoError(t, err)
	require.Contains(t, out, "File")
	require.Contains(t, out, "Efficiency")
	require.Regexp(t, `(?m)^b\.txt\s+5\s+2\s+5\s+40\.0%\s+\$0\.000\d$`, out)
	require.Contains(t, out, "2 input(s), costs use GPT-4 input pricing")
	require.Contains(t, out, "Tokens: min 3, max 5, mean 4.0, median 4.0, stddev 1.0")
}

func TestCompare_Errors(t *testing.T) {
	chdirTemp(t, compareFiles)

	_, err := runToklens(t, "", "compare", "a.txt")
	require.ErrorContains(t, err, "requires at least 2 arg(s)")

	_, err = runToklens(t, "", "compare", "--sort", "size", "a.txt", "b.txt")
	require.ErrorContains(t, err, `unsupported sort "size"`)
}
