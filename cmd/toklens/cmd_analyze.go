package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/toklens/internal/analyzer"
	"github.com/spboyer/toklens/internal/projectconfig"
	"github.com/spboyer/toklens/internal/statistics"
	"github.com/spf13/cobra"
)

// histogramBarWidth is the width of the longest bar in the length chart.
const histogramBarWidth = 30

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Report token statistics for text",
		Long: `Report token statistics for text.

Paths may be files or directories (scanned recursively for text and markdown
files, optionally gzip or zstd compressed). Use "-" or pipe text on stdin
to analyze standard input.`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyze,
	}
	cmd.Flags().String("format", projectconfig.DefaultFormat, "Output format: json | table")
	cmd.Flags().Int("top", projectconfig.DefaultTopTokens, "Number of most frequent tokens to report")
	cmd.Flags().Int("workers", projectconfig.DefaultWorkers, "Number of inputs analyzed concurrently")
	addInputFlags(cmd)
	return cmd
}

type analyzeJSONOutput struct {
	GeneratedAt string           `json:"generatedAt"`
	Documents   []documentReport `json:"documents"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	paths, rootDir, err := inputPaths(cmd, args)
	if err != nil {
		return err
	}

	a := analyzer.New(analyzer.WithTopTokens(cfg.Analysis.TopTokens))
	reports, err := analyzeDocuments(cmd, paths, rootDir, readOptions(cfg), a, cfg.Output.Workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(analyzeJSONOutput{GeneratedAt: nowISO(), Documents: reports})
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		outputAnalysisTable(out, r)
	}
	return nil
}

func outputAnalysisTable(w io.Writer, r documentReport) {
	res := r.Analysis
	fmt.Fprintf(w, "📄 %s\n", r.Name)
	fmt.Fprintln(w, strings.Repeat("─", 40))

	rows := [][2]string{
		{"Tokens", formatNumber(res.TotalTokens)},
		{"Unique tokens", formatNumber(res.UniqueTokens)},
		{"Words", formatNumber(res.WordCount)},
		{"Sentences", formatNumber(res.SentenceCount)},
		{"Paragraphs", formatNumber(res.ParagraphCount)},
		{"Characters", formatNumber(r.Characters)},
		{"Avg token length", fmt.Sprintf("%.2f", res.AvgTokenLength)},
		{"Avg tokens/sentence", fmt.Sprintf("%.2f", res.AvgTokensPerSentence)},
		{"Special characters", fmt.Sprintf("%s (%.1f%%)", formatNumber(res.SpecialCharCount), statistics.Share(res.SpecialCharCount, r.Characters))},
		{"Whitespace", fmt.Sprintf("%s (%.1f%%)", formatNumber(res.WhitespaceCount), statistics.Share(res.WhitespaceCount, r.Characters))},
		{"Repetition", fmt.Sprintf("%.1f%%", statistics.RepetitionRate(res.UniqueTokens, res.TotalTokens))},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s  %s\n", padRight(row[0], 20), row[1])
	}

	if res.TotalTokens == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Token length distribution:")
	outputHistogram(w, res.TokenLengthDistribution)

	if len(res.TopTokens) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Top tokens:")
		outputTopTokens(w, res.TopTokens)
	}
}

func outputHistogram(w io.Writer, dist [analyzer.HistogramBuckets]int) {
	peak := 0
	for _, n := range dist {
		peak = max(peak, n)
	}
	for i, n := range dist {
		if n == 0 {
			continue
		}
		label := fmt.Sprintf("%d", i+1)
		if i == len(dist)-1 {
			label += "+"
		}
		bar := max(n*histogramBarWidth/peak, 1)
		fmt.Fprintf(w, "  %4s  %s %s\n", label, strings.Repeat("█", bar), formatNumber(n))
	}
}

func outputTopTokens(w io.Writer, top []analyzer.TokenFrequency) {
	width := 5
	for _, tf := range top {
		width = max(width, runewidth.StringWidth(displayToken(tf.Token)))
	}
	width = min(width, 24)
	for i, tf := range top {
		tok := truncateName(displayToken(tf.Token), 24)
		fmt.Fprintf(w, "  %3d. %s  %s\n", i+1, padRight(tok, width), formatNumber(tf.Frequency))
	}
}
