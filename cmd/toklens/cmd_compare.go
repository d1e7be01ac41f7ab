package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spboyer/toklens/internal/analyzer"
	"github.com/spboyer/toklens/internal/pricing"
	"github.com/spboyer/toklens/internal/projectconfig"
	"github.com/spboyer/toklens/internal/statistics"
	"github.com/spf13/cobra"
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <path> <path> [paths...]",
		Short: "Compare token statistics across texts",
		Long: `Compare token statistics across two or more texts.

Each input is analyzed and priced against the first configured model.
Directories are expanded the same way as for analyze.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCompare,
	}
	cmd.Flags().String("format", projectconfig.DefaultFormat, "Output format: json | table")
	cmd.Flags().String("sort", "tokens", "Sort rows by: tokens | cost | efficiency | name")
	cmd.Flags().Int("workers", projectconfig.DefaultWorkers, "Number of inputs analyzed concurrently")
	addInputFlags(cmd)
	return cmd
}

type comparisonRow struct {
	Name         string  `json:"name"`
	Tokens       int     `json:"tokens"`
	UniqueTokens int     `json:"uniqueTokens"`
	Words        int     `json:"words"`
	Efficiency   float64 `json:"efficiency"`
	Cost         float64 `json:"cost"`
}

type comparisonReport struct {
	GeneratedAt string             `json:"generatedAt"`
	Model       string             `json:"model"`
	Summary     statistics.Summary `json:"summary"`
	Documents   []comparisonRow    `json:"documents"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	sortBy, err := cmd.Flags().GetString("sort")
	if err != nil {
		return err
	}
	switch sortBy {
	case "tokens", "cost", "efficiency", "name":
	default:
		return fmt.Errorf(`unsupported sort %q; expected "tokens", "cost", "efficiency" or "name"`, sortBy)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	paths, rootDir, err := inputPaths(cmd, args)
	if err != nil {
		return err
	}
	if len(paths) < 2 {
		return fmt.Errorf("compare needs at least 2 inputs, found %d", len(paths))
	}

	model := pricing.DefaultModels[0]
	if len(cfg.Pricing.Models) > 0 {
		model = cfg.Pricing.Models[0]
	}

	reports, err := analyzeDocuments(cmd, paths, rootDir, readOptions(cfg), analyzer.New(), cfg.Output.Workers)
	if err != nil {
		return err
	}

	report := buildComparison(reports, model)
	sortComparison(report.Documents, sortBy)

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		report.GeneratedAt = nowISO()
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	outputCompareTable(out, report)
	return nil
}

func buildComparison(reports []documentReport, model pricing.Model) comparisonReport {
	rows := make([]comparisonRow, len(reports))
	totals := make([]float64, len(reports))
	for i, r := range reports {
		res := r.Analysis
		rows[i] = comparisonRow{
			Name:         r.Name,
			Tokens:       res.TotalTokens,
			UniqueTokens: res.UniqueTokens,
			Words:        res.WordCount,
			Efficiency:   statistics.Efficiency(res.UniqueTokens, res.TotalTokens),
			Cost:         model.Cost(res.TotalTokens, 0).TotalCost,
		}
		totals[i] = float64(res.TotalTokens)
	}
	return comparisonReport{
		Model:     model.Name,
		Summary:   statistics.Summarize(totals),
		Documents: rows,
	}
}

// sortComparison orders rows by the given key, largest first except for
// name. Ties fall back to name.
func sortComparison(rows []comparisonRow, by string) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch by {
		case "tokens":
			if a.Tokens != b.Tokens {
				return a.Tokens > b.Tokens
			}
		case "cost":
			if a.Cost != b.Cost {
				return a.Cost > b.Cost
			}
		case "efficiency":
			if a.Efficiency != b.Efficiency {
				return a.Efficiency > b.Efficiency
			}
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

func outputCompareTable(w io.Writer, report comparisonReport) {
	maxName := 4
	for _, r := range report.Documents {
		maxName = max(maxName, len(truncateName(r.Name, 40)))
	}

	header := fmt.Sprintf("%s  %10s  %10s  %10s  %10s  %10s", padRight("File", maxName), "Tokens", "Unique", "Words", "Efficiency", "Cost")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	for _, r := range report.Documents {
		fmt.Fprintf(w, "%s  %10s  %10s  %10s  %9.1f%%  %10s\n",
			padRight(truncateName(r.Name, 40), maxName),
			formatNumber(r.Tokens), formatNumber(r.UniqueTokens), formatNumber(r.Words),
			r.Efficiency, formatCost(r.Cost))
	}
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	s := report.Summary
	fmt.Fprintf(w, "\n%d input(s), costs use %s input pricing\n", s.Count, report.Model)
	fmt.Fprintf(w, "Tokens: min %s, max %s, mean %.1f, median %.1f, stddev %.1f\n",
		formatNumber(int(s.Min)), formatNumber(int(s.Max)), s.Mean, s.Median, s.StdDev)
}

func formatCost(usd float64) string {
	return fmt.Sprintf("$%.4f", usd)
}
