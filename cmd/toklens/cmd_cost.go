package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/toklens/internal/pricing"
	"github.com/spboyer/toklens/internal/projectconfig"
	"github.com/spboyer/toklens/internal/textio"
	"github.com/spboyer/toklens/internal/tokens"
	"github.com/spf13/cobra"
)

func newCostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost [path]",
		Short: "Estimate the cost of sending a text to LLM models",
		Long: `Estimate the cost of sending a text to each configured model.

Prices come from the pricing section of .toklens.yaml, or a built-in table
when none is configured. Reads standard input when no path (or "-") is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCost,
	}
	cmd.Flags().String("format", projectconfig.DefaultFormat, "Output format: json | table")
	cmd.Flags().String("tokenizer", string(tokens.TokenizerHeuristic), "Token counter: "+strings.Join(tokens.ValidTokenizers, " | "))
	cmd.Flags().Int("output-tokens", 0, "Expected response length in tokens")
	addInputFlags(cmd)
	return cmd
}

type costJSONOutput struct {
	GeneratedAt string             `json:"generatedAt"`
	Source      string             `json:"source"`
	Tokenizer   string             `json:"tokenizer"`
	Estimates   []pricing.Estimate `json:"estimates"`
}

func runCost(cmd *cobra.Command, args []string) error {
	tokenizer, err := cmd.Flags().GetString("tokenizer")
	if err != nil {
		return err
	}
	outputTokens, err := cmd.Flags().GetInt("output-tokens")
	if err != nil {
		return err
	}
	if outputTokens < 0 {
		return errors.New("--output-tokens must not be negative")
	}

	counter, err := tokens.NewCounter(tokens.Tokenizer(tokenizer))
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	estimator, err := pricing.NewEstimator(counter, cfg.Pricing.Models)
	if err != nil {
		return err
	}

	path := textio.StdinName
	if len(args) == 1 {
		path = args[0]
	} else if !stdinAvailable(cmd.InOrStdin()) {
		return fmt.Errorf("%w: pass a file path or pipe text on stdin", textio.ErrNoInput)
	}
	doc, err := loadDocument(cmd.Context(), path, "", cmd.InOrStdin(), readOptions(cfg))
	if err != nil {
		return err
	}

	estimates := estimator.Estimate(doc.Text, outputTokens)

	out := cmd.OutOrStdout()
	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(costJSONOutput{
			GeneratedAt: nowISO(),
			Source:      doc.Name,
			Tokenizer:   tokenizer,
			Estimates:   estimates,
		})
	}
	outputCostTable(out, doc.Name, tokenizer, estimator.Models(), estimates)
	return nil
}

// outputCostTable prints one row per model; estimates[i] prices models[i].
func outputCostTable(w io.Writer, source, tokenizer string, models []pricing.Model, estimates []pricing.Estimate) {
	if len(estimates) == 0 {
		return
	}
	fmt.Fprintf(w, "📄 %s: %s input tokens (%s)\n\n", source, formatNumber(estimates[0].InputTokens), tokenizer)

	maxModel := 5
	for _, e := range estimates {
		maxModel = max(maxModel, runewidth.StringWidth(e.Model))
	}
	header := fmt.Sprintf("%s  %10s  %10s  %10s  %10s  %10s", padRight("Model", maxModel), "In/1K", "Out/1K", "Input", "Output", "Total")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	for i, e := range estimates {
		m := models[i]
		fmt.Fprintf(w, "%s  %10s  %10s  %10s  %10s  %10s\n", padRight(e.Model, maxModel),
			formatCost(m.InputPer1K), formatCost(m.OutputPer1K),
			formatCost(e.InputCost), formatCost(e.OutputCost), formatCost(e.TotalCost))
	}
}
