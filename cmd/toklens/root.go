package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toklens",
		Short: "toklens - approximate LLM token statistics for text",
		Long: `toklens analyzes free-form text and reports how an LLM tokenizer would
roughly segment it, together with word, sentence, paragraph and character
statistics, a token-length distribution and the most frequent tokens.

Token counts come from a deterministic subword heuristic; they approximate,
but do not reproduce, any specific model's tokenizer.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "Path to a .toklens.yaml file (default: search upward from the working directory)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newAnalyzeCommand())
	cmd.AddCommand(newTokenizeCommand())
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newCostCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
