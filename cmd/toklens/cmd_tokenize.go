package main

import (
	"encoding/json"
	"fmt"

	"github.com/spboyer/toklens/internal/analyzer"
	"github.com/spboyer/toklens/internal/projectconfig"
	"github.com/spboyer/toklens/internal/textio"
	"github.com/spf13/cobra"
)

func newTokenizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [path]",
		Short: "Print the tokens of a text, one per line",
		Long: `Print the tokens of a text in order, one per line.

Reads the given file, or standard input when no path (or "-") is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTokenize,
	}
	cmd.Flags().String("format", "lines", "Output format: lines | json")
	addInputFlags(cmd)
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "lines" && format != "json" {
		return fmt.Errorf(`unsupported format %q; expected "lines" or "json"`, format)
	}

	// --format means something else here; keep it out of the config merge
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyInputFlags(cmd, cfg); err != nil {
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
	toks := analyzer.Tokenize(doc.Text)

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	}
	for _, tok := range toks {
		fmt.Fprintln(out, displayToken(tok))
	}
	return nil
}

// applyInputFlags overrides the input section of cfg with explicitly set flags.
func applyInputFlags(cmd *cobra.Command, cfg *projectconfig.ProjectConfig) error {
	flags := cmd.Flags()
	if flags.Changed("encoding") {
		enc, err := flags.GetString("encoding")
		if err != nil {
			return err
		}
		cfg.Input.Encoding = enc
	}
	if flags.Changed("markdown") {
		md, err := flags.GetBool("markdown")
		if err != nil {
			return err
		}
		cfg.Input.Markdown = &md
	}
	return textio.ValidateEncoding(cfg.Input.Encoding)
}
