package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/toklens/internal/analyzer"
	"github.com/spboyer/toklens/internal/projectconfig"
	"github.com/spboyer/toklens/internal/spinner"
	"github.com/spboyer/toklens/internal/textio"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numberPrinter formats counts with thousands separators (1722 → "1,722").
var numberPrinter = message.NewPrinter(language.English)

func formatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// nowISO returns the current time in ISO 8601 format.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// addInputFlags registers the flags shared by commands that read documents.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("encoding", projectconfig.DefaultEncoding, "Input encoding: "+strings.Join(textio.Encodings, " | "))
	cmd.Flags().Bool("markdown", false, "Extract prose from markdown before analysis (implied for .md files)")
}

// loadConfig reads the project configuration named by --config, or the
// nearest .toklens.yaml above the working directory.
func loadConfig(cmd *cobra.Command) (*projectconfig.ProjectConfig, error) {
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		return projectconfig.LoadFile(f.Value.String())
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}
	return projectconfig.Load(wd)
}

// resolveConfig loads the project configuration and applies any flags the
// user set explicitly on top of it.
func resolveConfig(cmd *cobra.Command) (*projectconfig.ProjectConfig, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := applyInputFlags(cmd, cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("top") {
		if cfg.Analysis.TopTokens, err = flags.GetInt("top"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("workers") {
		if cfg.Output.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, err
		}
	}

	if cfg.Output.Format != "table" && cfg.Output.Format != "json" {
		return nil, fmt.Errorf(`unsupported format %q; expected "table" or "json"`, cfg.Output.Format)
	}
	if cfg.Output.Workers < 1 {
		cfg.Output.Workers = 1
	}
	return cfg, nil
}

func readOptions(cfg *projectconfig.ProjectConfig) textio.Options {
	return textio.Options{
		Encoding: cfg.Input.Encoding,
		Markdown: cfg.Input.Markdown != nil && *cfg.Input.Markdown,
	}
}

// stdinAvailable reports whether in can be read without blocking on an
// interactive terminal.
func stdinAvailable(in io.Reader) bool {
	if f, ok := in.(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return in != nil
}

// inputPaths resolves command arguments to input paths. With no arguments
// piped standard input is used.
func inputPaths(cmd *cobra.Command, args []string) ([]string, string, error) {
	rootDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("getting current directory: %w", err)
	}
	if len(args) == 0 {
		if !stdinAvailable(cmd.InOrStdin()) {
			return nil, "", fmt.Errorf("%w: pass file paths or pipe text on stdin", textio.ErrNoInput)
		}
		args = []string{textio.StdinName}
	}
	paths, err := textio.Expand(args, rootDir)
	if err != nil {
		return nil, "", err
	}
	paths = dedupeStdin(paths)
	if len(paths) == 0 {
		return nil, "", fmt.Errorf("%w: no text files found in %s", textio.ErrNoInput, strings.Join(args, ", "))
	}
	return paths, rootDir, nil
}

// dedupeStdin drops every StdinName after the first; stdin can only be
// read once.
func dedupeStdin(paths []string) []string {
	seen := false
	return slices.DeleteFunc(paths, func(p string) bool {
		if p != textio.StdinName {
			return false
		}
		dup := seen
		seen = true
		return dup
	})
}

// loadDocument reads one input; StdinName reads from stdin.
func loadDocument(ctx context.Context, path, rootDir string, stdin io.Reader, opts textio.Options) (textio.Document, error) {
	var (
		doc textio.Document
		err error
	)
	if path == textio.StdinName {
		doc, err = textio.Read(ctx, "stdin", stdin, opts)
	} else {
		doc, err = textio.Load(ctx, path, opts)
	}
	if err != nil {
		return textio.Document{}, err
	}
	doc.Name = textio.DisplayName(path, rootDir)
	return doc, nil
}

// documentReport is the analysis of one input.
type documentReport struct {
	Name       string          `json:"name"`
	Characters int             `json:"characters"`
	Bytes      int             `json:"bytes"`
	Analysis   analyzer.Result `json:"analysis"`
}

// startProgress shows a spinner on stderr while several inputs are analyzed.
// It returns nil when stderr is not a terminal.
func startProgress(cmd *cobra.Command, total int) *spinner.Spinner {
	f, ok := cmd.ErrOrStderr().(*os.File)
	if !ok || total < 2 || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return spinner.Start(f, "Analyzing", total)
}

// analyzeDocuments loads and analyzes paths with at most workers inputs in
// flight. Reports keep the order of paths.
func analyzeDocuments(cmd *cobra.Command, paths []string, rootDir string, opts textio.Options, a *analyzer.Analyzer, workers int) ([]documentReport, error) {
	reports := make([]documentReport, len(paths))
	stdin := cmd.InOrStdin()

	progress := startProgress(cmd, len(paths))
	if progress != nil {
		defer progress.Stop()
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(workers, 1))
	for i, p := range paths {
		g.Go(func() error {
			doc, err := loadDocument(ctx, p, rootDir, stdin, opts)
			if err != nil {
				return err
			}
			res := a.Analyze(doc.Text)
			slog.Debug("Analyzed document", "source", doc.Name, "tokens", res.TotalTokens)
			reports[i] = documentReport{
				Name:       doc.Name,
				Characters: utf8.RuneCountInString(doc.Text),
				Bytes:      doc.Bytes,
				Analysis:   res,
			}
			if progress != nil {
				progress.Advance()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// displayToken makes control characters in a token visible.
func displayToken(tok string) string {
	if strings.IndexFunc(tok, func(r rune) bool { return !unicode.IsPrint(r) }) < 0 {
		return tok
	}
	return strings.Trim(strconv.Quote(tok), `"`)
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}
