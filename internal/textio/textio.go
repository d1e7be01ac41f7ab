// Package textio loads documents for analysis: it resolves input paths,
// decompresses .gz and .zst files, converts legacy encodings to UTF-8 and
// optionally reduces markdown to its prose.
package textio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

var (
	// ErrNoInput is returned when there is nothing to read.
	ErrNoInput = errors.New("no input")
	// ErrUnsupportedEncoding is returned for unknown encoding names.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// Options control how raw bytes become text.
type Options struct {
	// Encoding of the input; see Encodings. Empty means UTF-8.
	Encoding string
	// Markdown forces prose extraction. Files with a markdown extension
	// are always extracted.
	Markdown bool
}

// Document is a loaded input.
type Document struct {
	Name string
	Text string
	// Bytes is the size of the input before decoding.
	Bytes int
}

// Load reads the file at path, or standard input when path is StdinName.
func Load(ctx context.Context, path string, opts Options) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if path == StdinName {
		return Read(ctx, "stdin", os.Stdin, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	return Read(ctx, path, f, opts)
}

// Read loads a document from r. The compression and markdown handling are
// chosen from the extension of name.
func Read(ctx context.Context, name string, r io.Reader, opts Options) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	compression, inner := splitCompression(name)
	src, err := decompress(r, compression)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", name, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", name, err)
	}

	utf8Data, err := ToUTF8(data, opts.Encoding)
	if err != nil {
		return Document{}, fmt.Errorf("decoding %s: %w", name, err)
	}

	text := string(utf8Data)
	if opts.Markdown || IsMarkdown(inner) {
		text = MarkdownProse(utf8Data)
	}

	slog.Debug("Loaded document",
		"path", name,
		"bytes", len(data),
		"encoding", encodingName(opts.Encoding),
		"compression", compression,
		"markdown", opts.Markdown || IsMarkdown(inner))

	return Document{Name: name, Text: text, Bytes: len(data)}, nil
}

// splitCompression returns the compression suffix of name ("" when none)
// and the name without it.
func splitCompression(name string) (string, string) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gz", ".zst":
		return strings.TrimPrefix(ext, "."), strings.TrimSuffix(name, filepath.Ext(name))
	}
	return "", name
}

func decompress(r io.Reader, compression string) (io.ReadCloser, error) {
	switch compression {
	case "gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return zr, nil
	case "zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// IsMarkdown reports whether name has a markdown extension.
func IsMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".markdown":
		return true
	}
	return false
}

// utf8BOM is the UTF-8 byte order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func stripUTF8BOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}
