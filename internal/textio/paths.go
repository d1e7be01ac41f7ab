package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var excludedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"coverage":     true,
}

var textExtensions = map[string]bool{
	".txt":      true,
	".text":     true,
	".prompt":   true,
	".md":       true,
	".mdx":      true,
	".markdown": true,
}

// IsTextFile reports whether name looks like a document worth analyzing
// when found during a directory walk. Compressed variants count too.
func IsTextFile(name string) bool {
	_, inner := splitCompression(name)
	return textExtensions[strings.ToLower(filepath.Ext(inner))]
}

// Expand resolves user-provided paths to a list of files. Files are kept
// as given; directories are walked recursively for text files. Relative
// paths are resolved from rootDir. StdinName is passed through unchanged.
func Expand(paths []string, rootDir string) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	var result []string
	for _, p := range paths {
		if p == StdinName {
			result = append(result, p)
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(rootDir, p)
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", p, err)
		}

		if !info.IsDir() {
			result = append(result, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && excludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			if !d.IsDir() && IsTextFile(d.Name()) {
				result = append(result, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", p, err)
		}
	}

	return result, nil
}

// DisplayName returns path relative to rootDir when possible.
func DisplayName(path, rootDir string) string {
	if path == StdinName {
		return "stdin"
	}
	rel, err := filepath.Rel(rootDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(filepath.Clean(rel))
}
