// Package projectconfig provides the ProjectConfig struct and loader for
// .toklens.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/toklens/internal/analyzer"
	"github.com/spboyer/toklens/internal/pricing"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = ".toklens.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultTopTokens = analyzer.DefaultTopTokens
	DefaultEncoding  = "utf8"
	DefaultFormat    = "table"
	DefaultWorkers   = 4
)

// maxWalkUp bounds the directory walk when searching for FileName.
const maxWalkUp = 10

// ErrInvalidConfig is returned when a config file fails schema validation
// or cannot be decoded.
var ErrInvalidConfig = errors.New("invalid configuration")

// AnalysisConfig holds engine settings.
type AnalysisConfig struct {
	TopTokens int `yaml:"top_tokens,omitempty" mapstructure:"top_tokens"`
}

// InputConfig holds input decoding settings.
type InputConfig struct {
	Encoding string `yaml:"encoding,omitempty" mapstructure:"encoding"`
	Markdown *bool  `yaml:"markdown,omitempty" mapstructure:"markdown"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format  string `yaml:"format,omitempty" mapstructure:"format"`
	Workers int    `yaml:"workers,omitempty" mapstructure:"workers"`
}

// PricingConfig holds the models used for cost estimates.
type PricingConfig struct {
	Models []pricing.Model `yaml:"models,omitempty" mapstructure:"models"`
}

// ProjectConfig is the top-level configuration loaded from .toklens.yaml.
type ProjectConfig struct {
	Analysis AnalysisConfig `yaml:"analysis,omitempty" mapstructure:"analysis"`
	Input    InputConfig    `yaml:"input,omitempty" mapstructure:"input"`
	Output   OutputConfig   `yaml:"output,omitempty" mapstructure:"output"`
	Pricing  PricingConfig  `yaml:"pricing,omitempty" mapstructure:"pricing"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-" mapstructure:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Analysis: AnalysisConfig{
			TopTokens: DefaultTopTokens,
		},
		Input: InputConfig{
			Encoding: DefaultEncoding,
			Markdown: boolPtr(false),
		},
		Output: OutputConfig{
			Format:  DefaultFormat,
			Workers: DefaultWorkers,
		},
		Pricing: PricingConfig{
			Models: append([]pricing.Model(nil), pricing.DefaultModels...),
		},
	}
}

// Load finds .toklens.yaml by walking up from startDir (max 10 levels),
// validates it and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*ProjectConfig, error) {
	path, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path. Unlike Load, a missing file is
// an error.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	slog.Debug("Loaded project config", "path", path)
	return cfg, nil
}

// Parse validates raw YAML against the config schema and merges it onto
// the defaults.
func Parse(data []byte) (*ProjectConfig, error) {
	cfg := New()

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	if doc == nil {
		return cfg, nil
	}

	if errs := validateDocument(doc); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	var fileCfg ProjectConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &fileCfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .toklens.yaml and returns
// its path. Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxWalkUp; i++ {
		p := filepath.Join(dir, FileName)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Analysis
	if src.Analysis.TopTokens != 0 {
		dst.Analysis.TopTokens = src.Analysis.TopTokens
	}

	// Input
	if src.Input.Encoding != "" {
		dst.Input.Encoding = src.Input.Encoding
	}
	if src.Input.Markdown != nil {
		dst.Input.Markdown = src.Input.Markdown
	}

	// Output
	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.Workers != 0 {
		dst.Output.Workers = src.Output.Workers
	}

	// Pricing replaces the whole table
	if len(src.Pricing.Models) > 0 {
		dst.Pricing.Models = src.Pricing.Models
	}
}

func boolPtr(b bool) *bool {
	return &b
}
