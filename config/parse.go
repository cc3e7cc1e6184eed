package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/gwlint/gwerrors"
	"github.com/erraggy/gwlint/internal/options"
)

// SourceFormat represents the format of a configuration source
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains a decoded configuration and where it came from.
type ParseResult struct {
	// Config is the decoded configuration
	Config *Config
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// SourcePath is the file path, or a synthetic name for in-memory sources
	SourcePath string
}

// Marshal encodes the configuration in its source format.
func (r *ParseResult) Marshal() ([]byte, error) {
	return Marshal(r.Config, r.SourceFormat)
}

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	data     []byte
}

// ParseWithOptions decodes a gateway configuration using functional options.
//
// Example:
//
//	result, err := config.ParseWithOptions(
//	    config.WithFilePath("gateway.yaml"),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config: invalid options: %w", err)
		}
	}

	if err := options.ValidateSingleInputSource(
		"no input source specified: use WithFilePath, WithReader, or WithBytes",
		"multiple input sources specified: use only one of WithFilePath, WithReader, or WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.data != nil,
	); err != nil {
		return nil, fmt.Errorf("config: invalid options: %w", err)
	}

	switch {
	case cfg.filePath != nil:
		data, err := os.ReadFile(*cfg.filePath)
		if err != nil {
			return nil, &gwerrors.ParseError{Path: *cfg.filePath, Message: "failed to read file", Cause: err}
		}
		format := detectFormatFromPath(*cfg.filePath)
		if format == SourceFormatUnknown {
			format = detectFormatFromContent(data)
		}
		return parseBytes(data, *cfg.filePath, format)
	case cfg.reader != nil:
		data, err := io.ReadAll(cfg.reader)
		if err != nil {
			return nil, &gwerrors.ParseError{Path: "reader", Message: "failed to read input", Cause: err}
		}
		format := detectFormatFromContent(data)
		return parseBytes(data, syntheticPath("ParseReader", format), format)
	default:
		format := detectFormatFromContent(cfg.data)
		return parseBytes(cfg.data, syntheticPath("ParseBytes", format), format)
	}
}

// WithFilePath specifies a configuration file to read
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies a reader to decode the configuration from
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies in-memory configuration content
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("data cannot be nil")
		}
		cfg.data = data
		return nil
	}
}

func parseBytes(data []byte, path string, format SourceFormat) (*ParseResult, error) {
	// YAML is a superset of JSON, so one decoder serves both formats.
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &gwerrors.ParseError{Path: path, Message: "failed to decode " + string(format), Cause: err}
	}
	if cfg.Server.Lint != nil {
		if err := cfg.Server.Lint.Validate(); err != nil {
			return nil, err
		}
	}
	normalizeEnums(&cfg)

	return &ParseResult{
		Config:       &cfg,
		SourceFormat: format,
		SourcePath:   path,
	}, nil
}

// normalizeEnums sorts variants by name and drops repeated names, keeping the
// first occurrence.
func normalizeEnums(cfg *Config) {
	for _, e := range cfg.Enums {
		if e == nil {
			continue
		}
		slices.SortStableFunc(e.Variants, func(a, b Variant) int {
			return strings.Compare(a.Name, b.Name)
		})
		e.Variants = slices.CompactFunc(e.Variants, func(a, b Variant) bool {
			return a.Name == b.Name
		})
	}
}

// Marshal encodes cfg as YAML or JSON. Unknown formats encode as YAML.
func Marshal(cfg *Config, format SourceFormat) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshaling to yaml: %w", err)
	}
	if format != SourceFormatJSON {
		return data, nil
	}

	// Round-trip through a generic value so inline extensions are kept in JSON.
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("config: re-decoding yaml: %w", err)
	}
	if generic == nil {
		generic = map[string]any{}
	}
	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: marshaling to json: %w", err)
	}
	return out, nil
}

// detectFormatFromPath detects the format from the file extension
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent detects the format from the leading byte
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

func syntheticPath(prefix string, format SourceFormat) string {
	if format == SourceFormatJSON {
		return prefix + ".json"
	}
	return prefix + ".yaml"
}
