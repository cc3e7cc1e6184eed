package lint

import (
	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/gwerrors"
	"github.com/erraggy/gwlint/internal/options"
)

// Option is a function that configures a lint operation
type Option func(*lintConfig) error

// lintConfig holds configuration for a lint operation
type lintConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	cfg      *config.Config
	parsed   *config.ParseResult

	logger   Logger
	settings *config.Lint
}

// LintWithOptions lints a gateway configuration using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// Example:
//
//	result, err := lint.LintWithOptions(
//	    lint.WithFilePath("gateway.yaml"),
//	    lint.WithLogger(lint.NewSlogAdapter(slog.Default())),
//	)
func LintWithOptions(opts ...Option) (*LintResult, error) {
	lc, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	l := &Linter{Logger: lc.logger, Settings: lc.settings}

	parsed := lc.parsed
	if lc.filePath != nil {
		parsed, err = config.ParseWithOptions(config.WithFilePath(*lc.filePath))
		if err != nil {
			return nil, err
		}
	}
	if parsed == nil {
		return l.Lint(lc.cfg)
	}

	result, err := l.Lint(parsed.Config)
	if err != nil {
		return nil, err
	}
	result.SourcePath = parsed.SourcePath
	result.SourceFormat = parsed.SourceFormat
	return result, nil
}

// WithFilePath reads and decodes the configuration at path
func WithFilePath(path string) Option {
	return func(cfg *lintConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithConfig lints an already decoded configuration
func WithConfig(c *config.Config) Option {
	return func(cfg *lintConfig) error {
		if c == nil {
			return &gwerrors.ConfigError{Option: "config", Message: "configuration cannot be nil"}
		}
		cfg.cfg = c
		return nil
	}
}

// WithParsed lints the configuration of a parse result, keeping its source
// path and format on the lint result
func WithParsed(result config.ParseResult) Option {
	return func(cfg *lintConfig) error {
		if result.Config == nil {
			return &gwerrors.ConfigError{Option: "parsed", Message: "parse result has no configuration"}
		}
		cfg.parsed = &result
		return nil
	}
}

// WithLogger sets the logger that receives the rename audit trail
func WithLogger(l Logger) Option {
	return func(cfg *lintConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSettings replaces the configuration's server.lint block for this run.
// A nil value keeps the block from the configuration.
func WithSettings(s *config.Lint) Option {
	return func(cfg *lintConfig) error {
		cfg.settings = s
		return nil
	}
}

func applyOptions(opts ...Option) (*lintConfig, error) {
	cfg := &lintConfig{logger: NopLogger{}}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithConfig, or WithParsed)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.cfg != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}
