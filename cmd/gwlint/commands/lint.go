package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erraggy/gwlint"
	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/internal/cliutil"
	"github.com/erraggy/gwlint/lint"
)

// ErrLintFailed is returned when the configuration does not pass linting.
var ErrLintFailed = errors.New("lint failed")

// LintFlags contains flags for the lint command
type LintFlags struct {
	Output  string
	AutoFix bool
	Default bool
	Format  string
	Quiet   bool
}

// SetupLintFlags creates and configures a FlagSet for the lint command.
// Returns the FlagSet and a LintFlags struct with bound flag variables.
func SetupLintFlags() (*flag.FlagSet, *LintFlags) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	flags := &LintFlags{}

	fs.StringVar(&flags.Output, "o", "", "write the linted configuration to this file (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "write the linted configuration to this file (default: stdout)")
	fs.BoolVar(&flags.AutoFix, "autofix", false, "rename non-conforming identifiers instead of reporting them")
	fs.BoolVar(&flags.Default, "default", false, "lint every category with its built-in style")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: gwlint lint [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Check the naming conventions of a gateway configuration.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nCategories (built-in style):\n")
		cliutil.Writef(fs.Output(), "  field      field names (camelCase)\n")
		cliutil.Writef(fs.Output(), "  type       type names (PascalCase)\n")
		cliutil.Writef(fs.Output(), "  enum       enum names (PascalCase)\n")
		cliutil.Writef(fs.Output(), "  enumValue  enum variant names (ALLCAPS)\n")
		cliutil.Writef(fs.Output(), "\nSettings are read from server.lint in the configuration. --default and\n")
		cliutil.Writef(fs.Output(), "--autofix switch the matching setting on for this run.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  gwlint lint gateway.yaml\n")
		cliutil.Writef(fs.Output(), "  gwlint lint --default gateway.yaml\n")
		cliutil.Writef(fs.Output(), "  gwlint lint --autofix -o fixed.yaml gateway.yaml\n")
		cliutil.Writef(fs.Output(), "  cat gateway.json | gwlint lint -q --autofix - > fixed.json\n")
		cliutil.Writef(fs.Output(), "  gwlint lint --format json gateway.yaml | jq '.issues'\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Configuration passed (renames applied in autofix mode)\n")
		cliutil.Writef(fs.Output(), "  1    Naming violations, a rename collision, or an unreadable configuration\n")
	}

	return fs, flags
}

// LintReport is the structured output of the lint command.
type LintReport struct {
	Configuration string         `json:"configuration" yaml:"configuration"`
	Valid         bool           `json:"valid" yaml:"valid"`
	Skipped       bool           `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	AutoFix       bool           `json:"autofix" yaml:"autofix"`
	Error         string         `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorCount    int            `json:"errorCount" yaml:"errorCount"`
	RenameCount   int            `json:"renameCount" yaml:"renameCount"`
	Renames       []RenameReport `json:"renames,omitempty" yaml:"renames,omitempty"`
	Issues        []IssueReport  `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// RenameReport is one applied rename.
type RenameReport struct {
	Category string `json:"category" yaml:"category"`
	Path     string `json:"path" yaml:"path"`
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
}

// IssueReport is one lint finding.
type IssueReport struct {
	Severity   string `json:"severity" yaml:"severity"`
	Path       string `json:"path" yaml:"path"`
	Message    string `json:"message" yaml:"message"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// HandleLint executes the lint command
func HandleLint(args []string) error {
	return runLint(args, os.Stdin, os.Stdout, os.Stderr)
}

func runLint(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupLintFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("lint command requires exactly one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	path := fs.Arg(0)
	if flags.Output != "" && path != StdinFilePath {
		if err := rejectOverwrite(flags.Output, path); err != nil {
			return err
		}
	}

	var source config.Option
	if path == StdinFilePath {
		source = config.WithReader(stdin)
	} else {
		source = config.WithFilePath(path)
	}
	parsed, err := config.ParseWithOptions(source)
	if err != nil {
		return fmt.Errorf("parsing configuration: %w", err)
	}

	var logger lint.Logger = lint.NopLogger{}
	if !flags.Quiet && flags.Format == FormatText {
		logger = lint.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, nil)))
	}

	result, err := lint.LintWithOptions(
		lint.WithParsed(*parsed),
		lint.WithSettings(mergeSettings(parsed.Config.Server.Lint, flags)),
		lint.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("linting configuration: %w", err)
	}

	if flags.Format != FormatText {
		if err := OutputStructured(stdout, buildLintReport(path, result), flags.Format); err != nil {
			return err
		}
		if !result.Valid {
			return ErrLintFailed
		}
		if flags.Output != "" {
			return writeConfig(stdout, flags.Output, result)
		}
		return nil
	}

	if !flags.Quiet {
		cliutil.Writef(stderr, "gwlint version: %s\n", gwlint.Version())
		cliutil.Writef(stderr, "Configuration: %s\n", FormatConfigPath(path))
	}

	// main prints the diagnostic.
	if !result.Valid {
		return result.Err
	}

	if !flags.Quiet {
		switch {
		case result.Skipped:
			cliutil.Writef(stderr, "✓ Linting disabled (no server.lint settings)\n")
		case result.HasRenames():
			cliutil.Writef(stderr, "✓ Applied %d rename(s)\n", result.RenameCount)
		default:
			cliutil.Writef(stderr, "✓ All identifiers follow their naming conventions\n")
		}
	}

	if result.AutoFix || flags.Output != "" {
		if err := writeConfig(stdout, flags.Output, result); err != nil {
			return err
		}
		if flags.Output != "" && !flags.Quiet {
			cliutil.Writef(stderr, "Output written to: %s\n", flags.Output)
		}
	}
	return nil
}

// mergeSettings switches on the settings requested by flags on top of the
// configuration's own lint block. Nil means linting stays disabled.
func mergeSettings(own *config.Lint, flags *LintFlags) *config.Lint {
	settings := own.DeepCopy()
	if !flags.Default && !flags.AutoFix {
		return settings
	}
	if settings == nil {
		settings = &config.Lint{}
	}
	settings.Default = settings.Default || flags.Default
	settings.AutoFix = settings.AutoFix || flags.AutoFix
	return settings
}

func writeConfig(stdout io.Writer, output string, result *lint.LintResult) error {
	data, err := config.Marshal(result.Config, result.SourceFormat)
	if err != nil {
		return fmt.Errorf("marshaling linted configuration: %w", err)
	}
	return cliutil.WriteOutput(stdout, output, data)
}

// rejectOverwrite refuses to write the output over the input file.
func rejectOverwrite(output, input string) error {
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	absInput, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("invalid input path %s: %w", input, err)
	}
	if absOutput == absInput {
		return fmt.Errorf("output file %s would overwrite input file %s", output, input)
	}
	return nil
}

func buildLintReport(path string, result *lint.LintResult) LintReport {
	report := LintReport{
		Configuration: FormatConfigPath(path),
		Valid:         result.Valid,
		Skipped:       result.Skipped,
		AutoFix:       result.AutoFix,
		ErrorCount:    result.ErrorCount,
		RenameCount:   result.RenameCount,
	}
	if result.Err != nil {
		report.Error = result.Err.Error()
	}
	for _, r := range result.Renames {
		report.Renames = append(report.Renames, RenameReport{
			Category: string(r.Category),
			Path:     r.Path(),
			From:     r.From,
			To:       r.To,
		})
	}
	for _, i := range result.Issues {
		report.Issues = append(report.Issues, IssueReport{
			Severity:   i.Severity.String(),
			Path:       i.Path,
			Message:    i.Message,
			Suggestion: i.Suggestion,
		})
	}
	return report
}
