package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/internal/fileutil"
	"github.com/erraggy/gwlint/lint"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type lintInput struct {
	Config          configInput `json:"config"                     jsonschema:"The gateway configuration to lint"`
	Default         *bool       `json:"default,omitempty"          jsonschema:"Lint every category with its built-in style"`
	AutoFix         *bool       `json:"autofix,omitempty"          jsonschema:"Rename non-conforming identifiers instead of reporting them"`
	DryRun          bool        `json:"dry_run,omitempty"          jsonschema:"Preview renames without returning or writing the corrected configuration"`
	IncludeDocument bool        `json:"include_document,omitempty" jsonschema:"Include the corrected configuration in output"`
	Output          string      `json:"output,omitempty"           jsonschema:"File path to write the corrected configuration"`
	Offset          int         `json:"offset,omitempty"           jsonschema:"Skip the first N issues and renames (for pagination)"`
	Limit           int         `json:"limit,omitempty"            jsonschema:"Maximum number of issues and renames to return (default 100)"`
}

type renameApplied struct {
	Category string `json:"category"`
	Path     string `json:"path"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type lintIssue struct {
	Severity   string `json:"severity"`
	Category   string `json:"category"`
	Path       string `json:"path"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

type lintOutput struct {
	Valid       bool            `json:"valid"`
	Skipped     bool            `json:"skipped,omitempty"`
	AutoFix     bool            `json:"autofix"`
	Error       string          `json:"error,omitempty"`
	ErrorCount  int             `json:"error_count"`
	RenameCount int             `json:"rename_count"`
	Returned    int             `json:"returned"`
	Renames     []renameApplied `json:"renames,omitempty"`
	Issues      []lintIssue     `json:"issues,omitempty"`
	WrittenTo   string          `json:"written_to,omitempty"`
	Document    string          `json:"document,omitempty"`
}

func handleLint(_ context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	parsed, err := input.Config.resolve()
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	result, err := lint.LintWithOptions(
		lint.WithParsed(*parsed),
		lint.WithSettings(effectiveSettings(parsed.Config.Server.Lint, input)),
	)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	output := lintOutput{
		Valid:       result.Valid,
		Skipped:     result.Skipped,
		AutoFix:     result.AutoFix,
		ErrorCount:  result.ErrorCount,
		RenameCount: result.RenameCount,
	}
	if result.Err != nil {
		output.Error = result.Err.Error()
	}

	output.Renames = makeSlice[renameApplied](len(result.Renames))
	for _, r := range result.Renames {
		output.Renames = append(output.Renames, renameApplied{
			Category: string(r.Category),
			Path:     r.Path(),
			From:     r.From,
			To:       r.To,
		})
	}
	output.Issues = makeSlice[lintIssue](len(result.Issues))
	for _, i := range result.Issues {
		output.Issues = append(output.Issues, lintIssue{
			Severity:   i.Severity.String(),
			Category:   i.Category,
			Path:       i.Path,
			Message:    i.Message,
			Suggestion: i.Suggestion,
		})
	}

	output.Renames = paginate(output.Renames, input.Offset, input.Limit)
	output.Issues = paginate(output.Issues, input.Offset, input.Limit)
	output.Returned = len(output.Issues)

	needsDocument := result.Valid && !input.DryRun && (input.Output != "" || input.IncludeDocument)
	if needsDocument {
		data, err := config.Marshal(result.Config, result.SourceFormat)
		if err != nil {
			return errResult(err), lintOutput{}, nil
		}
		if input.Output != "" {
			if err := os.WriteFile(input.Output, data, fileutil.OwnerReadWrite); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), lintOutput{}, nil
			}
			output.WrittenTo = input.Output
		}
		if input.IncludeDocument {
			output.Document = string(data)
		}
	}

	return nil, output, nil
}

// effectiveSettings layers the tool call's flags, then the GWLINT_LINT_*
// defaults, over the configuration's own lint block. Flags only switch
// settings on; nil is returned when nothing enables linting.
func effectiveSettings(own *config.Lint, input lintInput) *config.Lint {
	def := cfg.LintDefault
	if input.Default != nil {
		def = *input.Default
	}
	fix := cfg.LintAutoFix
	if input.AutoFix != nil {
		fix = *input.AutoFix
	}

	settings := own.DeepCopy()
	if !def && !fix {
		return settings
	}
	if settings == nil {
		settings = &config.Lint{}
	}
	settings.Default = settings.Default || def
	settings.AutoFix = settings.AutoFix || fix
	return settings
}
