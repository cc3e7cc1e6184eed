package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/lint"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertCaseInput struct {
	Identifiers []string `json:"identifiers" jsonschema:"Identifiers to convert"`
	Style       string   `json:"style"       jsonschema:"Target style: camelCase, pascalCase, snakeCase, screamingSnakeCase, or allCaps"`
}

type convertedName struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
}

type convertCaseOutput struct {
	Style   string          `json:"style"`
	Results []convertedName `json:"results,omitempty"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	if len(input.Identifiers) == 0 {
		return errResult(fmt.Errorf("at least one identifier must be provided")), convertCaseOutput{}, nil
	}
	if len(input.Identifiers) > cfg.MaxLimit {
		return errResult(fmt.Errorf("too many identifiers: %d (max %d)", len(input.Identifiers), cfg.MaxLimit)), convertCaseOutput{}, nil
	}

	tc := config.TextCase(input.Style)
	output := convertCaseOutput{
		Style:   input.Style,
		Results: makeSlice[convertedName](len(input.Identifiers)),
	}
	for _, id := range input.Identifiers {
		out, err := lint.ConvertName(id, tc)
		if err != nil {
			return errResult(err), convertCaseOutput{}, nil
		}
		output.Results = append(output.Results, convertedName{
			Input:   id,
			Output:  out,
			Changed: out != "" && out != id,
		})
	}
	return nil, output, nil
}
