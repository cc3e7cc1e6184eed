// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes gwlint capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/gwlint"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `gwlint MCP server: checks and fixes identifier naming conventions in API-gateway configurations.

Configuration: defaults are configurable via GWLINT_* environment variables set in your MCP client config.

Key settings:
- GWLINT_CACHE_FILE_TTL (default: 15m): cache TTL for configuration files
- GWLINT_CACHE_ENABLED (default: true): disable configuration caching entirely
- GWLINT_RESULT_LIMIT (default: 100): default number of issues and renames returned
- GWLINT_LINT_DEFAULT (default: false): lint every category with its built-in style
- GWLINT_LINT_AUTOFIX (default: false): rename instead of reporting

Caching: decoded configurations are cached per session. File entries use path+mtime as key (auto-invalidated on change).`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		parseCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "gwlint", Version: gwlint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint",
		Description: "Check the naming conventions of an API-gateway configuration (field, type, enum, and enum variant names). Uses the server.lint block of the configuration; set default or autofix to enable them for this call. In report mode returns valid=false with every violation of the first failing category. In autofix mode returns the renames applied; use dry_run=true to preview them, include_document to get the corrected configuration inline, or output to write it to a file. Use offset/limit to paginate through issues and renames.",
	}, handleLint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Render identifiers in a naming style (camelCase, pascalCase, snakeCase, screamingSnakeCase, allCaps) exactly as lint autofix would rename them.",
	}, handleConvertCase)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns a nil slice for n == 0 so empty results are omitted
// from JSON output.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// so internal directory structure is not reported to MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
