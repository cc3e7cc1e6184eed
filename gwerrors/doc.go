// Package gwerrors provides structured error types for the gwlint library.
//
// Import path: github.com/erraggy/gwlint/gwerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a configuration that could not be read,
// a configuration that violates its naming conventions, and an autofix that
// refused to overwrite an existing identifier.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures of a gateway configuration
//   - [LintError]: One or more naming-convention violations within a single category
//   - [RenameCollisionError]: An autofix rename whose target name is already taken
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrLint]: Matches any [LintError]
//   - [ErrRenameCollision]: Matches any [RenameCollisionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	cfg, err := lint.Lint(parsed)
//	if errors.Is(err, gwerrors.ErrRenameCollision) {
//	    // autofix would have destroyed an existing entry; the config must be edited by hand
//	}
//
//	var lintErr *gwerrors.LintError
//	if errors.As(err, &lintErr) {
//	    for _, v := range lintErr.Violations {
//	        fmt.Println(v)
//	    }
//	}
package gwerrors
