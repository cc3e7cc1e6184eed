// Package lint checks and fixes the naming conventions of a gateway
// configuration before it is compiled.
//
// Four categories of identifiers are linted, always in this order:
//
//   - field: the field names of every type (default camelCase)
//   - type: type names (default PascalCase)
//   - enum: enum names (default PascalCase)
//   - enumValue: enum variant names (default ALLCAPS)
//
// Linting is enabled by the server.lint block of the configuration. A
// configuration without one passes through untouched. Within the block,
// default turns on every category with its built-in style, and the field,
// type, enum, and enumValue keys override the style of a single category
// (and enable it even when default is off).
//
// # Report and Autofix Modes
//
// In report mode (autoFix false) every non-conforming identifier of a
// category is collected into one diagnostic:
//
//	lint failed for field user_name, expected userName
//	lint failed for field created_at, expected createdAt
//
// The first category with violations stops the run; later categories are not
// checked. In autofix mode the identifiers are renamed instead, and every
// rename is logged at warn level as an audit trail. A rename whose target
// already exists, or that would merge two identifiers into one, is refused
// with a rename collision and nothing in that category is renamed.
//
// The input configuration is never modified; renames are applied to a deep
// copy which is returned in the result.
//
// # Usage
//
//	cfg, err := lint.Lint(parsed.Config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For more control, use [LintWithOptions]:
//
//	result, err := lint.LintWithOptions(
//	    lint.WithFilePath("gateway.yaml"),
//	    lint.WithLogger(lint.NewSlogAdapter(slog.Default())),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Valid {
//	    fmt.Println(result.Err)
//	}
//	for _, issue := range result.Issues {
//	    fmt.Println(issue)
//	}
//
// Renaming a type or enum does not rewrite the places that refer to it, such
// as field types or root schema entries.
package lint
