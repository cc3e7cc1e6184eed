// Package gwlint checks and fixes the naming conventions of declarative
// API-gateway configurations before they are compiled.
//
// A gateway configuration declares the types, fields, and enums the gateway
// serves. gwlint enforces a naming style per category of identifier and can
// rename non-conforming identifiers in place, logging every rename.
//
// # Overview
//
// The library consists of these packages:
//
//   - config: the configuration data model, decoding from YAML or JSON, and encoding
//   - lint: the lint engine (report and autofix modes)
//   - valid: an accumulating validation result used to chain the lint rules
//   - gwerrors: error types shared by all packages
//
// # Quick Start
//
// Decode a configuration and lint it:
//
//	parsed, err := config.ParseWithOptions(config.WithFilePath("gateway.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err := lint.Lint(parsed.Config)
//	if err != nil {
//	    log.Fatal(err) // e.g. "lint failed for field user_name, expected userName"
//	}
//
// Linting is controlled by the server.lint block of the configuration:
//
//	server:
//	  lint:
//	    default: true      # field camelCase, type PascalCase, enum PascalCase, enumValue ALLCAPS
//	    autoFix: true      # rename instead of failing
//	    enumValue: snakeCase
//
// # Command-Line Tool
//
// The gwlint command wraps the library:
//
//	gwlint lint gateway.yaml
//	gwlint lint --autofix -o fixed.yaml gateway.yaml
//	gwlint case -s pascalCase user_profile
//	gwlint mcp
//
// The mcp command serves the lint engine to MCP clients over stdio.
package gwlint
