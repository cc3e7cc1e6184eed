// Package config defines the in-memory gateway configuration that gwlint
// checks, and reads it from YAML or JSON.
//
// A [Config] holds the schema's named types (each with its fields), its enums
// (each with a set of variants), and server-level settings. The optional
// server.lint block ([Lint]) controls naming-convention linting:
//
//	server:
//	  lint:
//	    default: true      # apply every category's default style
//	    autoFix: true      # rename instead of report
//	    field: camelCase   # per-category overrides
//	    enumValue: allCaps
//	types:
//	  User:
//	    fields:
//	      userName: {type: String}
//
// Field, type, and enum metadata that gwlint does not understand is kept in
// Extensions and written back out unchanged.
//
// # Parsing
//
//	result, err := config.ParseWithOptions(config.WithFilePath("gateway.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Config.Types))
package config
