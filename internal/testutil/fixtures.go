// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/gwlint/config"
)

// NewUserProfileConfig returns a configuration whose only type and field both
// violate the default styles: type user_profile with field user_name.
func NewUserProfileConfig(autoFix bool) *config.Config {
	return &config.Config{
		Server: config.Server{
			Port: 8080,
			Lint: &config.Lint{Default: true, AutoFix: autoFix},
		},
		Types: map[string]*config.Type{
			"user_profile": {
				Fields: map[string]*config.Field{
					"user_name": {Type: "Int"},
				},
			},
		},
	}
}

// NewCollisionConfig returns a configuration where autofix would rename field
// foo_bar of type T onto its existing sibling fooBar.
func NewCollisionConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Lint: &config.Lint{Default: true, AutoFix: true}},
		Types: map[string]*config.Type{
			"T": {
				Fields: map[string]*config.Field{
					"foo_bar": {Type: "Int"},
					"fooBar":  {Type: "String"},
				},
			},
		},
	}
}

// NewConformingConfig returns a configuration in which every identifier
// already follows the default styles.
func NewConformingConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Lint: &config.Lint{Default: true}},
		Schema: config.RootSchema{Query: "Query"},
		Types: map[string]*config.Type{
			"Query": {
				Fields: map[string]*config.Field{
					"users": {Type: "User", List: true, Args: map[string]*config.Field{"first": {Type: "Int"}}},
				},
			},
			"User": {
				Fields: map[string]*config.Field{
					"id":        {Type: "ID", Required: true},
					"userName":  {Type: "String"},
					"createdAt": {Type: "String"},
				},
			},
		},
		Enums: map[string]*config.Enum{
			"Status": {Variants: []config.Variant{{Name: "ACTIVE"}, {Name: "ON_HOLD"}}},
		},
	}
}

// WriteTempYAML marshals a configuration to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, cfg *config.Config) string {
	t.Helper()
	return writeTemp(t, cfg, config.SourceFormatYAML, "gateway.yaml")
}

// WriteTempJSON marshals a configuration to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, cfg *config.Config) string {
	t.Helper()
	return writeTemp(t, cfg, config.SourceFormatJSON, "gateway.json")
}

func writeTemp(t *testing.T, cfg *config.Config, format config.SourceFormat, name string) string {
	t.Helper()

	data, err := config.Marshal(cfg, format)
	if err != nil {
		t.Fatalf("Failed to marshal configuration to %s: %v", format, err)
	}

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		t.Fatalf("Failed to write temporary %s file: %v", format, err)
	}

	return tmpFile
}
