package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userProfileYAML = `server:
  port: 8080
  lint:
    default: true
types:
  user_profile:
    fields:
      user_name:
        type: Int
`

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetupLintFlags(t *testing.T) {
	fs, flags := SetupLintFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Output)
		assert.False(t, flags.AutoFix)
		assert.False(t, flags.Default)
		assert.Equal(t, FormatText, flags.Format)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "fixed.yaml", "--autofix", "--default", "--format", "json", "-q", "gateway.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "fixed.yaml", flags.Output)
		assert.True(t, flags.AutoFix)
		assert.True(t, flags.Default)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "gateway.yaml", fs.Arg(0))
	})
}

func TestHandleLint_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, runLint(nil, nil, &stdout, &stderr))
	assert.NoError(t, runLint([]string{"--help"}, nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: gwlint lint")
	assert.Error(t, runLint([]string{"--format", "xml", "a.yaml"}, nil, &stdout, &stderr))
}

func TestRunLint_ReportMode(t *testing.T) {
	path := writeTempConfig(t, "gateway.yaml", userProfileYAML)

	var stdout, stderr bytes.Buffer
	err := runLint([]string{path}, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, "lint failed for field user_name, expected userName", err.Error())
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Configuration: ")
	assert.NotContains(t, stderr.String(), "lint failed for", "the diagnostic is printed once, by main")
	assert.NotContains(t, stderr.String(), "expected UserProfile")
}

func TestRunLint_AutoFixStdout(t *testing.T) {
	path := writeTempConfig(t, "gateway.yaml", userProfileYAML)

	var stdout, stderr bytes.Buffer
	require.NoError(t, runLint([]string{"--autofix", path}, nil, &stdout, &stderr))

	parsed, err := config.ParseWithOptions(config.WithBytes(stdout.Bytes()))
	require.NoError(t, err)
	require.Contains(t, parsed.Config.Types, "UserProfile")
	assert.Contains(t, parsed.Config.Types["UserProfile"].Fields, "userName")
	assert.Equal(t, 8080, parsed.Config.Server.Port)

	log := stderr.String()
	assert.Contains(t, log, "level=WARN")
	assert.Contains(t, log, "field user_name is renamed to userName")
	assert.Contains(t, log, "type user_profile is renamed to UserProfile")
	assert.Contains(t, log, "Applied 2 rename(s)")
}

func TestRunLint_AutoFixFromStdinQuiet(t *testing.T) {
	input := `{"server":{"lint":{"default":true,"autoFix":true}},"enums":{"order_status":{"variants":[{"name":"open"}]}}}`

	var stdout, stderr bytes.Buffer
	require.NoError(t, runLint([]string{"-q", "-"}, strings.NewReader(input), &stdout, &stderr))
	assert.Empty(t, stderr.String())

	var out map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out), "JSON input keeps JSON output")
	enums := out["enums"].(map[string]any)
	assert.Contains(t, enums, "OrderStatus")
}

func TestRunLint_OutputFile(t *testing.T) {
	path := writeTempConfig(t, "gateway.yaml", userProfileYAML)
	out := filepath.Join(filepath.Dir(path), "fixed.yaml")

	var stdout, stderr bytes.Buffer
	require.NoError(t, runLint([]string{"--autofix", "-o", out, path}, nil, &stdout, &stderr))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "UserProfile")
	assert.Contains(t, stderr.String(), "Output written to")
}

func TestRunLint_RejectsOverwritingInput(t *testing.T) {
	path := writeTempConfig(t, "gateway.yaml", userProfileYAML)

	var stdout, stderr bytes.Buffer
	err := runLint([]string{"--autofix", "-o", path, path}, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestRunLint_StructuredReport(t *testing.T) {
	path := writeTempConfig(t, "gateway.yaml", userProfileYAML)

	var stdout, stderr bytes.Buffer
	err := runLint([]string{"--format", "json", path}, nil, &stdout, &stderr)
	require.ErrorIs(t, err, ErrLintFailed)

	var report LintReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.False(t, report.Valid)
	assert.Equal(t, path, report.Configuration)
	assert.Equal(t, 1, report.ErrorCount)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "error", report.Issues[0].Severity)
	assert.Equal(t, "userName", report.Issues[0].Suggestion)
	assert.Empty(t, stderr.String(), "structured output keeps stderr clean")
}

func TestRunLint_StructuredAutoFix(t *testing.T) {
	path := writeTempConfig(t, "gateway.yaml", userProfileYAML)

	var stdout, stderr bytes.Buffer
	require.NoError(t, runLint([]string{"--format", "yaml", "--autofix", path}, nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "valid: true")
	assert.Contains(t, stdout.String(), "renameCount: 2")
	assert.Contains(t, stdout.String(), "to: UserProfile")
}

func TestRunLint_Collision(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.NewCollisionConfig())

	var stdout, stderr bytes.Buffer
	err := runLint([]string{path}, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rename collision")
	assert.Empty(t, stdout.String(), "nothing is written when autofix is refused")
}

func TestRunLint_NoSettings(t *testing.T) {
	path := writeTempConfig(t, "gateway.yaml", "types:\n  user_profile: {}\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, runLint([]string{path}, nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Linting disabled")
	assert.Empty(t, stdout.String())

	stderr.Reset()
	err := runLint([]string{"--default", path}, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, "lint failed for type user_profile, expected UserProfile", err.Error())
}

func TestRunLint_ParseError(t *testing.T) {
	path := writeTempConfig(t, "gateway.yaml", "types: [unclosed\n")

	var stdout, stderr bytes.Buffer
	err := runLint([]string{path}, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing configuration")
}

func TestMergeSettings(t *testing.T) {
	assert.Nil(t, mergeSettings(nil, &LintFlags{}))

	s := mergeSettings(nil, &LintFlags{AutoFix: true})
	require.NotNil(t, s)
	assert.True(t, s.AutoFix)
	assert.False(t, s.Default)

	own := &config.Lint{Field: config.TextCaseSnake.Ptr()}
	s = mergeSettings(own, &LintFlags{Default: true})
	assert.True(t, s.Default)
	assert.Equal(t, config.TextCaseSnake, *s.Field)
	assert.False(t, own.Default, "the configuration's block is not modified")
}
