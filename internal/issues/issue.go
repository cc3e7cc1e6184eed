// Package issues provides a unified issue type for lint findings.
package issues

import (
	"fmt"
	"strings"

	"github.com/erraggy/gwlint/internal/severity"
)

// Issue represents a single lint finding.
type Issue struct {
	// Path is the dotted path to the identifier (e.g., "types.User.fields.user_name")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Category is the naming domain the identifier belongs to (field, type, enum, enum variant)
	Category string
	// Value is the offending identifier
	Value string
	// Suggestion is the conforming name, if one exists
	Suggestion string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Suggestion != "" && i.Suggestion != i.Value {
		result += fmt.Sprintf("\n    Suggestion: %s", i.Suggestion)
	}
	return result
}

// FormatPath formats a dotted path from segments.
func FormatPath(segments ...string) string {
	return strings.Join(segments, ".")
}

// CountBySeverity returns how many issues have the given severity.
func CountBySeverity(list []Issue, s severity.Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity == s {
			n++
		}
	}
	return n
}
