package gwerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a configuration could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrLint indicates a naming-convention violation.
	ErrLint = errors.New("lint error")

	// ErrRenameCollision indicates an autofix rename would overwrite an existing name.
	ErrRenameCollision = errors.New("rename collision")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a gateway configuration.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LintError reports every naming-convention violation found in one category.
// Violations are kept in discovery order and the message is exactly those
// violations joined by newlines, so it can be surfaced to operators verbatim.
type LintError struct {
	// Category is the naming domain that failed (e.g. "field", "type")
	Category string
	// Violations holds one line per non-conforming identifier
	Violations []string
}

// Error returns the violations joined by newlines.
func (e *LintError) Error() string {
	if len(e.Violations) == 0 {
		if e.Category != "" {
			return "lint error for " + e.Category
		}
		return "lint error"
	}
	return strings.Join(e.Violations, "\n")
}

// Is reports whether target matches this error type.
func (e *LintError) Is(target error) bool {
	return target == ErrLint
}

// RenameCollisionError is returned when autofix would rename an identifier onto
// a name that is already present in the same namespace, or when two identifiers
// would converge on the same new name. It is fatal even in autofix mode.
type RenameCollisionError struct {
	// Category is the naming domain of the rename
	Category string
	// Owner is the enclosing type or enum for nested namespaces (empty for top-level names)
	Owner string
	// From is the identifier being renamed
	From string
	// To is the conforming name it would be renamed to
	To string
	// Conflict is the identifier already holding, or also claiming, To
	Conflict string
}

// Error returns a human-readable error message.
func (e *RenameCollisionError) Error() string {
	msg := fmt.Sprintf("rename collision: %s %s -> %s", e.Category, e.From, e.To)
	if e.Owner != "" {
		msg += " in " + e.Owner
	}
	if e.Conflict == e.To {
		return msg + ": " + e.To + " already exists"
	}
	return msg + ": conflicts with " + e.Conflict
}

// Is reports whether target matches this error type.
func (e *RenameCollisionError) Is(target error) bool {
	return target == ErrRenameCollision
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and unknown enum values.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
