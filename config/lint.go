package config

import (
	"github.com/erraggy/gwlint/gwerrors"
)

// TextCase selects the naming convention a lint category enforces.
type TextCase string

const (
	// TextCaseCamel enforces camelCase
	TextCaseCamel TextCase = "camelCase"
	// TextCasePascal enforces PascalCase
	TextCasePascal TextCase = "pascalCase"
	// TextCaseSnake enforces snake_case
	TextCaseSnake TextCase = "snakeCase"
	// TextCaseScreamingSnake enforces SCREAMING_SNAKE_CASE
	TextCaseScreamingSnake TextCase = "screamingSnakeCase"
	// TextCaseAllCaps enforces ALLCAPS (rendered like SCREAMING_SNAKE_CASE)
	TextCaseAllCaps TextCase = "allCaps"
)

// ValidTextCases returns all valid text case strings
func ValidTextCases() []string {
	return []string{
		string(TextCaseCamel),
		string(TextCasePascal),
		string(TextCaseSnake),
		string(TextCaseScreamingSnake),
		string(TextCaseAllCaps),
	}
}

// IsValid reports whether t is one of the known text cases.
func (t TextCase) IsValid() bool {
	switch t {
	case TextCaseCamel, TextCasePascal, TextCaseSnake, TextCaseScreamingSnake, TextCaseAllCaps:
		return true
	default:
		return false
	}
}

// Ptr returns a pointer to t, for building Lint literals.
func (t TextCase) Ptr() *TextCase {
	return &t
}

// Lint configures naming-convention linting.
type Lint struct {
	// Default applies each category's built-in style when it has no override
	Default bool `yaml:"default,omitempty" json:"default,omitempty"`
	// AutoFix renames non-conforming identifiers instead of reporting them
	AutoFix bool `yaml:"autoFix,omitempty" json:"autoFix,omitempty"`
	// Field overrides the style of field names
	Field *TextCase `yaml:"field,omitempty" json:"field,omitempty"`
	// Type overrides the style of type names
	Type *TextCase `yaml:"type,omitempty" json:"type,omitempty"`
	// Enum overrides the style of enum names
	Enum *TextCase `yaml:"enum,omitempty" json:"enum,omitempty"`
	// EnumValue overrides the style of enum variant names
	EnumValue *TextCase `yaml:"enumValue,omitempty" json:"enumValue,omitempty"`
}

// Validate checks that every override names a known text case.
func (l *Lint) Validate() error {
	overrides := []struct {
		option string
		value  *TextCase
	}{
		{"server.lint.field", l.Field},
		{"server.lint.type", l.Type},
		{"server.lint.enum", l.Enum},
		{"server.lint.enumValue", l.EnumValue},
	}
	for _, o := range overrides {
		if o.value != nil && !o.value.IsValid() {
			return &gwerrors.ConfigError{
				Option:  o.option,
				Value:   string(*o.value),
				Message: "unknown case style, expected one of camelCase, pascalCase, snakeCase, screamingSnakeCase, allCaps",
			}
		}
	}
	return nil
}
