package lint

import (
	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/gwerrors"
	"github.com/erraggy/gwlint/internal/naming"
)

// Category is one naming domain of a configuration.
type Category string

const (
	// CategoryField covers the field names of every type
	CategoryField Category = "field"
	// CategoryType covers type names
	CategoryType Category = "type"
	// CategoryEnum covers enum names
	CategoryEnum Category = "enum"
	// CategoryEnumValue covers the variant names of every enum
	CategoryEnumValue Category = "enumValue"
)

// Categories returns every category in the order the linter runs them.
func Categories() []Category {
	return []Category{CategoryField, CategoryType, CategoryEnum, CategoryEnumValue}
}

// Label is how the category is named in diagnostics and audit messages.
func (c Category) Label() string {
	if c == CategoryEnumValue {
		return "enum variant"
	}
	return string(c)
}

// renameLabel is how the category is named in rename audit messages.
func (c Category) renameLabel() string {
	if c == CategoryEnumValue {
		return "variant"
	}
	return string(c)
}

// defaultStyles is the style each category enforces when lint.default is set
// and the category has no override.
var defaultStyles = map[Category]naming.Style{
	CategoryField:     naming.Camel,
	CategoryType:      naming.Pascal,
	CategoryEnum:      naming.Pascal,
	CategoryEnumValue: naming.AllCaps,
}

var textCaseStyles = map[config.TextCase]naming.Style{
	config.TextCaseCamel:          naming.Camel,
	config.TextCasePascal:         naming.Pascal,
	config.TextCaseSnake:          naming.Snake,
	config.TextCaseScreamingSnake: naming.ScreamingSnake,
	config.TextCaseAllCaps:        naming.AllCaps,
}

func (c Category) override(l *config.Lint) *config.TextCase {
	switch c {
	case CategoryField:
		return l.Field
	case CategoryType:
		return l.Type
	case CategoryEnum:
		return l.Enum
	case CategoryEnumValue:
		return l.EnumValue
	default:
		return nil
	}
}

// resolveStyle returns the style a category enforces under l, and false when
// the category is not linted at all.
func resolveStyle(l *config.Lint, c Category) (naming.Style, bool) {
	if tc := c.override(l); tc != nil {
		style, ok := textCaseStyles[*tc]
		return style, ok
	}
	if l.Default {
		style, ok := defaultStyles[c]
		return style, ok
	}
	return 0, false
}

// ConvertName renders name in the text case tc, the same way autofix would.
// The result is empty when name has no word characters.
func ConvertName(name string, tc config.TextCase) (string, error) {
	style, ok := textCaseStyles[tc]
	if !ok {
		return "", &gwerrors.ConfigError{
			Option:  "case",
			Value:   string(tc),
			Message: "unknown case style, expected one of camelCase, pascalCase, snakeCase, screamingSnakeCase, allCaps",
		}
	}
	return naming.Convert(name, style), nil
}
