package lint

import (
	"testing"

	"github.com/erraggy/gwlint/config"
	"github.com/erraggy/gwlint/gwerrors"
	"github.com/erraggy/gwlint/internal/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, []Category{CategoryField, CategoryType, CategoryEnum, CategoryEnumValue}, Categories())
	for i, rl := range rules {
		assert.Equal(t, Categories()[i], rl.category)
	}
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "field", CategoryField.Label())
	assert.Equal(t, "type", CategoryType.Label())
	assert.Equal(t, "enum", CategoryEnum.Label())
	assert.Equal(t, "enum variant", CategoryEnumValue.Label())
	assert.Equal(t, "field", CategoryField.renameLabel())
	assert.Equal(t, "variant", CategoryEnumValue.renameLabel())
}

func TestResolveStyle(t *testing.T) {
	tests := []struct {
		name      string
		lint      *config.Lint
		category  Category
		wantStyle naming.Style
		wantOK    bool
	}{
		{"default field", &config.Lint{Default: true}, CategoryField, naming.Camel, true},
		{"default type", &config.Lint{Default: true}, CategoryType, naming.Pascal, true},
		{"default enum", &config.Lint{Default: true}, CategoryEnum, naming.Pascal, true},
		{"default enum value", &config.Lint{Default: true}, CategoryEnumValue, naming.AllCaps, true},
		{"disabled", &config.Lint{}, CategoryField, 0, false},
		{"override without default", &config.Lint{Enum: config.TextCaseSnake.Ptr()}, CategoryEnum, naming.Snake, true},
		{"override beats default", &config.Lint{Default: true, EnumValue: config.TextCasePascal.Ptr()}, CategoryEnumValue, naming.Pascal, true},
		{"override applies to one category", &config.Lint{Field: config.TextCaseSnake.Ptr()}, CategoryType, 0, false},
		{"screaming snake", &config.Lint{Type: config.TextCaseScreamingSnake.Ptr()}, CategoryType, naming.ScreamingSnake, true},
		{"all caps", &config.Lint{Field: config.TextCaseAllCaps.Ptr()}, CategoryField, naming.AllCaps, true},
		{"camel", &config.Lint{Type: config.TextCaseCamel.Ptr()}, CategoryType, naming.Camel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, ok := resolveStyle(tt.lint, tt.category)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantStyle, style)
			}
		})
	}
}

func TestConvertName(t *testing.T) {
	tests := []struct {
		name string
		tc   config.TextCase
		want string
	}{
		{"user_profile", config.TextCasePascal, "UserProfile"},
		{"UserProfile", config.TextCaseCamel, "userProfile"},
		{"userProfile", config.TextCaseSnake, "user_profile"},
		{"userProfile", config.TextCaseScreamingSnake, "USER_PROFILE"},
		{"darkRed", config.TextCaseAllCaps, "DARK_RED"},
		{"--", config.TextCaseCamel, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+string(tt.tc), func(t *testing.T) {
			got, err := ConvertName(tt.name, tt.tc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ConvertName("x", config.TextCase("kebabCase"))
	require.Error(t, err)
	assert.ErrorIs(t, err, gwerrors.ErrConfig)
}
