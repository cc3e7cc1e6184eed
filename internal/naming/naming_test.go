package naming

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: nil},
		{name: "only separators", input: "__-", want: nil},
		{name: "single word", input: "user", want: []string{"user"}},
		{name: "snake_case", input: "user_profile", want: []string{"user", "profile"}},
		{name: "kebab-case", input: "api-client", want: []string{"api", "client"}},
		{name: "camelCase", input: "userName", want: []string{"user", "name"}},
		{name: "PascalCase", input: "UserName", want: []string{"user", "name"}},
		{name: "SCREAMING_SNAKE", input: "USER_NAME", want: []string{"user", "name"}},
		{name: "leading acronym", input: "APIClient", want: []string{"api", "client"}},
		{name: "trailing acronym", input: "userID", want: []string{"user", "id"}},
		{name: "all caps word", input: "HTTP", want: []string{"http"}},
		{name: "letter to digit is not a boundary", input: "v2api", want: []string{"v2api"}},
		{name: "digit to capitalized word is a boundary", input: "user2Name", want: []string{"user2", "name"}},
		{name: "digit inside upper run", input: "V1BETA", want: []string{"v1beta"}},
		{name: "digit inside acronym", input: "OAUTH2TOKEN", want: []string{"oauth2token"}},
		{name: "upper pair before digit", input: "XY2", want: []string{"xy2"}},
		{name: "screaming word with digit", input: "B_ZZ1XZ", want: []string{"b", "zz1xz"}},
		{name: "leading underscore", input: "_private", want: []string{"private"}},
		{name: "double underscore", input: "double__under", want: []string{"double", "under"}},
		{name: "mixed separators", input: "get_user-by_id", want: []string{"get", "user", "by", "id"}},
		{name: "unicode", input: "überUser", want: []string{"über", "user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input), "Words(%q)", tt.input)
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		input string
		style Style
		want  string
	}{
		{"user_name", Camel, "userName"},
		{"UserName", Camel, "userName"},
		{"USER_NAME", Camel, "userName"},
		{"userName", Camel, "userName"},
		{"user_profile", Pascal, "UserProfile"},
		{"userProfile", Pascal, "UserProfile"},
		{"api-client", Pascal, "ApiClient"},
		{"APIClient", Pascal, "ApiClient"},
		{"UserProfile", Snake, "user_profile"},
		{"userID", Snake, "user_id"},
		{"user-profile", Snake, "user_profile"},
		{"activeUser", ScreamingSnake, "ACTIVE_USER"},
		{"active_user", AllCaps, "ACTIVE_USER"},
		{"ACTIVE", AllCaps, "ACTIVE"},
		{"a_b_c", Pascal, "Abc"},
		{"x_y_value", Camel, "xyValue"},
		{"a_value", Pascal, "AValue"},
		{"2fa_code", Camel, "2faCode"},
		{"x_y2", Pascal, "Xy2"},
		{"x_y2", Camel, "xY2"},
		{"ab_c_d2", Camel, "abCd2"},
		{"v1beta", AllCaps, "V1BETA"},
		{"oauth2_token", ScreamingSnake, "OAUTH2_TOKEN"},
		{"B_zz1xz", ScreamingSnake, "B_ZZ1XZ"},
		{"straße_name", Pascal, "StraßeName"},
		{"", Pascal, ""},
		{"___", Camel, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input+"->"+tt.style.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.input, tt.style))
		})
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	inputs := []string{
		"user_name", "userName", "UserName", "USER_NAME", "APIClient", "userID",
		"a_b_c", "ab_c_d", "x_y_value", "a_value", "value_a", "v_2_x", "api_2fa",
		"api2_fa", "user2Name", "HTTPServer2Go", "日本語_test", "über_user",
		"__leading", "trailing__", "mixed-case_Name", "ABc", "A", "a",
		"V1BETA", "OAUTH2TOKEN", "B_zz1xz", "Ax1é", "x_y2", "ab_c_d2", "a_b2",
		"v1beta", "AA1x", "BZ1x", "ß_x", "x_ß", "日_a1",
	}
	styles := []Style{Camel, Pascal, Snake, ScreamingSnake, AllCaps}

	for _, in := range inputs {
		for _, style := range styles {
			once := Convert(in, style)
			twice := Convert(once, style)
			assert.Equal(t, once, twice, "Convert(Convert(%q, %s)) should be a fixpoint", in, style)
		}
	}
}

func TestConvertFixpoint(t *testing.T) {
	conforming := map[Style][]string{
		Camel:          {"userName", "id", "httpServer", "user2Name"},
		Pascal:         {"UserName", "Id", "HttpServer", "AValue", "Xy2", "Aa1x"},
		Snake:          {"user_name", "id", "http_server", "v1beta"},
		ScreamingSnake: {"USER_NAME", "ID", "HTTP_SERVER", "OAUTH2TOKEN", "B_ZZ1XZ"},
		AllCaps:        {"ACTIVE", "NOT_STARTED", "V1BETA", "AX1É"},
	}
	for style, ids := range conforming {
		for _, id := range ids {
			assert.Equal(t, id, Convert(id, style), "%q is already %s", id, style)
		}
	}
}

// TestConvertIsIdempotentRandom checks the fixpoint property over seeded
// random identifiers mixing both cases, digits, separators and non-ASCII.
func TestConvertIsIdempotentRandom(t *testing.T) {
	alphabet := []rune("aAbBxXzZ019_-éÉüÜß日")
	styles := []Style{Camel, Pascal, Snake, ScreamingSnake, AllCaps}
	rng := rand.New(rand.NewPCG(1, 2))

	for range 20000 {
		id := make([]rune, 1+rng.IntN(8))
		for i := range id {
			id[i] = alphabet[rng.IntN(len(alphabet))]
		}
		for _, style := range styles {
			once := Convert(string(id), style)
			if !assert.Equal(t, once, Convert(once, style), "%q via %s", string(id), style) {
				return
			}
		}
	}
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "camelCase", Camel.String())
	assert.Equal(t, "PascalCase", Pascal.String())
	assert.Equal(t, "snake_case", Snake.String())
	assert.Equal(t, "SCREAMING_SNAKE_CASE", ScreamingSnake.String())
	assert.Equal(t, "ALLCAPS", AllCaps.String())
	assert.Equal(t, "unknown", Style(99).String())
}
