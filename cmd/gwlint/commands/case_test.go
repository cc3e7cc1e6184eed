package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCase(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"user_profile"}, "userProfile\n"},
		{[]string{"-s", "pascalCase", "api_key", "HTTPServer"}, "ApiKey\nHttpServer\n"},
		{[]string{"--style", "allCaps", "darkRed"}, "DARK_RED\n"},
		{[]string{"--style", "snakeCase", "userName"}, "user_name\n"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, runCase(tt.args, &stdout, &stderr))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunCase_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, runCase(nil, &stdout, &stderr))
	assert.Error(t, runCase([]string{"-s", "kebabCase", "a"}, &stdout, &stderr))
	assert.NoError(t, runCase([]string{"--help"}, &stdout, &stderr))
}
