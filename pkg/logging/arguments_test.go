package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderArguments(t *testing.T) {
	secrets := []string{"--password", "--token"}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no arguments", nil, `f()`},
		{"plain", []string{"a", "b c"}, `f("a", "b c")`},
		{"empty argument", []string{"a", "", "b"}, `f("a", "", "b")`},
		{"embedded quote", []string{`say "hi"`}, `f("say \"hi\"")`},
		{"secret followed by value", []string{"--password", "s3cr3t", "x"}, `f("--password", "***", "x")`},
		{"secret with equals", []string{"--token=abc", "x"}, `f("--token=***", "x")`},
		{"secret as last argument", []string{"x", "--password"}, `f("x", "--password")`},
		{"secret value looks like flag", []string{"--password", "--token"}, `f("--password", "***")`},
		{"similar name is not secret", []string{"--passwords", "x"}, `f("--passwords", "x")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderArguments("f", tt.args, secrets, "***"))
		})
	}
}

func TestMaskSecretsDoesNotMutate(t *testing.T) {
	args := []string{"--password", "p"}
	out := MaskSecrets(args, []string{"--password"}, "#")

	assert.Equal(t, []string{"--password", "#"}, out)
	assert.Equal(t, []string{"--password", "p"}, args)
}
