package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		start         Flags
		wantFlags     Flags
		wantRemaining []string
	}{
		{
			name:          "no arguments",
			args:          nil,
			wantFlags:     Flags{},
			wantRemaining: []string{},
		},
		{
			name:          "unknown tokens pass through",
			args:          []string{"a", "--other", "-x", "b"},
			wantFlags:     Flags{},
			wantRemaining: []string{"a", "--other", "-x", "b"},
		},
		{
			name:          "second verbose passes through",
			args:          []string{"--verbose", "x", "--verbose", "y"},
			wantFlags:     Flags{Verbose: true},
			wantRemaining: []string{"x", "--verbose", "y"},
		},
		{
			name:          "short verbose",
			args:          []string{"-v", "x", "-v"},
			wantFlags:     Flags{Verbose: true},
			wantRemaining: []string{"x", "-v"},
		},
		{
			name:          "debug implies verbose",
			args:          []string{"--debug", "x"},
			wantFlags:     Flags{Verbose: true, Debug: true},
			wantRemaining: []string{"x"},
		},
		{
			name:          "debug after verbose passes through",
			args:          []string{"--verbose", "--debug"},
			wantFlags:     Flags{Verbose: true},
			wantRemaining: []string{"--debug"},
		},
		{
			name:          "verbose after debug passes through",
			args:          []string{"--debug", "-v"},
			wantFlags:     Flags{Verbose: true, Debug: true},
			wantRemaining: []string{"-v"},
		},
		{
			name:          "already verbose from parent",
			args:          []string{"--verbose", "x"},
			start:         Flags{Verbose: true},
			wantFlags:     Flags{Verbose: true},
			wantRemaining: []string{"--verbose", "x"},
		},
		{
			name:          "dry-run and help are always consumed",
			args:          []string{"--dry-run", "a", "-h", "--dry-run", "--help"},
			wantFlags:     Flags{DryRun: true, Help: true},
			wantRemaining: []string{"a"},
		},
		{
			name:          "all flags",
			args:          []string{"-v", "--dry-run", "cmd", "--help", "arg"},
			wantFlags:     Flags{Verbose: true, DryRun: true, Help: true},
			wantRemaining: []string{"cmd", "arg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFlags, gotRemaining := Parse(tt.args, tt.start)
			assert.Equal(t, tt.wantFlags, gotFlags)
			assert.Equal(t, tt.wantRemaining, gotRemaining)
		})
	}
}

func TestParseDoesNotMutateInput(t *testing.T) {
	args := []string{"--verbose", "x"}
	_, _ = Parse(args, Flags{})
	assert.Equal(t, []string{"--verbose", "x"}, args)
}

func TestFromEnv(t *testing.T) {
	env := func(values map[string]string) func(string) (string, bool) {
		return func(name string) (string, bool) {
			v, ok := values[name]
			return v, ok
		}
	}

	tests := []struct {
		name   string
		values map[string]string
		want   Flags
	}{
		{"empty", map[string]string{}, Flags{}},
		{"true values", map[string]string{"verbose": "true", "dry_run": "1", "help": "YES"}, Flags{Verbose: true, DryRun: true, Help: true}},
		{"false values", map[string]string{"verbose": "false", "dry_run": "", "help": "no"}, Flags{}},
		{"debug implies verbose", map[string]string{"debug": "true"}, Flags{Verbose: true, Debug: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromEnv(env(tt.values)))
		})
	}
}

func TestEnvironRoundTrip(t *testing.T) {
	f := Flags{Verbose: true, Debug: true, DryRun: true}
	environ := f.Environ()
	assert.Equal(t, []string{"verbose=true", "debug=true", "dry_run=true"}, environ)

	lookup := func(name string) (string, bool) {
		for _, kv := range environ {
			if len(kv) > len(name) && kv[:len(name)+1] == name+"=" {
				return kv[len(name)+1:], true
			}
		}
		return "", false
	}
	assert.Equal(t, f, FromEnv(lookup))
	assert.Empty(t, Flags{}.Environ())
}

func TestArgsRoundTrip(t *testing.T) {
	tests := []Flags{
		{},
		{Verbose: true},
		{Verbose: true, Debug: true},
		{DryRun: true, Help: true},
		{Verbose: true, Debug: true, DryRun: true, Help: true},
	}

	for _, f := range tests {
		args := append(f.Args(), "rest")
		got, remaining := Parse(args, Flags{})
		assert.Equal(t, f, got)
		assert.Equal(t, []string{"rest"}, remaining)
	}
}

func TestUnion(t *testing.T) {
	parsed := Flags{Verbose: true}
	inherited := Flags{DryRun: true, Help: true}

	assert.Equal(t, Flags{Verbose: true, DryRun: true, Help: true}, parsed.Union(inherited))
	assert.Equal(t, inherited, Flags{}.Union(inherited))
	assert.Equal(t, parsed, parsed.Union(Flags{}))
}
