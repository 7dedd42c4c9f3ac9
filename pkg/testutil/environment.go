package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TestEnvironment isolates a test from the user's configuration
type TestEnvironment struct {
	HomeDir    string
	ConfigHome string
	StateHome  string
}

// NewTestEnvironment points HOME and the XDG base directories at fresh
// temporary directories, unsets every SHLIB_* variable and restores the
// global logger when the test ends
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		HomeDir:    t.TempDir(),
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "SHLIB_") {
			// Setenv registers the restore; the variable must be absent,
			// not empty
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	RestoreLogger(t)
	return env
}

// RestoreLogger undoes changes to the zerolog globals when the test ends
func RestoreLogger(t *testing.T) {
	t.Helper()

	level := zerolog.GlobalLevel()
	logger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}
