package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/NovaOrdis/std.shlib/pkg/flags"
)

func newTestDiagnostics(t *testing.T, f flags.Flags) (*Diagnostics, *bytes.Buffer, *int) {
	t.Helper()
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	exitCode := -1
	logger := zerolog.New(newConsoleWriter(&buf, false)).Level(levelFor(f))
	d := newDiagnostics(logger, Options{
		Flags:       f,
		SecretFlags: []string{"--password"},
		Exit:        func(code int) { exitCode = code },
	})
	return d, &buf, &exitCode
}

func TestDiagnosticsTags(t *testing.T) {
	tests := []struct {
		name string
		emit func(d *Diagnostics)
		want string
	}{
		{"info", func(d *Diagnostics) { d.Info("hello") }, "hello\n"},
		{"warn", func(d *Diagnostics) { d.Warn("careful") }, "[warning]: careful\n"},
		{"error", func(d *Diagnostics) { d.Error("broken") }, "[error]: broken\n"},
		{"todo", func(d *Diagnostics) { d.Todo("finish this") }, "[TODO]: finish this\n"},
		{"dry-run", func(d *Diagnostics) { d.DryRun("would remove x") }, "[dry-run]: would remove x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, buf, _ := newTestDiagnostics(t, flags.Flags{})
			tt.emit(d)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDebugOnlyWhenVerbose(t *testing.T) {
	t.Run("quiet", func(t *testing.T) {
		d, buf, _ := newTestDiagnostics(t, flags.Flags{})
		d.Debug("details")
		assert.Empty(t, buf.String())
		assert.False(t, d.Verbose())
	})

	t.Run("verbose", func(t *testing.T) {
		d, buf, _ := newTestDiagnostics(t, flags.Flags{Verbose: true})
		d.Debug("details")
		assert.Equal(t, "details\n", buf.String())
		assert.True(t, d.Verbose())
	})
}

func TestDryRunNeverGates(t *testing.T) {
	d, buf, _ := newTestDiagnostics(t, flags.Flags{})
	assert.False(t, d.DryRunMode())
	d.DryRun("would do it")
	assert.Equal(t, "[dry-run]: would do it\n", buf.String())

	d, _, _ = newTestDiagnostics(t, flags.Flags{DryRun: true})
	assert.True(t, d.DryRunMode())
}

func TestFail(t *testing.T) {
	d, buf, exitCode := newTestDiagnostics(t, flags.Flags{})
	d.Fail("cannot continue")

	assert.Equal(t, "[error]: cannot continue\n", buf.String())
	assert.Equal(t, ExitFatal, *exitCode)
	assert.Equal(t, 255, ExitFatal)
}

func TestDebugArguments(t *testing.T) {
	t.Run("quiet", func(t *testing.T) {
		d, buf, _ := newTestDiagnostics(t, flags.Flags{})
		d.DebugArguments("replace-regex", "a", "b")
		assert.Empty(t, buf.String())
	})

	t.Run("verbose masks secrets", func(t *testing.T) {
		d, buf, _ := newTestDiagnostics(t, flags.Flags{Verbose: true})
		d.DebugArguments("login", "--user", "joe", "--password", "hunter2", "")
		assert.Equal(t, `login("--user", "joe", "--password", "***", "")`+"\n", buf.String())
		assert.NotContains(t, buf.String(), "hunter2")
	})
}

func TestConsoleWriterFields(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := zerolog.New(newConsoleWriter(&buf, false)).With().Timestamp().Logger()
	logger.Debug().Str("file", "/etc/hosts").Str("pattern", "a b").Int("line", 3).Msg("staged")

	assert.Equal(t, `staged file=/etc/hosts line=3 pattern="a b"`+"\n", buf.String())
}

func TestConsoleWriterRejectsGarbage(t *testing.T) {
	w := newConsoleWriter(&bytes.Buffer{}, false)
	_, err := w.Write([]byte("not json"))
	assert.Error(t, err)
}
