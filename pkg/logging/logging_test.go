package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaOrdis/std.shlib/pkg/flags"
)

// restoreGlobals undoes the global logger changes made by SetupLogger
func restoreGlobals(t *testing.T) {
	t.Helper()
	level := zerolog.GlobalLevel()
	logger := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		flags     flags.Flags
		wantLevel zerolog.Level
	}{
		{"default info level", flags.Flags{}, zerolog.InfoLevel},
		{"verbose is debug", flags.Flags{Verbose: true}, zerolog.DebugLevel},
		{"debug is trace", flags.Flags{Verbose: true, Debug: true}, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)

			SetupLogger(Options{Flags: tt.flags, Console: &bytes.Buffer{}})
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.Equal(t, tt.wantLevel, log.Logger.GetLevel())
		})
	}
}

func TestSetupLoggerWritesLogFile(t *testing.T) {
	restoreGlobals(t)

	logPath := filepath.Join(t.TempDir(), "state", "shlib", "shlib.log")
	var console bytes.Buffer

	d := SetupLogger(Options{Console: &console, LogFile: logPath})
	d.Warn("disk almost full")

	assert.Equal(t, "[warning]: disk almost full\n", console.String())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"level":"warn"`)
	assert.Contains(t, string(content), `"message":"disk almost full"`)
}

func TestSetupLoggerUnwritableLogFile(t *testing.T) {
	restoreGlobals(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var console bytes.Buffer
	d := SetupLogger(Options{Console: &console, LogFile: filepath.Join(blocker, "shlib.log")})
	require.NotNil(t, d)

	assert.True(t, strings.HasPrefix(console.String(), "[warning]: Failed to create log file"))
}

func TestGetLogger(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("textfile")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"textfile"`)
}

func TestLogOperationStart(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	done := LogOperationStart(logger, "replace-regex")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, `"operation":"replace-regex"`)
	assert.Contains(t, output, `"duration"`)
}
