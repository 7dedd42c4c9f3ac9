package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NovaOrdis/std.shlib/pkg/flags"
	"github.com/NovaOrdis/std.shlib/pkg/style"
)

// ExitFatal is the process exit status used by Fail
const ExitFatal = 255

// Options configures SetupLogger
type Options struct {
	Flags flags.Flags

	// Console receives the tagged lines; defaults to os.Stderr
	Console io.Writer

	// LogFile, when set, additionally receives every event as JSON
	LogFile string

	// SecretFlags and Mask drive masking in DebugArguments
	SecretFlags []string
	Mask        string

	// Exit terminates the process; defaults to os.Exit
	Exit func(int)
}

// SetupLogger configures the global logger based on the parsed flags and
// returns the Diagnostics bound to it
func SetupLogger(opts Options) *Diagnostics {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{newConsoleWriter(console, style.ColorEnabled(console))}

	var fileErr error
	if opts.LogFile != "" {
		var logFileHandle *os.File
		logFileHandle, fileErr = setupLogFile(opts.LogFile)
		if fileErr == nil {
			writers = append(writers, logFileHandle)
		}
	}

	level := levelFor(opts.Flags)
	zerolog.SetGlobalLevel(level)

	multi := io.MultiWriter(writers...)
	logger := zerolog.New(multi).Level(level).With().Timestamp().Logger()

	// Add caller information in debug mode
	if opts.Flags.Debug {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger

	// If we couldn't create the log file, log the error now with the new logger
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.LogFile).Msg("Failed to create log file, logging to console only")
	}

	log.Trace().
		Bool("verbose", opts.Flags.Verbose).
		Bool("debug", opts.Flags.Debug).
		Str("logFile", opts.LogFile).
		Msg("Logger initialized")

	return newDiagnostics(logger, opts)
}

func levelFor(f flags.Flags) zerolog.Level {
	switch {
	case f.Debug:
		return zerolog.TraceLevel
	case f.Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Trace().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Trace().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
