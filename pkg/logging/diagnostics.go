package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Diagnostics writes the tagged diagnostic lines. Only Debug and
// DebugArguments depend on the flags; everything else is unconditional.
type Diagnostics struct {
	logger  zerolog.Logger
	verbose bool
	dryRun  bool
	secrets []string
	mask    string
	exit    func(int)
}

func newDiagnostics(logger zerolog.Logger, opts Options) *Diagnostics {
	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}
	mask := opts.Mask
	if mask == "" {
		mask = DefaultMask
	}
	return &Diagnostics{
		logger:  logger,
		verbose: opts.Flags.Verbose,
		dryRun:  opts.Flags.DryRun,
		secrets: opts.SecretFlags,
		mask:    mask,
		exit:    exit,
	}
}

// Verbose reports whether debug output is enabled
func (d *Diagnostics) Verbose() bool {
	return d.verbose
}

// DryRunMode reports whether the caller asked for a dry run. Diagnostics
// never act on it; callers decide what to skip.
func (d *Diagnostics) DryRunMode() bool {
	return d.dryRun
}

// Logger exposes the underlying logger for structured events
func (d *Diagnostics) Logger() zerolog.Logger {
	return d.logger
}

// Debug writes msg only in verbose mode
func (d *Diagnostics) Debug(msg string) {
	if !d.verbose {
		return
	}
	d.logger.Debug().Msg(msg)
}

// Info writes msg without a tag
func (d *Diagnostics) Info(msg string) {
	d.logger.Info().Msg(msg)
}

// Warn writes "[warning]: msg"
func (d *Diagnostics) Warn(msg string) {
	d.logger.Warn().Msg(msg)
}

// Error writes "[error]: msg"
func (d *Diagnostics) Error(msg string) {
	d.logger.Error().Msg(msg)
}

// Todo writes "[TODO]: msg"
func (d *Diagnostics) Todo(msg string) {
	d.logger.Log().Str(TagFieldName, tagTodo).Msg(msg)
}

// DryRun writes "[dry-run]: msg". It is informational only.
func (d *Diagnostics) DryRun(msg string) {
	d.logger.Log().Str(TagFieldName, tagDryRun).Msg(msg)
}

// Fail writes "[error]: msg" and terminates the process with ExitFatal.
// Only top-level entry points should call it; library code returns errors.
func (d *Diagnostics) Fail(msg string) {
	d.Error(msg)
	d.exit(ExitFatal)
}

// DebugArguments logs caller and its arguments in verbose mode, with the
// values of secret flags masked
func (d *Diagnostics) DebugArguments(caller string, args ...string) {
	if !d.verbose {
		return
	}
	d.logger.Debug().Msg(RenderArguments(caller, args, d.secrets, d.mask))
}
