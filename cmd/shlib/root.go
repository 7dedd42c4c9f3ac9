package shlib

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/NovaOrdis/std.shlib/internal/version"
	"github.com/NovaOrdis/std.shlib/pkg/config"
	"github.com/NovaOrdis/std.shlib/pkg/errors"
	"github.com/NovaOrdis/std.shlib/pkg/filesystem"
	"github.com/NovaOrdis/std.shlib/pkg/flags"
	"github.com/NovaOrdis/std.shlib/pkg/logging"
	"github.com/NovaOrdis/std.shlib/pkg/paths"
	"github.com/NovaOrdis/std.shlib/pkg/textfile"
)

// Exit statuses of non-fatal outcomes
const (
	ExitOK       = 0
	ExitNegative = 1
)

const (
	groupPrimitives  = "primitives"
	groupDiagnostics = "diagnostics"
	groupMisc        = "misc"

	parseArgsCmdName = "parse-args"
)

// App is the state shared by the commands of one invocation
type App struct {
	Flags  flags.Flags
	Config *config.Config
	Diag   *logging.Diagnostics
	Editor *textfile.Editor
	Stdin  io.Reader
}

// Streams are the standard streams of the process
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// exitStatus is returned by commands whose non-fatal outcome maps to a
// non-zero status (unchanged, not found, declined)
type exitStatus int

func (s exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}

// Run executes one shlib invocation and returns its exit status. Fatal
// errors go through Diagnostics.Fail, which calls exit with
// logging.ExitFatal; Run still returns that status when exit returns.
func Run(args []string, lookupEnv func(string) (string, bool), streams Streams, exit func(int)) int {
	f, remaining := parseGlobalFlags(args, flags.FromEnv(lookupEnv))

	p := paths.New()
	cfg, cfgErr := config.Load(p)
	if cfgErr != nil {
		cfg = config.Default()
	}

	logFile := ""
	if cfg.Log.File {
		logFile = p.LogFilePath()
	}
	diag := logging.SetupLogger(logging.Options{
		Flags:       f,
		Console:     streams.Err,
		LogFile:     logFile,
		SecretFlags: cfg.Secrets.Flags,
		Mask:        cfg.Secrets.Mask,
		Exit:        exit,
	})
	if cfgErr != nil {
		diag.Fail(cfgErr.Error())
		return logging.ExitFatal
	}

	app := &App{
		Flags:  f,
		Config: cfg,
		Diag:   diag,
		Editor: textfile.New(filesystem.NewOS(),
			textfile.WithLogger(logging.GetLogger("textfile")),
			textfile.WithDryRun(f.DryRun),
			textfile.WithMatchTimeout(cfg.Regex.Timeout)),
		Stdin: streams.In,
	}

	rootCmd := NewRootCmd(app)
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)
	rootCmd.SetArgs(remaining)

	return app.exitCode(rootCmd.Execute())
}

// parseGlobalFlags consumes the common options given on the command line
// and adds the inherited ones in seed. parse-args receives its arguments
// untouched. A help option given on the command line turns the invocation
// into "help ...".
func parseGlobalFlags(args []string, seed flags.Flags) (flags.Flags, []string) {
	if len(args) > 0 && args[0] == parseArgsCmdName {
		return seed, args
	}

	requested, remaining := flags.Parse(args, flags.Flags{})
	if requested.Help {
		remaining = append([]string{"help"}, remaining...)
	}
	return requested.Union(seed), remaining
}

func (a *App) exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var status exitStatus
	if stderrors.As(err, &status) {
		return int(status)
	}
	a.Diag.Fail(err.Error())
	return logging.ExitFatal
}

// NewRootCmd creates the root command bound to app
func NewRootCmd(app *App) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "shlib",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Trace().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// The common options are consumed before cobra sees the arguments; they
	// are declared here so that help and completion list them.
	var verbose, debug, dryRun bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, MsgFlagDebug)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddGroup(
		&cobra.Group{ID: groupPrimitives, Title: MsgGroupPrimitives},
		&cobra.Group{ID: groupDiagnostics, Title: MsgGroupDiagnostics},
		&cobra.Group{ID: groupMisc, Title: MsgGroupMisc},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newMoveCmd(app))
	rootCmd.AddCommand(newRemoveRegexLineCmd(app))
	rootCmd.AddCommand(newReplaceRegexCmd(app))
	rootCmd.AddCommand(newInsertAtLineCmd(app))
	rootCmd.AddCommand(newFirstLineContainingCmd(app))
	rootCmd.AddCommand(newLastLineContainingCmd(app))
	rootCmd.AddCommand(newLineAtCmd(app))

	rootCmd.AddCommand(newDiagnosticCmds(app)...)
	rootCmd.AddCommand(newDebugArgumentsCmd(app))
	rootCmd.AddCommand(newYesCmd(app))
	rootCmd.AddCommand(newParseArgsCmd(app))

	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newTopicsCmd())

	if err := initTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID(groupMisc)

	return rootCmd
}
