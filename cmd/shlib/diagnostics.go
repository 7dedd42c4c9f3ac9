package shlib

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/NovaOrdis/std.shlib/pkg/flags"
	"github.com/NovaOrdis/std.shlib/pkg/logging"
	"github.com/NovaOrdis/std.shlib/pkg/prompt"
)

func diagnosticCmd(name, short string, write func(msg string) error) *cobra.Command {
	return &cobra.Command{
		Use:                   name + " MESSAGE...",
		Short:                 short,
		GroupID:               groupDiagnostics,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return write(strings.Join(args, " "))
		},
	}
}

// newDiagnosticCmds returns one command per diagnostic level
func newDiagnosticCmds(app *App) []*cobra.Command {
	emit := func(f func(*logging.Diagnostics, string)) func(string) error {
		return func(msg string) error {
			f(app.Diag, msg)
			return nil
		}
	}
	return []*cobra.Command{
		diagnosticCmd("debug", MsgDebugShort, emit((*logging.Diagnostics).Debug)),
		diagnosticCmd("info", MsgInfoShort, emit((*logging.Diagnostics).Info)),
		diagnosticCmd("warn", MsgWarnShort, emit((*logging.Diagnostics).Warn)),
		diagnosticCmd("error", MsgErrorShort, emit((*logging.Diagnostics).Error)),
		diagnosticCmd("todo", MsgTodoShort, emit((*logging.Diagnostics).Todo)),
		diagnosticCmd("dry-run", MsgDryRunShort, emit((*logging.Diagnostics).DryRun)),
		diagnosticCmd("fail", MsgFailShort, func(msg string) error {
			app.Diag.Fail(msg)
			return exitStatus(logging.ExitFatal)
		}),
	}
}

func newDebugArgumentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:                   "debug-arguments CALLER [ARGS...]",
		Short:                 MsgDebugArgumentsShort,
		Long:                  MsgDebugArgumentsLong,
		GroupID:               groupDiagnostics,
		Args:                  cobra.MinimumNArgs(1),
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Diag.DebugArguments(args[0], args[1:]...)
			return nil
		},
	}
}

func newYesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:                   "yes PROMPT...",
		Short:                 MsgYesShort,
		Long:                  MsgYesLong,
		GroupID:               groupDiagnostics,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text != "" && !strings.HasSuffix(text, " ") {
				text += " "
			}
			answer, err := prompt.Yes(cmd.InOrStdin(), cmd.ErrOrStderr(), text)
			if err != nil {
				return err
			}
			logger := app.Diag.Logger()
			logger.Trace().Stringer("answer", answer).Msg("Prompt answered")
			if answer != prompt.Confirmed {
				return exitStatus(ExitNegative)
			}
			return nil
		},
	}
}

func newParseArgsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:                   parseArgsCmdName + " [ARGS...]",
		Short:                 MsgParseArgsShort,
		Long:                  MsgParseArgsLong,
		Example:               MsgParseArgsExample,
		GroupID:               groupMisc,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, remaining := flags.Parse(args, app.Flags)
			script, err := f.ExportScript(remaining)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(script))
			return err
		},
	}
}
