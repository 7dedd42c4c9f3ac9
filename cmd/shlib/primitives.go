package shlib

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
	"github.com/NovaOrdis/std.shlib/pkg/textfile"
)

// report turns an edit result into the command outcome. The diff is shown
// in verbose and dry-run modes.
func (a *App) report(cmd *cobra.Command, res textfile.Result) error {
	if res.Outcome == textfile.Unchanged {
		a.Diag.Debug(fmt.Sprintf(MsgUnchanged, res.Path))
		return exitStatus(ExitNegative)
	}

	if res.Diff != "" && (a.Flags.Verbose || a.Flags.DryRun) {
		fmt.Fprint(cmd.ErrOrStderr(), res.Diff)
	}
	if res.Committed {
		a.Diag.Debug(fmt.Sprintf(MsgChanged, res.Path))
	} else {
		a.Diag.DryRun(fmt.Sprintf(MsgWouldChange, res.Path))
	}
	return nil
}

func parseLineNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidInput, MsgErrLineNumber, s).WithDetail("line", s)
	}
	return n, nil
}

// primitiveCmd builds a text-file command. Flag parsing is disabled so that
// patterns and lines starting with "-" reach the command unchanged.
func primitiveCmd(use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                   use,
		Short:                 short,
		GroupID:               groupPrimitives,
		Args:                  args,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		RunE:                  run,
	}
}

func newMoveCmd(app *App) *cobra.Command {
	cmd := primitiveCmd("move SOURCE DESTINATION", MsgMoveShort, cobra.ExactArgs(2),
		func(cmd *cobra.Command, args []string) error {
			app.Diag.DebugArguments("move", args...)
			res, err := app.Editor.Move(args[0], args[1])
			if err != nil {
				return err
			}
			return app.report(cmd, res)
		})
	cmd.Long = MsgMoveLong
	return cmd
}

func newRemoveRegexLineCmd(app *App) *cobra.Command {
	return primitiveCmd("remove-regex-line REGEX FILE", MsgRemoveRegexLineShort, cobra.ExactArgs(2),
		func(cmd *cobra.Command, args []string) error {
			app.Diag.DebugArguments("remove-regex-line", args...)
			res, err := app.Editor.RemoveRegexLine(args[0], args[1])
			if err != nil {
				return err
			}
			return app.report(cmd, res)
		})
}

func newReplaceRegexCmd(app *App) *cobra.Command {
	cmd := primitiveCmd("replace-regex SOURCE_PATTERN TARGET_PATTERN FILE", MsgReplaceRegexShort, cobra.ExactArgs(3),
		func(cmd *cobra.Command, args []string) error {
			app.Diag.DebugArguments("replace-regex", args...)
			res, err := app.Editor.ReplaceRegex(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return app.report(cmd, res)
		})
	cmd.Long = MsgReplaceRegexLong
	cmd.Example = MsgReplaceRegexExample
	return cmd
}

func newInsertAtLineCmd(app *App) *cobra.Command {
	cmd := primitiveCmd("insert-at-line N LINE FILE", MsgInsertAtLineShort, cobra.ExactArgs(3),
		func(cmd *cobra.Command, args []string) error {
			app.Diag.DebugArguments("insert-at-line", args...)
			n, err := parseLineNumber(args[0])
			if err != nil {
				return err
			}
			res, err := app.Editor.InsertAtLine(n, args[1], args[2])
			if err != nil {
				return err
			}
			return app.report(cmd, res)
		})
	cmd.Long = MsgInsertAtLineLong
	return cmd
}

type lineFinder func(regex, file string) (int, bool, error)

func lineContainingRun(app *App, name string, find lineFinder) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app.Diag.DebugArguments(name, args...)
		n, found, err := find(args[0], args[1])
		if err != nil {
			return err
		}
		if !found {
			app.Diag.Debug(fmt.Sprintf(MsgNotFound, args[1], args[0]))
			return exitStatus(ExitNegative)
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	}
}

func newFirstLineContainingCmd(app *App) *cobra.Command {
	return primitiveCmd("first-line-containing REGEX FILE", MsgFirstLineContainingShort, cobra.ExactArgs(2),
		func(cmd *cobra.Command, args []string) error {
			return lineContainingRun(app, "first-line-containing", app.Editor.FirstLineContaining)(cmd, args)
		})
}

func newLastLineContainingCmd(app *App) *cobra.Command {
	return primitiveCmd("last-line-containing REGEX FILE", MsgLastLineContainingShort, cobra.ExactArgs(2),
		func(cmd *cobra.Command, args []string) error {
			return lineContainingRun(app, "last-line-containing", app.Editor.LastLineContaining)(cmd, args)
		})
}

func newLineAtCmd(app *App) *cobra.Command {
	return primitiveCmd("line-at N FILE", MsgLineAtShort, cobra.ExactArgs(2),
		func(cmd *cobra.Command, args []string) error {
			app.Diag.DebugArguments("line-at", args...)
			n, err := parseLineNumber(args[0])
			if err != nil {
				return err
			}
			text, found, err := app.Editor.LookupLine(n, args[1])
			if err != nil {
				return err
			}
			if found {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		})
}
