package shlib

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort                = "Helpers for shell scripts"
	MsgMoveShort                = "Replace a file with a different one"
	MsgRemoveRegexLineShort     = "Delete every line matching a pattern"
	MsgReplaceRegexShort        = "Substitute every match of a pattern"
	MsgInsertAtLineShort        = "Insert a line after a given line number"
	MsgFirstLineContainingShort = "Print the number of the first matching line"
	MsgLastLineContainingShort  = "Print the number of the last matching line"
	MsgLineAtShort              = "Print the line at a given line number"
	MsgDebugShort               = "Write a message in verbose mode only"
	MsgInfoShort                = "Write a message"
	MsgWarnShort                = "Write a [warning] message"
	MsgErrorShort               = "Write an [error] message"
	MsgTodoShort                = "Write a [TODO] message"
	MsgDryRunShort              = "Write a [dry-run] message"
	MsgFailShort                = "Write an [error] message and exit with status 255"
	MsgDebugArgumentsShort      = "Log a call and its arguments in verbose mode"
	MsgYesShort                 = "Ask a yes/no question"
	MsgYesLong                  = "Write PROMPT and read one line. Exit with status 0 if it starts with y, 1 otherwise."
	MsgParseArgsShort           = "Parse the common options for eval"
	MsgConfigShort              = "Print the effective configuration"
	MsgVersionShort             = "Print version information"
	MsgCompletionShort          = "Generate shell completion script"
	MsgManShort                 = "Generate man pages into a directory"
	MsgTopicsShort              = "Display available documentation topics"

	// Group titles
	MsgGroupPrimitives  = "TEXT FILES:"
	MsgGroupDiagnostics = "DIAGNOSTICS:"
	MsgGroupMisc        = "MISC:"

	// Status messages
	MsgChanged       = "%s updated"
	MsgUnchanged     = "%s unchanged"
	MsgWouldChange   = "%s would be updated"
	MsgNotFound      = "no line of %s matches %q"
	MsgVersionFormat = "shlib version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Write debug output"
	MsgFlagDebug   = "Write trace output with caller information (implies --verbose)"
	MsgFlagDryRun  = "Preview edits without changing any file"
	MsgFlagFormat  = "Output format (toml, yaml)"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrLineNumber = "invalid line number %q"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/move-long.txt
	msgMoveLongRaw string
	MsgMoveLong    = strings.TrimSpace(msgMoveLongRaw)

	//go:embed msgs/replace-regex-long.txt
	msgReplaceRegexLongRaw string
	MsgReplaceRegexLong    = strings.TrimSpace(msgReplaceRegexLongRaw)

	//go:embed msgs/replace-regex-example.txt
	msgReplaceRegexExampleRaw string
	MsgReplaceRegexExample    = strings.TrimRight(msgReplaceRegexExampleRaw, "\n")

	//go:embed msgs/insert-at-line-long.txt
	msgInsertAtLineLongRaw string
	MsgInsertAtLineLong    = strings.TrimSpace(msgInsertAtLineLongRaw)

	//go:embed msgs/parse-args-long.txt
	msgParseArgsLongRaw string
	MsgParseArgsLong    = strings.TrimSpace(msgParseArgsLongRaw)

	//go:embed msgs/parse-args-example.txt
	msgParseArgsExampleRaw string
	MsgParseArgsExample    = strings.TrimRight(msgParseArgsExampleRaw, "\n")

	//go:embed msgs/debug-arguments-long.txt
	msgDebugArgumentsLongRaw string
	MsgDebugArgumentsLong    = strings.TrimSpace(msgDebugArgumentsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
