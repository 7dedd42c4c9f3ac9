// Package style colors diagnostic tags when they are written to a terminal.
//
// Output that goes anywhere else (a pipe, a file, a test buffer) is left
// untouched, so the `[error]: ...` lines scripts grep for stay byte-exact.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Diagnostic tags as they appear in plain output
const (
	TagError   = "[error]:"
	TagWarning = "[warning]:"
	TagTodo    = "[TODO]:"
	TagDryRun  = "[dry-run]:"
)

var tagStyles = map[string]lipgloss.Style{
	TagError:   lipgloss.NewStyle().Foreground(ErrorColor).Bold(true),
	TagWarning: lipgloss.NewStyle().Foreground(WarningColor).Bold(true),
	TagTodo:    lipgloss.NewStyle().Foreground(TodoColor).Bold(true),
	TagDryRun:  lipgloss.NewStyle().Foreground(InfoColor),
}

// MutedStyle is used for verbose-only output such as diffs
var MutedStyle = lipgloss.NewStyle().Foreground(MutedColor)

// ColorEnabled reports whether w is a color-capable terminal
func ColorEnabled(w io.Writer) bool {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	// Check terminal color support
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Tag renders a diagnostic tag, colored when color is true. Unknown tags are
// returned unchanged.
func Tag(tag string, color bool) string {
	if !color {
		return tag
	}
	s, ok := tagStyles[tag]
	if !ok {
		return tag
	}
	return s.Render(tag)
}

// Muted renders s in the muted color when color is true
func Muted(s string, color bool) string {
	if !color {
		return s
	}
	return MutedStyle.Render(s)
}
