package flags

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
)

// ExportScript renders f and the remaining arguments as shell statements for
// eval: one export per flag (always all four, so a previously exported value
// is overwritten) followed by a `set --` that replaces the positional
// parameters with remaining.
//
//	eval "$(shlib parse-args "$@")"
func (f Flags) ExportScript(remaining []string) (string, error) {
	var b strings.Builder
	for _, v := range f.values() {
		b.WriteString("export ")
		b.WriteString(v.env)
		b.WriteString("=")
		if v.set {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
		b.WriteString("\n")
	}

	b.WriteString("set --")
	for _, arg := range remaining {
		quoted, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot quote argument %q", arg)
		}
		b.WriteString(" ")
		b.WriteString(quoted)
	}
	b.WriteString("\n")
	return b.String(), nil
}
