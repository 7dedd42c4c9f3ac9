// Package textfile implements idempotent edits and read-only lookups over
// line-oriented text files.
//
// Every edit follows the same protocol: the candidate content is staged in a
// scratch file next to the target, compared byte for byte with the original,
// and renamed over the target only when it differs. An edit therefore either
// replaces the whole file or leaves it exactly as it was, and reports whether
// anything changed:
//
//	res, err := textfile.New(filesystem.NewOS()).ReplaceRegex(`^(\w+)=.*`, `\1=on`, "/etc/app.conf")
//	if err != nil {
//		// the file was not touched
//	}
//	if res.Outcome == textfile.Changed {
//		...
//	}
//
// Patterns are evaluated by regexp2 in RE2-compatible mode, one line at a time
// without the line terminator. Back-references are allowed in patterns
// (`(a)\1`) and in replacement text (`\1`..`\9`, `&` or `\0` for the whole
// match). There is no delimiter, so "/" never needs escaping.
package textfile
