package textfile

import (
	"github.com/NovaOrdis/std.shlib/pkg/errors"
)

// FirstLineContaining returns the 1-based number of the first line of file
// matching regex. found is false when no line matches.
func (e *Editor) FirstLineContaining(regex, file string) (lineNumber int, found bool, err error) {
	return e.lineContaining(regex, file, false)
}

// LastLineContaining returns the 1-based number of the last line of file
// matching regex. found is false when no line matches.
func (e *Editor) LastLineContaining(regex, file string) (lineNumber int, found bool, err error) {
	return e.lineContaining(regex, file, true)
}

func (e *Editor) lineContaining(regex, file string, last bool) (int, bool, error) {
	p, err := compile(regex, e.timeout)
	if err != nil {
		return 0, false, err
	}
	content, _, err := e.readRegular(file, "target")
	if err != nil {
		return 0, false, err
	}

	match := 0
	for i, l := range splitLines(content) {
		ok, err := p.match(l.text, file)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			continue
		}
		match = i + 1
		if !last {
			break
		}
	}
	return match, match > 0, nil
}

// LineAt returns the text of line lineNumber (1-based) of file without its
// terminator, or "" when the file has fewer lines
func (e *Editor) LineAt(lineNumber int, file string) (string, error) {
	text, _, err := e.LookupLine(lineNumber, file)
	return text, err
}

// LookupLine is LineAt that also reports whether the line exists, which
// tells an empty line apart from one past the end of file
func (e *Editor) LookupLine(lineNumber int, file string) (text string, found bool, err error) {
	content, _, err := e.readRegular(file, "target")
	if err != nil {
		return "", false, err
	}
	if lineNumber < 1 {
		return "", false, errors.Newf(errors.ErrInvalidInput, "invalid line number %d", lineNumber).
			WithDetail("file", file)
	}
	lines := splitLines(content)
	if lineNumber > len(lines) {
		return "", false, nil
	}
	return lines[lineNumber-1].text, true, nil
}
