package textfile

// RemoveRegexLine deletes every line of file that matches regex
func (e *Editor) RemoveRegexLine(regex, file string) (Result, error) {
	p, err := compile(regex, e.timeout)
	if err != nil {
		return Result{Path: file}, err
	}

	return e.apply("remove-regex-line", file, func(lines []line) ([]line, error) {
		kept := make([]line, 0, len(lines))
		for _, l := range lines {
			matched, err := p.match(l.text, file)
			if err != nil {
				return nil, err
			}
			if matched {
				continue
			}
			kept = append(kept, l)
		}
		return kept, nil
	})
}

// ReplaceRegex replaces every match of sourcePattern on every line of file
// with targetPattern, which may reference groups as \1..\9 and the whole
// match as & or \0
func (e *Editor) ReplaceRegex(sourcePattern, targetPattern, file string) (Result, error) {
	p, err := compile(sourcePattern, e.timeout)
	if err != nil {
		return Result{Path: file}, err
	}
	replacement, err := translateReplacement(targetPattern, p.groupCount())
	if err != nil {
		return Result{Path: file}, err
	}

	return e.apply("replace-regex", file, func(lines []line) ([]line, error) {
		out := make([]line, len(lines))
		for i, l := range lines {
			text, err := p.replaceAll(l.text, replacement, file)
			if err != nil {
				return nil, err
			}
			out[i] = line{text: text, eol: l.eol}
		}
		return out, nil
	})
}

// InsertAtLine inserts newLine after line lineNumber (1-based). A line
// number outside the file leaves it unchanged.
func (e *Editor) InsertAtLine(lineNumber int, newLine, file string) (Result, error) {
	return e.apply("insert-at-line", file, func(lines []line) ([]line, error) {
		if lineNumber < 1 || lineNumber > len(lines) {
			e.logger.Trace().Int("line", lineNumber).Int("lines", len(lines)).Str("file", file).
				Msg("Line number out of range")
			return lines, nil
		}
		out := make([]line, 0, len(lines)+1)
		out = append(out, lines[:lineNumber]...)
		out[lineNumber-1].eol = true
		out = append(out, line{text: newLine, eol: true})
		out = append(out, lines[lineNumber:]...)
		return out, nil
	})
}
