package textfile

import (
	"strings"
)

// line is one line of a file. eol is false only for a final line that is
// not terminated by a newline.
type line struct {
	text string
	eol  bool
}

func splitLines(content []byte) []line {
	if len(content) == 0 {
		return nil
	}
	s := string(content)
	trailing := strings.HasSuffix(s, "\n")
	if trailing {
		s = s[:len(s)-1]
	}
	parts := strings.Split(s, "\n")
	lines := make([]line, len(parts))
	for i, p := range parts {
		lines[i] = line{text: p, eol: true}
	}
	lines[len(lines)-1].eol = trailing
	return lines
}

func joinLines(lines []line) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.text)
		if l.eol {
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}
