package textfile

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
)

type pattern struct {
	source string
	re     *regexp2.Regexp
}

func compile(source string, timeout time.Duration) (*pattern, error) {
	if source == "" {
		return nil, errors.New(errors.ErrInvalidPattern, "empty regular expression").
			WithDetail("pattern", source)
	}
	re, err := regexp2.Compile(source, regexp2.RE2)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid regular expression %q", source).
			WithDetail("pattern", source)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &pattern{source: source, re: re}, nil
}

func (p *pattern) match(text, file string) (bool, error) {
	ok, err := p.re.MatchString(text)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrTransform, "cannot evaluate %q against %s", p.source, file).
			WithDetail("pattern", p.source).
			WithDetail("file", file)
	}
	return ok, nil
}

func (p *pattern) replaceAll(text, replacement, file string) (string, error) {
	out, err := p.re.Replace(text, replacement, -1, -1)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTransform, "cannot evaluate %q against %s", p.source, file).
			WithDetail("pattern", p.source).
			WithDetail("file", file)
	}
	return out, nil
}

func (p *pattern) groupCount() int {
	max := 0
	for _, n := range p.re.GetGroupNumbers() {
		if n > max {
			max = n
		}
	}
	return max
}

// translateReplacement converts sed-style replacement text into regexp2
// syntax: \1..\9 and \0 are groups, & is the whole match, \& and \\ are
// literal, \n and \t are a newline and a tab. A literal $ stays literal.
func translateReplacement(target string, groups int) (string, error) {
	var b strings.Builder
	for i := 0; i < len(target); i++ {
		c := target[i]
		switch c {
		case '$':
			b.WriteString("$$")
		case '&':
			b.WriteString("${0}")
		case '\\':
			if i+1 == len(target) {
				b.WriteByte('\\')
				continue
			}
			i++
			next := target[i]
			switch {
			case next >= '0' && next <= '9':
				group := int(next - '0')
				if group > groups {
					return "", errors.Newf(errors.ErrInvalidPattern,
						"invalid reference \\%d: pattern has %d group(s)", group, groups).
						WithDetail("replacement", target)
				}
				b.WriteString("${" + strconv.Itoa(group) + "}")
			case next == 'n':
				b.WriteByte('\n')
			case next == 't':
				b.WriteByte('\t')
			case next == '$':
				b.WriteString("$$")
			default:
				b.WriteByte(next)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
