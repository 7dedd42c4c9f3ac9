// Package prompt implements the interactive yes/no question.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
)

// Answer is the outcome of Yes
type Answer int

const (
	Declined Answer = iota
	Confirmed
)

func (a Answer) String() string {
	if a == Confirmed {
		return "confirmed"
	}
	return "declined"
}

// Yes writes prompt to out, reads one line from in and returns Confirmed
// when that line starts with "y". Anything else, including an empty line or
// end of input, is Declined.
func Yes(in io.Reader, out io.Writer, prompt string) (Answer, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return Declined, errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return Declined, errors.Wrap(err, errors.ErrPrompt, "failed to read user input")
	}

	if strings.HasPrefix(line, "y") {
		return Confirmed, nil
	}
	return Declined, nil
}
