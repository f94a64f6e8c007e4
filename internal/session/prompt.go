package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Prompter asks questions on a console and reads one line per answer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and blocks until a line is read. The line terminator
// is stripped. A final line without a terminator is returned as is; after
// that Ask returns io.EOF.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NormalizeRegion returns the region in the form sent to the search: NFC,
// trimmed and lower case. Blank input normalizes to "".
func NormalizeRegion(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	return cases.Lower(language.Und).String(s)
}

// IsYes reports whether answer is "yes" in any letter case.
func IsYes(answer string) bool {
	return cases.Fold().String(answer) == "yes"
}
