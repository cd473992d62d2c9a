// Package prompt asks the user yes/no questions.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = errors.New(messages.PromptAborted)

// Prompter asks a yes/no question and reports the answer.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// Answer is a parsed yes/no reply.
type Answer int

// Answer values.
const (
	Invalid Answer = iota
	Yes
	No
)

// ParseAnswer reduces a reply to its first lowercase character.
// Only y and n are meaningful; anything else is Invalid.
func ParseAnswer(reply string) Answer {
	reply = strings.ToLower(strings.TrimSpace(reply))
	if reply == "" {
		return Invalid
	}
	switch reply[0] {
	case 'y':
		return Yes
	case 'n':
		return No
	default:
		return Invalid
	}
}

// Line prompts with "[Y/N]" on out and reads answers line by line from in.
type Line struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLine returns a Line prompter reading from in and writing to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{reader: bufio.NewReader(in), out: out}
}

// Confirm re-prompts until the reply starts with y or n.
// End of input counts as no.
func (p *Line) Confirm(question string) (bool, error) {
	for {
		if _, err := fmt.Fprintf(p.out, messages.PromptYesNoFmt, question); err != nil {
			return false, err
		}
		line, err := p.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		switch ParseAnswer(line) {
		case Yes:
			return true, nil
		case No:
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return false, nil
		}
		_, _ = fmt.Fprintln(p.out, messages.PromptRetryYesNo)
	}
}

// New picks the huh prompter for interactive terminals unless plain is set.
func New(plain bool, interactive bool, in io.Reader, out io.Writer) Prompter {
	if !plain && interactive {
		return NewHuh()
	}
	return NewLine(in, out)
}
