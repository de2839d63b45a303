// Package console implements the operator-facing prompts.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bharatsindhu/username-history/internal/history"
)

// Console texts shown to the operator.
const (
	PromptUserID = "Please enter the user ID: "
	InvalidInput = "Invalid input. Please enter a valid user ID."
	PromptExit   = "Press enter to exit..."
)

// Prompter reads operator input line by line and echoes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadUserID prompts until a line parses as an unsigned 64-bit integer.
// It only fails when input can no longer be read.
func (p *Prompter) ReadUserID() (history.UserID, error) {
	for {
		fmt.Fprint(p.out, PromptUserID)

		line, err := p.in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return 0, &history.Error{Kind: history.KindInput, Op: "read user id", Err: err}
		}

		if id, ok := ParseUserID(line); ok {
			return id, nil
		}
		fmt.Fprintln(p.out, InvalidInput)

		if err != nil {
			return 0, &history.Error{Kind: history.KindInput, Op: "read user id", Err: err}
		}
	}
}

// WaitForExit shows the exit prompt and consumes a single byte.
func (p *Prompter) WaitForExit() error {
	fmt.Fprintln(p.out, PromptExit)

	if _, err := p.in.ReadByte(); err != nil && !errors.Is(err, io.EOF) {
		return &history.Error{Kind: history.KindInput, Op: "wait for exit", Err: err}
	}
	return nil
}

// ParseUserID accepts a base-10 unsigned integer with optional surrounding
// whitespace and at most one leading '+'.
func ParseUserID(s string) (history.UserID, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return history.UserID(n), true
}
