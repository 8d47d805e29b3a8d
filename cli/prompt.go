package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// PROMPTER — Validated Interactive Input
// ============================================================================
// Every answer is trimmed and lowercased before matching; invalid answers
// re-prompt with an error message, never exit. EOF surfaces as
// ErrInputClosed so the session can end cleanly.
// ============================================================================

// ErrInputClosed is returned when stdin is exhausted mid-prompt.
var ErrInputClosed = errors.New("cli: input closed")

// Prompter reads validated answers from an input stream.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// read returns the next trimmed, lowercased line.
func (p *Prompter) read() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("cli: read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.ToLower(strings.TrimSpace(p.scanner.Text())), nil
}

// Choice keeps asking until the answer is one of valid.
func (p *Prompter) Choice(prompt string, valid []string, errMsg string) (string, error) {
	set := make(map[string]bool, len(valid))
	for _, v := range valid {
		set[strings.ToLower(v)] = true
	}
	for {
		fmt.Fprint(p.out, prompt)
		answer, err := p.read()
		if err != nil {
			return "", err
		}
		if set[answer] {
			return answer, nil
		}
		fmt.Fprintln(p.out, errMsg)
	}
}

// YesNo asks once; only a literal "yes" answers true, anything else false.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	fmt.Fprint(p.out, prompt)
	answer, err := p.read()
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}
