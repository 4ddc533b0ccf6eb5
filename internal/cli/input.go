package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Prompter asks the user for secret input.
type Prompter interface {
	// ReadSecret prints prompt and returns what the user typed, without the
	// line terminator. The caller owns the slice and should wipe it.
	// io.EOF is returned when input ends before anything was typed.
	ReadSecret(prompt string) ([]byte, error)
}

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

type terminalPrompter struct {
	fd  int
	out io.Writer
}

// ReadSecret reads from the terminal with echo disabled.
func (p *terminalPrompter) ReadSecret(prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return nil, err
	}
	secret, err := readPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return nil, err
	}
	return secret, nil
}

type linePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// ReadSecret reads one line. A final line without a newline is accepted.
func (p *linePrompter) ReadSecret(prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return nil, err
	}
	line, err := p.reader.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return bytes.TrimRight(line, "\r\n"), nil
		}
		return nil, err
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

// NewPrompter returns a Prompter reading from in. Prompts go to out.
// A terminal is read without echo; anything else (a pipe, a file) is read
// line by line.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		return &terminalPrompter{fd: fd, out: out}
	}
	return NewReaderPrompter(in, out)
}

// NewReaderPrompter returns a Prompter that reads lines from r.
func NewReaderPrompter(r io.Reader, out io.Writer) Prompter {
	return &linePrompter{reader: bufio.NewReader(r), out: out}
}
