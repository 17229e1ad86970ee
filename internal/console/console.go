// Package console implements line-oriented prompting and the numbered menu loop.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads user input one line at a time and writes plain text output.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Out returns the output stream.
func (c *Console) Out() io.Writer {
	return c.out
}

// Println writes the operands followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// ReadLine returns the next input line without its line terminator.
// io.EOF is returned only when no more input exists.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// Prompt writes label and reads the answer, leaving surrounding spaces intact.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.ReadLine()
}

// Ask is Prompt with surrounding whitespace trimmed from the answer.
func (c *Console) Ask(label string) (string, error) {
	answer, err := c.Prompt(label)
	return strings.TrimSpace(answer), err
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
