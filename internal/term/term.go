// Package term is the line-oriented console the assessment talks through.
// Everything goes through an injected reader/writer pair so the interactive
// flow is testable with buffers.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// clearLines is how many blank lines "clear" the screen before a recall
// response, hiding the stimulus on an ordinary scrollback terminal.
const clearLines = 50

// Terminal wraps buffered line input and styled output.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Println writes a plain line.
func (t *Terminal) Println(s string) {
	fmt.Fprintln(t.out, s)
}

// Header writes a styled section header.
func (t *Terminal) Header(s string) {
	fmt.Fprintln(t.out, headerStyle.Render(s))
}

// Stimulus writes the styled memorization stimulus.
func (t *Terminal) Stimulus(s string) {
	fmt.Fprintln(t.out, stimulusStyle.Render(s))
}

// Success writes a styled confirmation line.
func (t *Terminal) Success(s string) {
	fmt.Fprintln(t.out, successStyle.Render(s))
}

// Warn writes a styled warning line.
func (t *Terminal) Warn(s string) {
	fmt.Fprintln(t.out, warnStyle.Render(s))
}

// Prompt prints a label and blocks until a line of input arrives. There is
// deliberately no timeout on the read. io.EOF with a partial line still
// returns the line.
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprint(t.out, label+" ")
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Clear simulates clearing the screen by scrolling the stimulus away.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, strings.Repeat("\n", clearLines))
}
