package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/splitmate/splitmate/internal/theme"
)

// Terminal wraps line-based input and styled output. Tests drive it with a
// strings.Reader and a bytes.Buffer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal over the given reader and writer.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Printf writes formatted output.
func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// Println writes a line.
func (t *Terminal) Println(args ...any) {
	fmt.Fprintln(t.out, args...)
}

// Prompt asks for one line of input. An empty answer returns def, so a form
// keeps its previous value when the user just presses enter.
func (t *Terminal) Prompt(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(t.out, "%s: ", label)
	}

	line, err := t.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Alert surfaces a blocking message: the user must press enter to continue.
func (t *Terminal) Alert(title, message string) {
	fmt.Fprintf(t.out, "\n%s\n%s\n", theme.Bold(title), message)
	fmt.Fprint(t.out, theme.Muted("(press enter)"))
	_, _ = t.in.ReadString('\n')
	fmt.Fprintln(t.out)
}
