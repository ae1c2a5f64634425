package adapter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Console implements port.Console on top of a line reader and a writer.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

// NewConsole creates a console. Colors are only used when out is a terminal.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
	if !isTerminal(out) {
		c.success.DisableColor()
		c.warn.DisableColor()
		c.fail.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Prompt writes label and reads one line, without its line terminator.
// A final line without a newline is still returned; io.EOF is returned only
// when there is no input left at all.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Info prints a plain line
func (c *Console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Success prints a green line
func (c *Console) Success(format string, args ...interface{}) {
	c.success.Fprintf(c.out, format+"\n", args...)
}

// Warn prints a yellow line
func (c *Console) Warn(format string, args ...interface{}) {
	c.warn.Fprintf(c.out, format+"\n", args...)
}

// Error prints a red line
func (c *Console) Error(format string, args ...interface{}) {
	c.fail.Fprintf(c.out, format+"\n", args...)
}
