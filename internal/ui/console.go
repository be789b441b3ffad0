// Where: internal/ui/console.go
// What: Console output helpers for the run report.
// Why: Standardize markers, indentation, and banners across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 60

// Console provides helper methods for formatted output. When ASCII is set
// the unicode result markers degrade to plain text, for piped output.
type Console struct {
	Out   io.Writer
	ASCII bool
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Rule prints a horizontal banner line.
func (c *Console) Rule() {
	fmt.Fprintln(c.Out, strings.Repeat("=", ruleWidth))
}

// Printf prints a formatted line.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format+"\n", args...)
}

// Blank prints an empty line.
func (c *Console) Blank() {
	fmt.Fprintln(c.Out)
}

// Beginf prints a progress prefix without a trailing newline, so the result
// marker lands on the same line.
// Example: [1/3] Generating STL for: Jane Doe...
func (c *Console) Beginf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// OK terminates a progress line with a success marker.
func (c *Console) OK(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", c.mark("✓", "OK"), msg)
}

// Fail terminates a progress line with a failure marker.
func (c *Console) Fail(msg string) {
	fmt.Fprintf(c.Out, "%s %s\n", c.mark("✗", "FAIL"), msg)
}

// Detail prints an indented diagnostic line under a progress line.
func (c *Console) Detail(msg string) {
	fmt.Fprintf(c.Out, "  %s\n", msg)
}

// Item prints a key-value item with indentation.
// Example:    /usr/bin/openscad:  ok
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

func (c *Console) mark(unicode, ascii string) string {
	if c.ASCII {
		return ascii
	}
	return unicode
}
