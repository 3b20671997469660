// Package help renders the help text of options as a two-column table: the
// names of an option on the left, its description on the right, word-wrapped
// to the width of the terminal.
//
// An option with a short name "v", a long name "verbose" and a default value
// looks like this:
//
//	  -v [ --verbose ] arg (=2)  Level of detail of the messages
//	                             written while processing.
package help

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jpvetterli/opts"
	"golang.org/x/term"
)

// DefaultWidth is the terminal width assumed when the output is not a
// terminal.
const DefaultWidth = 80


// Table is an opts.Renderer writing one option per row. TermWidth is the
// total width available; descriptions are wrapped to fit in it.
type Table struct {
	TermWidth int
}

var _ opts.Renderer = Table{}

// Width returns the number of columns taken by the names of o, the "arg"
// marker and the default value, plus padding.
func (t Table) Width(o *opts.Option) int {
	n := StringWidth(o.Name())
	switch {
	case n <= 1:
		n = 2
	case o.Short() != 0:
		n += 7
	}
	if !o.IsFlag() {
		n += 4
		if o.HasDefault() {
			n += 4 + StringWidth(o.Default())
		}
	}
	return n + 6
}

// Render writes the row of o. When the names do not leave room for at least
// two blanks before column, the description starts on the next line.
func (t Table) Render(w io.Writer, o *opts.Option, column int) error {
	var b strings.Builder
	left := spelling(o)
	b.WriteString("  ")
	b.WriteString(emphasis(w).Sprint(left))
	used := 2 + StringWidth(left)
	if !o.IsFlag() {
		b.WriteString(" arg")
		used += 4
		if o.HasDefault() {
			def := " (=" + o.Default() + ")"
			b.WriteString(def)
			used += StringWidth(def)
		}
	}

	indent := column
	if used+2 > column {
		b.WriteString("\n")
	} else {
		indent = column - used
	}
	for _, line := range Wrap(o.Description(), t.TermWidth-column) {
		if len(line) > 0 {
			b.WriteString(strings.Repeat(" ", indent))
			b.WriteString(line)
		}
		b.WriteString("\n")
		indent = column
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// spelling returns "-x [ --long ]", "-x" or "--long".
func spelling(o *opts.Option) string {
	switch {
	case o.Short() == 0:
		return "--" + o.Name()
	case StringWidth(o.Name()) > 1:
		return "-" + string(o.Short()) + " [ --" + o.Name() + " ]"
	default:
		return "-" + string(o.Short())
	}
}

// emphasis returns the color used for option names written to w. It prints
// plain text unless w is a terminal and NO_COLOR is not set.
func emphasis(w io.Writer) *color.Color {
	c := color.New(color.Bold)
	if _, ok := terminal(w); !ok {
		c.DisableColor()
	}
	return c
}

// terminal returns the file descriptor of w if w is a terminal.
func terminal(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// TerminalWidth returns the width of the terminal w writes to, or
// DefaultWidth if w is not a terminal.
func TerminalWidth(w io.Writer) int {
	if fd, ok := terminal(w); ok {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			return cols
		}
	}
	return DefaultWidth
}

// Print writes the help text of all visible options of r. Descriptions are
// aligned in a column never further right than half the terminal width.
func Print(w io.Writer, r *opts.Registry) error {
	width := TerminalWidth(w)
	return r.WriteHelp(w, Table{TermWidth: width}, width/2)
}
