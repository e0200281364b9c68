package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/zephyrtronium/fcalc"
)

// renderer prints results and errors.
type renderer struct {
	out    io.Writer
	format string
	// indent is the display width of text already on the line the input was
	// typed on, i.e. the prompt. If it is negative, the input is not on screen
	// and is reprinted above the caret.
	indent int

	errc   *color.Color
	caretc *color.Color
	treec  *color.Color
}

func newRenderer(out io.Writer, format string, colored bool) *renderer {
	r := renderer{
		out:    out,
		format: format + "\n",
		indent: -1,
		errc:   color.New(color.FgRed, color.Bold),
		caretc: color.New(color.FgGreen, color.Bold),
		treec:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.errc, r.caretc, r.treec} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &r
}

// useColor decides whether output to f should be colored.
func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(f.Fd()))
	}
}

func (r *renderer) result(v float64) {
	fmt.Fprintf(r.out, r.format, v)
}

func (r *renderer) tree(e *fcalc.Expr) {
	fmt.Fprint(r.out, r.treec.Sprint(e.String()), " : ")
}

// err prints an evaluation error. Errors with positions get a caret under the
// offending column of line, the text as typed; cols maps error positions to
// columns of line.
func (r *renderer) err(line string, cols colmap, err error) {
	var ie fcalc.InputError
	if errors.As(err, &ie) {
		col := cols.raw(ie.Pos())
		if r.indent < 0 {
			fmt.Fprintln(r.out, line)
			fmt.Fprintln(r.out, r.caretc.Sprint(caret(line, col, 0)))
		} else {
			fmt.Fprintln(r.out, r.caretc.Sprint(caret(line, col, r.indent)))
		}
	}
	fmt.Fprintln(r.out, r.errc.Sprint(err.Error()))
}

// caret returns a line with a ^ under the 1-based rune column col of src.
// Tabs in src are copied so the caret lines up however they're displayed.
func caret(src string, col, indent int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indent))
	k := 1
	for _, c := range src {
		if k >= col {
			break
		}
		if c == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(c)))
		}
		k++
	}
	b.WriteByte('^')
	return b.String()
}
