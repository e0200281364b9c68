package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jcgregorio/logger"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/zephyrtronium/fcalc"
)

// errEvalFailed indicates that at least one expression given on the command
// line failed to evaluate. The errors themselves have already been printed.
var errEvalFailed = errors.New("evaluation failed")

// session evaluates expressions and prints the results.
type session struct {
	cfg  Config
	opts []fcalc.ParseOption
	r    *renderer
	log  *logger.Logger
}

func newSession(cfg Config, out io.Writer, colored bool, log *logger.Logger) *session {
	return &session{
		cfg:  cfg,
		opts: cfg.parseOptions(),
		r:    newRenderer(out, cfg.Format, colored),
		log:  log,
	}
}

// eval evaluates one expression and prints its result or error. It reports
// whether evaluation succeeded.
func (s *session) eval(line string) bool {
	src := line
	var cols colmap
	if s.cfg.Normalize {
		src, cols = normalize(line)
	}
	s.log.Debugf("evaluating %q", src)
	e, err := fcalc.ParseString(src, s.opts...)
	if err != nil {
		s.log.Debugf("%q failed: %v", src, err)
		s.r.err(line, cols, err)
		return false
	}
	if s.cfg.Echo {
		s.r.tree(e)
	}
	s.r.result(e.Eval())
	return true
}

// colmap maps 1-based rune columns of normalized text to columns of the text
// it was normalized from. The last element is one past the end of the
// original. A nil colmap is the identity.
type colmap []int

func (m colmap) raw(col int) int {
	if m == nil || col < 1 {
		return col
	}
	if last := len(m) - 1; col >= last {
		return m[last] + col - last
	}
	return m[col]
}

// normalize applies NFKC to line one normalization segment at a time so that
// columns in the result can be traced back to line.
func normalize(line string) (string, colmap) {
	var b strings.Builder
	cols := colmap{0}
	col := 1
	for len(line) > 0 {
		n := norm.NFKC.NextBoundaryInString(line, true)
		if n <= 0 {
			n = len(line)
		}
		seg := norm.NFKC.String(line[:n])
		for range seg {
			cols = append(cols, col)
		}
		b.WriteString(seg)
		col += utf8.RuneCountInString(line[:n])
		line = line[n:]
	}
	return b.String(), append(cols, col)
}

// args evaluates each argument as a separate expression.
func (s *session) args(srcs []string) error {
	ok := true
	for _, src := range srcs {
		ok = s.eval(src) && ok
	}
	if !ok {
		return errEvalFailed
	}
	return nil
}

// loop reads and evaluates lines from in until an empty line or EOF. If
// interactive, it prints the prompt before each line and points errors at
// the typed input instead of reprinting it.
func (s *session) loop(in io.Reader, interactive bool) error {
	if interactive {
		s.r.indent = runewidth.StringWidth(s.cfg.Prompt)
	}
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(s.r.out, s.cfg.Prompt)
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if line == "" {
			s.log.Debugf("empty line, stopping")
			return nil
		}
		s.eval(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("couldn't read input: %w", err)
	}
	return nil
}
