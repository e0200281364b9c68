package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/fcalc"
)

func TestCaret(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		col    int
		indent int
		want   string
	}{
		{"first", "foo(1)", 1, 0, "^"},
		{"ascii", "2 ++ 3", 4, 0, "   ^"},
		{"indent", "2 3", 3, 2, "    ^"},
		{"wide", "中文 ++", 5, 0, "      ^"},
		{"tab", "\t2 3", 4, 0, "\t  ^"},
		{"past-end", "2 +", 9, 0, "   ^"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, caret(c.src, c.col, c.indent))
		})
	}
}

func TestRenderConflict(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, "%g", false)
	r.err("pi", nil, &fcalc.ConflictError{Name: "pi"})
	// No position, so no caret.
	assert.Equal(t, "configuration conflict: \"pi\" is both a function and a constant\n", out.String())
}

func TestRenderColor(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, "%g", true)
	_, err := fcalc.EvalString("2 3")
	r.err("2 3", nil, err)
	assert.Contains(t, out.String(), "\x1b[")

	assert.True(t, useColor("on", os.Stdout))
	assert.False(t, useColor("off", os.Stdout))
}
