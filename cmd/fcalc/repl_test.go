package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(cfg Config) (*session, *bytes.Buffer) {
	var out bytes.Buffer
	log, _ := testLogger()
	return newSession(cfg, &out, false, log), &out
}

func TestLoop(t *testing.T) {
	cases := []struct {
		name string
		cfg  func(*Config)
		in   string
		out  string
	}{
		{
			name: "results",
			in:   "2 + 3 * 4\n(2 + 3) * 4\n123 + 456) * 789\n",
			out:  "14\n20\n456831\n",
		},
		{
			name: "empty-line",
			in:   "1\n\n2\n",
			out:  "1\n",
		},
		{
			name: "crlf",
			in:   "2\r\n\r\n3\r\n",
			out:  "2\n",
		},
		{
			name: "no-newline",
			in:   "2pi / pi",
			out:  "2\n",
		},
		{
			name: "error-continues",
			in:   "2 ++ 3\n5\n",
			out:  "2 ++ 3\n   ^\n4: invalid expression: two operators in a row\n5\n",
		},
		{
			name: "unknown",
			in:   "foo(1)\n",
			out:  "foo(1)\n^\n1: unknown keyword \"foo\"\n",
		},
		{
			name: "arity",
			in:   "2 sin()\n",
			out:  "2 sin()\n  ^\n3: wrong number of arguments to sin: expected 1, got 0\n",
		},
		{
			name: "normalize",
			in:   "２＋３\n",
			out:  "5\n",
		},
		{
			name: "format",
			cfg:  func(c *Config) { c.Format = "%.3f" },
			in:   "pi\n",
			out:  "3.142\n",
		},
		{
			name: "echo",
			cfg:  func(c *Config) { c.Echo = true },
			in:   "1 + 2\n",
			out:  "([1] + [2]) : 3\n",
		},
		{
			name: "left-assoc",
			cfg:  func(c *Config) { c.LeftAssoc = true },
			in:   "10 - 3 - 2\n",
			out:  "5\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := defaultConfig()
			if c.cfg != nil {
				c.cfg(&cfg)
			}
			s, out := testSession(cfg)
			require.NoError(t, s.loop(strings.NewReader(c.in), false))
			assert.Equal(t, c.out, out.String())
		})
	}
}

func TestLoopInteractive(t *testing.T) {
	s, out := testSession(defaultConfig())
	require.NoError(t, s.loop(strings.NewReader("2 3\n4\n"), true))
	assert.Equal(t, "> "+"    ^\n3: invalid expression: two numbers in a row\n"+"> 4\n"+"> ", out.String())
}

func TestLoopInteractiveFullwidth(t *testing.T) {
	s, out := testSession(defaultConfig())
	require.NoError(t, s.loop(strings.NewReader("２ ３\n"), true))
	// The caret sits under the typed ３, which is two cells past the ２.
	assert.Equal(t, "> "+"     ^\n3: invalid expression: two numbers in a row\n"+"> ", out.String())
}

func TestLoopFullwidthReprint(t *testing.T) {
	s, out := testSession(defaultConfig())
	require.NoError(t, s.loop(strings.NewReader("ｓｉｎ()\n"), false))
	assert.Equal(t, "ｓｉｎ()\n^\n1: wrong number of arguments to sin: expected 1, got 0\n", out.String())
}

func TestNormalize(t *testing.T) {
	src, cols := normalize("½+ｘ")
	assert.Equal(t, "1\u20442+x", src)
	assert.Equal(t, colmap{0, 1, 1, 1, 2, 3, 4}, cols)
	assert.Equal(t, 1, cols.raw(3))
	assert.Equal(t, 2, cols.raw(4))
	assert.Equal(t, 4, cols.raw(6))
	assert.Equal(t, 5, cols.raw(7))

	var id colmap
	assert.Equal(t, 9, id.raw(9))
}

func TestArgs(t *testing.T) {
	s, out := testSession(defaultConfig())
	require.NoError(t, s.args([]string{"sqrt(4)", "sqrt(9"}))
	assert.Equal(t, "2\n3\n", out.String())

	s, out = testSession(defaultConfig())
	err := s.args([]string{"foo(1)", "1 + 1"})
	assert.ErrorIs(t, err, errEvalFailed)
	assert.Contains(t, out.String(), `unknown keyword "foo"`)
	assert.True(t, strings.HasSuffix(out.String(), "\n2\n"), "later arguments still evaluate: %q", out.String())
}
