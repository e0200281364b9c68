package fcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// token is one element of a tokenized expression. Which fields are meaningful
// depends on kind.
type token struct {
	kind tokenKind
	// pos is the 1-based rune column of the first character of the token.
	// Groups synthesized for an unmatched close bracket start at column 1.
	pos int

	// val is the value of a number or constant.
	val float64
	// op is the node kind an operator creates: nodeAdd, nodeSub, nodeMul,
	// nodeDiv, or nodePow.
	op nodeKind
	// name is the text of a keyword, or the name of the constant or function
	// it resolved to.
	name string
	// fn is the function for a call.
	fn *Func
	// group is the contents of a bracketed group.
	group []token
	// args is the argument list of a call, one token sequence per argument.
	args [][]token
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenConst is a named constant that has been replaced by its value.
	tokenConst
	// tokenOp is a binary operator.
	tokenOp
	// tokenSep is a function argument separator, either , or ;.
	tokenSep
	// tokenCall is a resolved function call with its arguments.
	tokenCall
	// tokenKeyword is an identifier that has not yet been resolved. None
	// survive resolution.
	tokenKeyword
	// tokenGroup is a parenthesized token sequence.
	tokenGroup
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenConst:
		return "Const"
	case tokenOp:
		return "Op"
	case tokenSep:
		return "Sep"
	case tokenCall:
		return "Call"
	case tokenKeyword:
		return "Keyword"
	case tokenGroup:
		return "Group"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (t token) String() string {
	var b strings.Builder
	t.fmt(&b)
	return b.String()
}

func (t token) fmt(b *strings.Builder) {
	switch t.kind {
	case tokenNum, tokenConst:
		b.WriteString(strconv.FormatFloat(t.val, 'g', -1, 64))
	case tokenOp:
		b.WriteString(t.op.symbol())
	case tokenSep:
		b.WriteByte(',')
	case tokenKeyword:
		b.WriteString(t.name)
	case tokenGroup:
		fmttokens(b, t.group)
	case tokenCall:
		b.WriteString(t.name)
		b.WriteByte('[')
		for i, arg := range t.args {
			if i > 0 {
				b.WriteString(", ")
			}
			fmttokens(b, arg)
		}
		b.WriteByte(']')
	default:
		b.WriteString(t.kind.String())
	}
}

func fmttokens(b *strings.Builder, seq []token) {
	b.WriteByte('(')
	for i, t := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.fmt(b)
	}
	b.WriteByte(')')
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// opkinds maps each operator rune, by its index in Operators, to the node
// kind it creates.
var opkinds = [...]nodeKind{nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow}

// lexer splits an expression into tokens. Each open bracket starts a new
// scope; the matching close bracket turns the scope into a group token in the
// enclosing one.
type lexer struct {
	// scopes is the stack of token sequences being built. scopes[0] is the
	// outermost.
	scopes [][]token
	// opens holds the column of the bracket that opened each scope.
	opens []int
	// buf holds a partial number or keyword.
	buf strings.Builder
	// bufkind is tokenNum or tokenKeyword while buf is in use.
	bufkind tokenKind
	// bufpos is the column of the first rune in buf.
	bufpos int
	// bufdot is whether buf holds a number with a decimal point.
	bufdot bool
	// col is the column of the most recently read rune.
	col    int
	strict bool
}

// tokenize reads an expression to EOF and returns its tokens. Brackets become
// nested groups. A close bracket with no open bracket encloses everything
// before it, and open brackets left at the end close there.
func tokenize(src io.RuneReader, strict bool) ([]token, error) {
	l := lexer{
		scopes: [][]token{nil},
		opens:  []int{1},
		strict: strict,
	}
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		l.col++
		if err := l.scan(r); err != nil {
			return nil, err
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	for len(l.scopes) > 1 {
		if err := l.close(); err != nil {
			return nil, err
		}
	}
	return l.scopes[0], nil
}

// scan handles one rune of input.
func (l *lexer) scan(r rune) error {
	switch {
	case '0' <= r && r <= '9', r == '.':
		if l.bufkind == tokenKeyword || r == '.' && l.bufdot {
			if err := l.flush(); err != nil {
				return err
			}
		}
		l.start(tokenNum)
		l.bufdot = l.bufdot || r == '.'
		l.buf.WriteRune(r)
		return nil
	case unicode.IsLetter(r):
		if l.bufkind == tokenNum {
			if err := l.flush(); err != nil {
				return err
			}
		}
		l.start(tokenKeyword)
		l.buf.WriteRune(r)
		return nil
	}
	if err := l.flush(); err != nil {
		return err
	}
	if k := strings.IndexRune(Operators, r); k >= 0 {
		return l.push(token{kind: tokenOp, pos: l.col, op: opkinds[k]})
	}
	switch r {
	case ',', ';':
		return l.push(token{kind: tokenSep, pos: l.col})
	case '(':
		l.scopes = append(l.scopes, nil)
		l.opens = append(l.opens, l.col)
		return nil
	case ')':
		if len(l.scopes) == 1 {
			// No matching open bracket. Pretend there was one before
			// everything so far.
			l.scopes = append([][]token{nil}, l.scopes...)
			l.opens = append([]int{1}, l.opens...)
		}
		return l.close()
	}
	if l.strict && !unicode.IsSpace(r) {
		return &CharError{Col: l.col, Char: r}
	}
	return nil
}

// start begins a number or keyword in the buffer if it is empty.
func (l *lexer) start(kind tokenKind) {
	if l.bufkind != tokenNone {
		return
	}
	l.bufkind = kind
	l.bufpos = l.col
}

// flush emits the token in the buffer, if any.
func (l *lexer) flush() error {
	if l.bufkind == tokenNone {
		return nil
	}
	text := l.buf.String()
	tok := token{kind: l.bufkind, pos: l.bufpos}
	l.buf.Reset()
	l.bufkind = tokenNone
	l.bufdot = false
	switch tok.kind {
	case tokenNum:
		// Out of range literals parse as ±Inf along with ErrRange, which is
		// what we want anyway.
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return &ExpressionError{Col: tok.pos, Reason: "malformed number " + strconv.Quote(text)}
		}
		tok.val = v
	case tokenKeyword:
		tok.name = text
	default:
		panic("fcalc: invalid buffered token kind " + tok.kind.String())
	}
	return l.push(tok)
}

// close pops the innermost scope and appends it as a group to its parent.
func (l *lexer) close() error {
	n := len(l.scopes) - 1
	tok := token{kind: tokenGroup, pos: l.opens[n], group: l.scopes[n]}
	l.scopes = l.scopes[:n]
	l.opens = l.opens[:n]
	return l.push(tok)
}

// push appends a token to the current scope and checks it against the one
// before it.
func (l *lexer) push(tok token) error {
	n := len(l.scopes) - 1
	l.scopes[n] = append(l.scopes[n], tok)
	return adjacent(l.scopes[n])
}

// adjacent checks whether the last two tokens of seq may appear together.
func adjacent(seq []token) error {
	if len(seq) < 2 {
		return nil
	}
	a, b := seq[len(seq)-2], seq[len(seq)-1]
	var reason string
	switch {
	case a.kind == tokenNum && b.kind == tokenNum:
		reason = "two numbers in a row"
	case a.kind == tokenOp && b.kind == tokenOp:
		reason = "two operators in a row"
	case a.kind == tokenOp && b.kind == tokenSep, a.kind == tokenSep && b.kind == tokenOp:
		reason = "operator next to separator"
	case a.kind == tokenSep && b.kind == tokenSep:
		reason = "two separators in a row"
	default:
		return nil
	}
	return &ExpressionError{Col: b.pos, Reason: reason}
}
