package fcalc

import (
	"io"
	"strings"
)

// Expr = Sum
// Sum = Product { ('+' | '-') Product }
// Product = Power { ('*' | '/') Power }
// Power = Terms { '^' Terms }
// Terms = Term { Term }
// Term = num | const | func '(' [ Sum { (',' | ';') Sum } ] ')' | '(' Sum ')'
//
// Each rule splits at the first operator of its class, so chains group to the
// right unless LeftAssociative is given.

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse reads an expression to EOF and builds its expression tree. The given
// options are applied in order.
func Parse(src io.RuneReader, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	toks, err := tokenize(src, p.strict)
	if err != nil {
		return nil, err
	}
	toks, err = p.resolver().resolve(toks)
	if err != nil {
		return nil, err
	}
	n, err := build(toks, &p, 1)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// String formats the expression with every subexpression bracketed.
func (e *Expr) String() string {
	return e.n.String()
}

// build builds the expression tree for a resolved token sequence. col is the
// position to report if seq is empty.
func build(seq []token, p *parsectx, col int) (*node, error) {
	switch len(seq) {
	case 0:
		return nil, &ExpressionError{Col: col, Reason: "missing operand"}
	case 1:
		return buildterm(seq[0], p)
	}
	for prec := precAdditive; prec <= precExponential; prec++ {
		i := split(seq, prec, p.leftassoc && prec != precExponential)
		if i < 0 {
			continue
		}
		op := seq[i]
		l, err := build(seq[:i], p, op.pos)
		if err != nil {
			return nil, err
		}
		r, err := build(seq[i+1:], p, op.pos)
		if err != nil {
			return nil, err
		}
		return &node{kind: op.op, left: l, right: r}, nil
	}
	// No operators, so this is an implicit multiplication: 2 pi (x) -> 2 * (pi (x)).
	l, err := buildterm(seq[0], p)
	if err != nil {
		return nil, err
	}
	r, err := build(seq[1:], p, seq[1].pos)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeMul, left: l, right: r}, nil
}

// split finds the index of the first operator in seq with the given
// precedence, or the last if last is true. The result is -1 if there is none.
func split(seq []token, prec precedence, last bool) int {
	k := -1
	for i, tok := range seq {
		if tok.kind != tokenOp || tok.op.class() != prec {
			continue
		}
		if !last {
			return i
		}
		k = i
	}
	return k
}

// buildterm builds the tree for a single token.
func buildterm(tok token, p *parsectx) (*node, error) {
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, val: tok.val}, nil
	case tokenConst:
		return &node{kind: nodeConst, val: tok.val, name: tok.name}, nil
	case tokenGroup:
		return build(tok.group, p, tok.pos)
	case tokenCall:
		if len(tok.args) != tok.fn.Arity {
			return nil, &CallError{Col: tok.pos, Func: tok.name, Want: tok.fn.Arity, Got: len(tok.args)}
		}
		n := &node{kind: nodeCall, name: tok.name, fn: tok.fn, args: make([]*node, len(tok.args))}
		for i, arg := range tok.args {
			a, err := build(arg, p, tok.pos)
			if err != nil {
				return nil, err
			}
			n.args[i] = a
		}
		return n, nil
	case tokenOp:
		return nil, &ExpressionError{Col: tok.pos, Reason: "operator " + tok.op.symbol() + " without operands"}
	case tokenSep:
		return nil, &ExpressionError{Col: tok.pos, Reason: "separator outside function arguments"}
	case tokenKeyword:
		panic("fcalc: unresolved keyword " + tok.name)
	default:
		panic("fcalc: invalid token " + tok.kind.String())
	}
}
