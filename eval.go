package fcalc

import (
	"io"
	"math"
	"strings"
)

// Eval evaluates the expression. Division by zero and arguments outside a
// function's domain produce infinities or NaN rather than errors.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

// eval computes the node's value.
func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum, nodeConst:
		return n.val
	case nodeCall:
		args := make([]float64, len(n.args))
		for i, arg := range n.args {
			args[i] = arg.eval()
		}
		return n.fn.Call(args)
	case nodeAdd:
		l := n.left.eval()
		return l + n.right.eval()
	case nodeSub:
		l := n.left.eval()
		return l - n.right.eval()
	case nodeMul:
		l := n.left.eval()
		return l * n.right.eval()
	case nodeDiv:
		l := n.left.eval()
		return l / n.right.eval()
	case nodePow:
		l := n.left.eval()
		return math.Pow(l, n.right.eval())
	default:
		panic("fcalc: invalid expression node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneReader, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval(), nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}
