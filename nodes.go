package fcalc

import (
	"strconv"
	"strings"
)

// node is a node in the expression tree.
type node struct {
	kind nodeKind

	// val is the value of a number or constant.
	val float64
	// name is the constant or function name, for printing.
	name string
	fn   *Func

	left  *node
	right *node
	args  []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // val
	nodeConst // val, named name
	nodeCall  // fn applied to args

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeConst:
		return "Const"
	case nodeCall:
		return "Call"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// symbol returns the operator text of a binary node kind.
func (k nodeKind) symbol() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "^"
	default:
		panic("fcalc: no operator for node kind " + k.String())
	}
}

// precedence is an operator precedence class. Higher classes bind tighter.
type precedence int8

const (
	precAdditive precedence = iota + 1
	precMultiplicative
	precExponential
)

// class returns the precedence class of a binary node kind.
func (k nodeKind) class() precedence {
	switch k {
	case nodeAdd, nodeSub:
		return precAdditive
	case nodeMul, nodeDiv:
		return precMultiplicative
	case nodePow:
		return precExponential
	default:
		panic("fcalc: no precedence for node kind " + k.String())
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeConst:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.fn.Name)
		n.fmtargs(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.fmt(b, !square)
		b.WriteString(" " + n.kind.symbol() + " ")
		n.right.fmt(b, !square)
	default:
		panic("fcalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtargs(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	for i, arg := range n.args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.fmt(b, !square)
	}
}
