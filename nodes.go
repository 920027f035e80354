package pebble

import (
	"strings"
)

// node is a node in the abstract syntax tree of a statement.
type node struct {
	kind nodeKind

	// name is the literal text of a number, the identifier of a variable or
	// function, or the variable a let binds.
	name string
	num  float64
	// pos is the column of the token that created the node.
	pos int

	left  *node
	right *node
	// args is the argument list of a call or the statements of a chain.
	args []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num
	nodeName // push lookup(name)

	nodeCall  // evaluate args in order, push func name(args...)
	nodeLet   // evaluate left, bind name to it
	nodeChain // evaluate args in order, keep only the last

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the node fully parenthesized. Lets and chains are statements,
// which can't be parenthesized, so they are written bare.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeLet:
		b.WriteString("let ")
		b.WriteString(n.name)
		b.WriteString(" = ")
		n.left.fmt(b)
		return
	case nodeChain:
		for i, s := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			s.fmt(b)
		}
		return
	}
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd:
		n.left.fmt(b)
		b.WriteString(" + ")
		n.right.fmt(b)
	case nodeSub:
		n.left.fmt(b)
		b.WriteString(" - ")
		n.right.fmt(b)
	case nodeMul:
		n.left.fmt(b)
		b.WriteString(" * ")
		n.right.fmt(b)
	case nodeDiv:
		n.left.fmt(b)
		b.WriteString(" / ")
		n.right.fmt(b)
	default:
		panic("pebble: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
