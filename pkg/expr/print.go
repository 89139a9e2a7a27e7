package expr

import (
	"fmt"
	"strings"
)

// String methods render Polish (prefix) notation, e.g. "* + 1 2 + 3 4".

func (l *Leaf[T]) String() string {
	return fmt.Sprint(l.Val)
}

func (b *Interior[T]) String() string {
	var sb strings.Builder
	writePrefix[T](&sb, b)
	return sb.String()
}

func writePrefix[T any](sb *strings.Builder, node Node[T]) {
	switch n := node.(type) {
	case *Interior[T]:
		sb.WriteString(n.Op.String())
		sb.WriteByte(' ')
		writePrefix(sb, n.Left)
		sb.WriteByte(' ')
		writePrefix(sb, n.Right)
	case *Expression[T]:
		writePrefix[T](sb, n.Node())
	default:
		sb.WriteString(node.String())
	}
}

// Infix renders the tree fully parenthesised, e.g. "((1 + 2) * (3 + 4))".
func Infix[T any](node Node[T]) string {
	switch n := node.(type) {
	case *Interior[T]:
		return fmt.Sprintf("(%s %s %s)", Infix(n.Left), n.Op, Infix(n.Right))
	case *Expression[T]:
		return Infix[T](n.Node())
	default:
		return node.String()
	}
}

// LaTeX renders the tree as a LaTeX math expression.
func LaTeX[T any](node Node[T]) string {
	switch n := node.(type) {
	case *Interior[T]:
		left := LaTeX(n.Left)
		right := LaTeX(n.Right)
		switch n.Op {
		case OpAdd:
			return fmt.Sprintf("{%s} + {%s}", left, right)
		case OpSub:
			return fmt.Sprintf("{%s} - {%s}", left, right)
		case OpMul:
			return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
		case OpDiv:
			return fmt.Sprintf("\\frac{%s}{%s}", left, right)
		default:
			return ""
		}
	case *Expression[T]:
		return LaTeX[T](n.Node())
	default:
		return node.String()
	}
}
