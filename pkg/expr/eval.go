package expr

import "fmt"

// Evaluate reduces a tree over a built-in numeric type to a single value.
// Failures of T's arithmetic, such as integer division by zero, are not
// recovered.
func Evaluate[T Number](n Node[T]) T {
	return n.Eval(Native[T]{})
}

// EvaluateWith reduces a tree using the operations supplied by a.
func EvaluateWith[T any](n Node[T], a Arithmetic[T]) T {
	return n.Eval(a)
}

// Apply applies a single operator to x and y, in that order.
func Apply[T any](a Arithmetic[T], op Operator, x, y T) T {
	switch op {
	case OpAdd:
		return a.Add(x, y)
	case OpSub:
		return a.Sub(x, y)
	case OpMul:
		return a.Mul(x, y)
	case OpDiv:
		return a.Div(x, y)
	default:
		panic(fmt.Sprintf("expr: unknown operator %d", int(op)))
	}
}

func (l *Leaf[T]) Eval(a Arithmetic[T]) T {
	return l.Val
}

// Eval evaluates the left child completely before the right one.
func (b *Interior[T]) Eval(a Arithmetic[T]) T {
	left := b.Left.Eval(a)
	right := b.Right.Eval(a)
	return Apply(a, b.Op, left, right)
}
