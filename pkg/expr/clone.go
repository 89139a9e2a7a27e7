package expr

func (l *Leaf[T]) Clone() Node[T] {
	return &Leaf[T]{Val: l.Val}
}

func (b *Interior[T]) Clone() Node[T] {
	return &Interior[T]{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}

// Map returns a copy of the tree with every leaf value converted by f.
// Leaves are visited left to right.
func Map[T, U any](node Node[T], f func(T) U) Node[U] {
	switch n := node.(type) {
	case *Leaf[T]:
		return &Leaf[U]{Val: f(n.Val)}
	case *Interior[T]:
		left := Map(n.Left, f)
		right := Map(n.Right, f)
		return &Interior[U]{Op: n.Op, Left: left, Right: right}
	case *Expression[T]:
		return Map[T, U](n.Node(), f)
	default:
		panic("expr: unknown node type")
	}
}
