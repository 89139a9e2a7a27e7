package expr

func (l *Leaf[T]) NodeCount() int { return 1 }
func (b *Interior[T]) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

func (l *Leaf[T]) Depth() int { return 1 }
func (b *Interior[T]) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// WeightedComplexity returns a complexity score with heavier weight for
// multiplication and division than for addition and subtraction.
func WeightedComplexity[T any](node Node[T]) float64 {
	switch n := node.(type) {
	case *Leaf[T]:
		return 1.0
	case *Interior[T]:
		return operatorWeight(n.Op) + WeightedComplexity(n.Left) + WeightedComplexity(n.Right)
	case *Expression[T]:
		return WeightedComplexity[T](n.Node())
	default:
		return 1.0
	}
}

func operatorWeight(op Operator) float64 {
	switch op {
	case OpAdd, OpSub:
		return 1.0
	case OpMul, OpDiv:
		return 1.5
	default:
		return 1.5
	}
}
