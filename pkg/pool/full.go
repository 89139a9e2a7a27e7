package pool

import (
	"math/rand"

	"github.com/Uliboooo/polish-notation/pkg/expr"
)

func init() {
	Register("full", func() Pool { return &FullPool{} })
}

// FullPool uses all four operators over ints 0-10, so trees built from it
// can divide by zero.
type FullPool struct{}

func (p *FullPool) Name() string { return "full" }

func (p *FullPool) RandomLeaf(rng *rand.Rand) expr.Node[int64] {
	return expr.NewLeaf(int64(rng.Intn(11)))
}

var fullOps = []expr.Operator{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
	expr.OpDiv,
}

func (p *FullPool) RandomOperator(rng *rand.Rand) expr.Operator {
	return fullOps[rng.Intn(len(fullOps))]
}

func (p *FullPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node[int64] {
	return randomTree(p, rng, maxDepth)
}
