package pool

import (
	"math/rand"

	"github.com/Uliboooo/polish-notation/pkg/expr"
)

func init() {
	Register("conservative", func() Pool { return &ConservativePool{} })
}

// ConservativePool provides ints 1-10 and the operators that can never
// fail on them: addition, subtraction and multiplication.
type ConservativePool struct{}

func (p *ConservativePool) Name() string { return "conservative" }

func (p *ConservativePool) RandomLeaf(rng *rand.Rand) expr.Node[int64] {
	return expr.NewLeaf(int64(rng.Intn(10) + 1))
}

var conservativeOps = []expr.Operator{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMul,
}

func (p *ConservativePool) RandomOperator(rng *rand.Rand) expr.Operator {
	return conservativeOps[rng.Intn(len(conservativeOps))]
}

func (p *ConservativePool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node[int64] {
	return randomTree(p, rng, maxDepth)
}
