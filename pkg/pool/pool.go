package pool

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/Uliboooo/polish-notation/pkg/expr"
)

// Pool provides random building blocks for constructing expression trees.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) expr.Node[int64]
	RandomOperator(rng *rand.Rand) expr.Operator
	RandomTree(rng *rand.Rand, maxDepth int) expr.Node[int64]
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown pool: %s (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns all registered pool names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Forest builds count random trees from the same pool.
func Forest(p Pool, rng *rand.Rand, count, maxDepth int) []expr.Node[int64] {
	trees := make([]expr.Node[int64], count)
	for i := range trees {
		trees[i] = p.RandomTree(rng, maxDepth)
	}
	return trees
}

// randomTree is a shared helper for building random trees.
func randomTree(p Pool, rng *rand.Rand, maxDepth int) expr.Node[int64] {
	if maxDepth <= 1 {
		return p.RandomLeaf(rng)
	}
	// Bias toward leaves to keep trees small
	if rng.Float64() < 0.3 {
		return p.RandomLeaf(rng)
	}
	return expr.NewInterior(
		p.RandomOperator(rng),
		randomTree(p, rng, maxDepth-1),
		randomTree(p, rng, maxDepth-1),
	)
}
