// Package batch evaluates many independent expression trees on a bounded
// set of workers. Each tree is still reduced by the sequential evaluator.
package batch

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/Uliboooo/polish-notation/pkg/expr"
)

// Result is the outcome of evaluating one tree.
type Result[T any] struct {
	Index   int
	Tree    string
	Value   T
	Err     error
	Elapsed time.Duration
}

// OK reports whether the tree evaluated without a panic.
func (r Result[T]) OK() bool { return r.Err == nil }

// PanicError carries the value a tree's arithmetic panicked with.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("arithmetic panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, such as the
// runtime's integer divide error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Run evaluates all trees with a. Results are returned in input order.
// A panic raised by one tree's arithmetic is recorded in that tree's
// result and does not affect the others. When ctx is done before every
// tree was evaluated, the remaining results carry the context error and
// Run returns it.
func Run[T any](ctx context.Context, cfg Config, trees []expr.Node[T], a expr.Arithmetic[T]) ([]Result[T], error) {
	results := make([]Result[T], len(trees))
	done := make([]bool, len(trees))
	log := &lockedWriter{w: cfg.logf()}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())

	log.printf("Evaluating %d trees, workers %d\n", len(trees), cfg.workers())

	for i, tree := range trees {
		if gctx.Err() != nil {
			break
		}
		i, tree := i, tree
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := evaluate(i, tree, a)
			results[i] = r
			done[i] = true
			if r.OK() {
				log.printf("[tree %d] %s = %v\n", i, r.Tree, r.Value)
			} else {
				log.printf("[tree %d] %s failed: %v\n", i, r.Tree, r.Err)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	skipped := 0
	for i := range results {
		if !done[i] {
			skipped++
			results[i] = Result[T]{Index: i, Err: errors.Wrapf(err, "tree %d not evaluated", i)}
		}
	}
	if skipped > 0 {
		log.printf("Stopped early, %d trees not evaluated: %v\n", skipped, err)
		return results, errors.WithMessage(err, "batch evaluation")
	}
	return results, nil
}

// evaluate reduces one tree, converting a panic into the result's error.
func evaluate[T any](i int, tree expr.Node[T], a expr.Arithmetic[T]) (r Result[T]) {
	r.Index = i
	start := time.Now()
	defer func() {
		r.Elapsed = time.Since(start)
		if v := recover(); v != nil {
			var zero T
			r.Value = zero
			r.Err = errors.Wrapf(&PanicError{Value: v}, "tree %d", i)
		}
	}()
	r.Tree = tree.String()
	r.Value = tree.Eval(a)
	return r
}

// Values returns the values of all successful results, in order, and the
// first error encountered, if any.
func Values[T any](results []Result[T]) ([]T, error) {
	values := lo.FilterMap(results, func(r Result[T], _ int) (T, bool) {
		return r.Value, r.OK()
	})
	failed, found := lo.Find(results, func(r Result[T]) bool {
		return !r.OK()
	})
	if !found {
		return values, nil
	}
	return values, failed.Err
}

// lockedWriter serialises progress lines from concurrent workers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}
