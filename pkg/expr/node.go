package expr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Node is the interface for all expression tree nodes.
type Node[T any] interface {
	Eval(a Arithmetic[T]) T
	String() string
	Clone() Node[T]
	NodeCount() int
	Depth() int
}

// Operator identifies a binary operation.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

var operatorSymbols = map[Operator]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

var operatorNames = map[string]Operator{
	"+":   OpAdd,
	"add": OpAdd,
	"-":   OpSub,
	"sub": OpSub,
	"*":   OpMul,
	"mul": OpMul,
	"/":   OpDiv,
	"div": OpDiv,
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Valid reports whether op is one of the four supported operators.
func (op Operator) Valid() bool {
	_, ok := operatorSymbols[op]
	return ok
}

// ParseOperator accepts an operator symbol ("+") or name ("add").
func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return 0, errors.Errorf("unknown operator: %q", s)
}

// Leaf holds a single value.
type Leaf[T any] struct {
	Val T
}

// Interior applies a binary operation to two child expressions.
type Interior[T any] struct {
	Op          Operator
	Left, Right Node[T]
}

// Expression is the root of a tree: an operator over two children.
// Any Node can be evaluated as a root as well; Expression only exists for
// callers that want the root to be an operation rather than a bare value.
type Expression[T any] Interior[T]

// NewLeaf returns a leaf holding v.
func NewLeaf[T any](v T) *Leaf[T] {
	return &Leaf[T]{Val: v}
}

// NewInterior returns an interior node applying op to left and right.
func NewInterior[T any](op Operator, left, right Node[T]) *Interior[T] {
	return &Interior[T]{Op: op, Left: left, Right: right}
}

// NewExpression returns a root expression applying op to left and right.
func NewExpression[T any](op Operator, left, right Node[T]) *Expression[T] {
	return &Expression[T]{Op: op, Left: left, Right: right}
}

// Node returns e as an ordinary interior node sharing the same children.
func (e *Expression[T]) Node() *Interior[T] {
	return (*Interior[T])(e)
}

func (e *Expression[T]) Eval(a Arithmetic[T]) T { return e.Node().Eval(a) }
func (e *Expression[T]) String() string         { return e.Node().String() }
func (e *Expression[T]) NodeCount() int         { return e.Node().NodeCount() }
func (e *Expression[T]) Depth() int             { return e.Node().Depth() }

func (e *Expression[T]) Clone() Node[T] {
	return (*Expression[T])(e.Node().Clone().(*Interior[T]))
}
