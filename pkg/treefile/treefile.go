// Package treefile reads and writes expression trees as YAML documents.
//
// A document describes the tree's shape directly; nothing is parsed from
// expression syntax. A scalar is a leaf. An interior node is either a
// sequence of three items, operator first:
//
//	[mul, [add, 1, 2], [add, 3, 4]]
//
// or a mapping with op, left and right keys:
//
//	op: mul
//	left: {op: add, left: 1, right: 2}
//	right: [add, 3, 4]
//
// Operators are written as symbols (+ - * /) or names (add sub mul div).
package treefile

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Uliboooo/polish-notation/pkg/expr"
)

// Decode reads a single tree from a YAML document. Leaf scalars are decoded
// into T with the YAML decoder's own rules.
func Decode[T any](data []byte) (expr.Node[T], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse tree document")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty tree document")
	}
	return decodeNode[T](doc.Content[0])
}

// Load reads a tree document from path.
func Load[T any](path string) (expr.Node[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := Decode[T](data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return n, nil
}

func decodeNode[T any](n *yaml.Node) (expr.Node[T], error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nil, errors.Errorf("line %d: aliases are not allowed in trees", n.Line)

	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, errors.Errorf("line %d: missing operand", n.Line)
		}
		var v T
		if err := n.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "line %d: leaf %q", n.Line, n.Value)
		}
		return expr.NewLeaf(v), nil

	case yaml.SequenceNode:
		if len(n.Content) != 3 {
			return nil, errors.Errorf("line %d: interior node needs [op, left, right], got %d items", n.Line, len(n.Content))
		}
		return decodeInterior[T](n.Content[0], n.Content[1], n.Content[2])

	case yaml.MappingNode:
		var op, left, right *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			switch key.Value {
			case "op":
				op = val
			case "left":
				left = val
			case "right":
				right = val
			default:
				return nil, errors.Errorf("line %d: unknown key %q", key.Line, key.Value)
			}
		}
		if op == nil || left == nil || right == nil {
			return nil, errors.Errorf("line %d: interior node needs op, left and right", n.Line)
		}
		return decodeInterior[T](op, left, right)

	default:
		return nil, errors.Errorf("line %d: unexpected YAML node", n.Line)
	}
}

func decodeInterior[T any](opNode, leftNode, rightNode *yaml.Node) (expr.Node[T], error) {
	if opNode.Kind != yaml.ScalarNode {
		return nil, errors.Errorf("line %d: operator must be a scalar", opNode.Line)
	}
	op, err := expr.ParseOperator(opNode.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", opNode.Line)
	}
	left, err := decodeNode[T](leftNode)
	if err != nil {
		return nil, err
	}
	right, err := decodeNode[T](rightNode)
	if err != nil {
		return nil, err
	}
	return expr.NewInterior(op, left, right), nil
}

// Encode writes a tree in the flow-sequence form.
func Encode[T any](n expr.Node[T]) ([]byte, error) {
	y, err := encodeNode(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(y)
}

// operatorNames are the names Encode writes; symbols like "-" and "*"
// need quoting in YAML.
var operatorNames = map[expr.Operator]string{
	expr.OpAdd: "add",
	expr.OpSub: "sub",
	expr.OpMul: "mul",
	expr.OpDiv: "div",
}

func encodeNode[T any](node expr.Node[T]) (*yaml.Node, error) {
	switch n := node.(type) {
	case *expr.Leaf[T]:
		return encodeLeaf(n.Val)
	case *expr.Interior[T]:
		name, ok := operatorNames[n.Op]
		if !ok {
			return nil, errors.Errorf("encode: unknown operator %s", n.Op)
		}
		left, err := encodeNode(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := encodeNode(n.Right)
		if err != nil {
			return nil, err
		}
		return &yaml.Node{
			Kind:  yaml.SequenceNode,
			Style: yaml.FlowStyle,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
				left,
				right,
			},
		}, nil
	case *expr.Expression[T]:
		return encodeNode[T](n.Node())
	default:
		return nil, errors.Errorf("encode: unsupported node %T", node)
	}
}

// encodeLeaf converts a leaf value into a YAML node. yaml.v3 panics on
// kinds it cannot marshal, complex numbers among them.
func encodeLeaf[T any](v T) (y *yaml.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			y, err = nil, errors.Errorf("encode leaf %v: %v", v, r)
		}
	}()
	y = &yaml.Node{}
	if err := y.Encode(v); err != nil {
		return nil, errors.Wrapf(err, "encode leaf %v", v)
	}
	return y, nil
}
