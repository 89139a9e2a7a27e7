package treefile

import (
	"math/big"
	"strings"
	"testing"

	"github.com/Uliboooo/polish-notation/pkg/expr"
)

// evalRecover evaluates tree and reports whether T's arithmetic panicked.
func evalRecover(tree expr.Node[int64]) (v int64, panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	return expr.Evaluate(tree), false
}

func TestScenarioFile(t *testing.T) {
	scenarios, err := LoadScenarios[int64]("testdata/scenarios.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(scenarios) < 5 {
		t.Fatalf("loaded %d scenarios", len(scenarios))
	}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			got, panicked := evalRecover(sc.Tree)
			if sc.Panics {
				if !panicked {
					t.Errorf("%s = %d, expected a panic", sc.Tree, got)
				}
				return
			}
			if panicked {
				t.Fatalf("%s panicked", sc.Tree)
			}
			if got != sc.Want {
				t.Errorf("%s = %d, want %d", sc.Tree, got, sc.Want)
			}
		})
	}
}

func TestLoadMappingForm(t *testing.T) {
	tree, err := Load[int64]("testdata/nested.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if tree.String() != "* + 1 2 + 3 4" {
		t.Errorf("String() = %q", tree.String())
	}
	if got := expr.Evaluate(tree); got != 21 {
		t.Errorf("Evaluate = %d, want 21", got)
	}
}

func TestDecodeFloatAndRat(t *testing.T) {
	f, err := Decode[float64]([]byte("[div, 1, 4]"))
	if err != nil {
		t.Fatal(err)
	}
	if got := expr.Evaluate(f); got != 0.25 {
		t.Errorf("1/4 = %v", got)
	}

	r, err := Decode[*big.Rat]([]byte("[add, 1/3, 1/6]"))
	if err != nil {
		t.Fatal(err)
	}
	if got := expr.EvaluateWith[*big.Rat](r, expr.BigRat{}); got.RatString() != "1/2" {
		t.Errorf("1/3 + 1/6 = %s", got.RatString())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty tree document"},
		{"two items", "[add, 1]", "needs [op, left, right]"},
		{"four items", "[add, 1, 2, 3]", "needs [op, left, right]"},
		{"bad operator", "[pow, 1, 2]", "unknown operator"},
		{"bad leaf", "[add, 1, x]", "leaf \"x\""},
		{"missing right", "{op: add, left: 1}", "needs op, left and right"},
		{"unknown key", "{op: add, left: 1, right: 2, extra: 3}", "unknown key \"extra\""},
		{"operator not scalar", "[[add], 1, 2]", "operator must be a scalar"},
		{"alias", "[add, &a 1, *a]", "aliases are not allowed"},
		{"syntax", "[add, 1", "parse tree document"},
		{"null operand", "[div, 1, ~]", "line 1: missing operand"},
		{"empty mapping value", "{op: add, left: 1, right: }", "missing operand"},
		{"empty block value", "op: add\nleft: 1\nright:\n", "missing operand"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode[int64]([]byte(tc.doc))
			if err == nil {
				t.Fatalf("Decode(%q) succeeded", tc.doc)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Decode(%q) error = %q, want it to contain %q", tc.doc, err, tc.want)
			}
		})
	}
}

func TestErrorsCarryLine(t *testing.T) {
	doc := "op: add\nleft: 1\nright:\n  op: pow\n  left: 2\n  right: 3\n"
	_, err := Decode[int64]([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "line 4") {
		t.Errorf("error = %v, want line 4", err)
	}
}

func TestEncode(t *testing.T) {
	tree := expr.NewExpression[int64](expr.OpMul,
		expr.NewInterior[int64](expr.OpAdd, expr.NewLeaf[int64](1), expr.NewLeaf[int64](2)),
		expr.NewInterior[int64](expr.OpDiv, expr.NewLeaf[int64](-3), expr.NewLeaf[int64](4)))

	data, err := Encode[int64](tree)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "[mul, [add, 1, 2], [div, -3, 4]]" {
		t.Errorf("Encode = %q", got)
	}

	back, err := Decode[int64](data)
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != tree.String() {
		t.Errorf("decoded %q, want %q", back, tree)
	}
}

func TestDecodeScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing name", "- tree: 1\n  want: 1\n", "missing name"},
		{"missing tree", "- name: a\n  want: 1\n", "missing tree"},
		{"missing want", "- name: a\n  tree: 1\n", "missing want"},
		{"bad tree", "- name: a\n  tree: [add]\n  want: 1\n", "scenario \"a\""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeScenarios[int64]([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestEncodeUnsupportedLeaf(t *testing.T) {
	tree := expr.NewInterior[complex128](expr.OpAdd, expr.NewLeaf(complex(1, 2)), expr.NewLeaf(complex(0, 1)))

	data, err := Encode[complex128](tree)
	if err == nil {
		t.Fatalf("Encode(complex128) = %q, want an error", data)
	}
	if !strings.Contains(err.Error(), "encode leaf") {
		t.Errorf("error = %q", err)
	}
}
