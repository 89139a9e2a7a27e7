package treefile

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Uliboooo/polish-notation/pkg/expr"
)

// Scenario is a tree paired with its expected value. Panics marks trees
// whose arithmetic is expected to fail instead of producing Want.
type Scenario[T any] struct {
	Name   string
	Tree   expr.Node[T]
	Want   T
	Panics bool
}

type scenarioDoc struct {
	Name   string    `yaml:"name"`
	Tree   yaml.Node `yaml:"tree"`
	Want   yaml.Node `yaml:"want"`
	Panics bool      `yaml:"panics"`
}

// DecodeScenarios reads a YAML sequence of scenarios:
//
//	- name: nested
//	  tree: [mul, [add, 1, 2], [add, 3, 4]]
//	  want: 21
func DecodeScenarios[T any](data []byte) ([]Scenario[T], error) {
	var docs []scenarioDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, errors.Wrap(err, "parse scenarios")
	}

	scenarios := make([]Scenario[T], 0, len(docs))
	for i, d := range docs {
		if d.Name == "" {
			return nil, errors.Errorf("scenario %d: missing name", i)
		}
		if d.Tree.Kind == 0 {
			return nil, errors.Errorf("scenario %q: missing tree", d.Name)
		}
		tree, err := decodeNode[T](&d.Tree)
		if err != nil {
			return nil, errors.WithMessagef(err, "scenario %q", d.Name)
		}
		s := Scenario[T]{Name: d.Name, Tree: tree, Panics: d.Panics}
		if !d.Panics {
			if d.Want.Kind == 0 {
				return nil, errors.Errorf("scenario %q: missing want", d.Name)
			}
			if err := d.Want.Decode(&s.Want); err != nil {
				return nil, errors.Wrapf(err, "scenario %q: want", d.Name)
			}
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// LoadScenarios reads a scenario file from path.
func LoadScenarios[T any](path string) ([]Scenario[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := DecodeScenarios[T](data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return s, nil
}
