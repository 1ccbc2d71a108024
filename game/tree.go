package game

import (
	"fmt"
	"os"

	"github.com/jingshiliu/qc-artificial-intelligence/searcher"
	"gopkg.in/yaml.v3"
)

// Tree is a node of a hand-written game tree. Actions are child indices and every
// agent sees the same children. Value is what the evaluation returns here, which
// matters for leaves and for interior nodes cut off by the depth limit.
type Tree struct {
	Value    float64 `yaml:"value"`
	Children []*Tree `yaml:"children,omitempty"`
	agents   int
}

type treeFile struct {
	Agents int   `yaml:"agents"`
	Root   *Tree `yaml:"root"`
}

// ParseTree reads a YAML document of the form
//
//	agents: 2
//	root:
//	  children:
//	    - children: [{value: 3}]
//	    - children: [{value: 5}]
func ParseTree(data []byte) (*Tree, error) {
	var file treeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode tree: %w", err)
	}
	if file.Root == nil {
		return nil, fmt.Errorf("missing root: %w", ErrInvalidTree)
	}
	if file.Agents == 0 {
		file.Agents = 2
	}
	if file.Agents < 0 {
		return nil, fmt.Errorf("agents must be positive, got %d: %w", file.Agents, ErrInvalidTree)
	}
	if err := file.Root.validate(); err != nil {
		return nil, err
	}
	file.Root.SetAgents(file.Agents)
	return file.Root, nil
}

func LoadTree(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	tree, err := ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

func (t *Tree) validate() error {
	for i, child := range t.Children {
		if child == nil {
			return fmt.Errorf("child %d is empty: %w", i, ErrInvalidTree)
		}
		if err := child.validate(); err != nil {
			return err
		}
	}
	return nil
}

// SetAgents changes the number of agents taking turns on the whole tree.
func (t *Tree) SetAgents(agents int) {
	t.agents = agents
	for _, child := range t.Children {
		child.SetAgents(agents)
	}
}

func (t *Tree) LegalActions(agent int) []int {
	actions := make([]int, len(t.Children))
	for i := range actions {
		actions[i] = i
	}
	return actions
}

func (t *Tree) Successor(agent int, action int) searcher.GameState[int] {
	return t.Children[action]
}

func (t *Tree) NumAgents() int { return t.agents }

// Size counts the nodes of the tree.
func (t *Tree) Size() int {
	n := 1
	for _, child := range t.Children {
		n += child.Size()
	}
	return n
}

func TreeEvaluation(state searcher.GameState[int]) float64 {
	t, ok := state.(*Tree)
	if !ok {
		panic(fmt.Sprintf("unexpected state type %T", state))
	}
	return t.Value
}
