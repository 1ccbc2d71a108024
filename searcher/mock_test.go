package searcher

import (
	"golang.org/x/exp/rand"
)

// mockTree is a leaf-labeled game tree. Interior nodes carry a value too, which is
// what the evaluation sees when the depth limit cuts the tree.
type mockTree struct {
	value    float64
	children []*mockTree
}

func leaf(value float64) *mockTree {
	return &mockTree{value: value}
}

func branch(children ...*mockTree) *mockTree {
	return &mockTree{children: children}
}

func leaves(values ...float64) *mockTree {
	t := &mockTree{}
	for _, v := range values {
		t.children = append(t.children, leaf(v))
	}
	return t
}

// mockState walks a mockTree. Actions are child indices and every agent sees the
// same children. calls records the agent asked for its legal actions.
type mockState struct {
	tree   *mockTree
	agents int
	calls  *[]int
}

func newMockState(tree *mockTree, agents int) mockState {
	return mockState{tree: tree, agents: agents, calls: &[]int{}}
}

func (s mockState) LegalActions(agent int) []int {
	*s.calls = append(*s.calls, agent)
	actions := make([]int, len(s.tree.children))
	for i := range actions {
		actions[i] = i
	}
	return actions
}

func (s mockState) Successor(agent int, action int) GameState[int] {
	return mockState{tree: s.tree.children[action], agents: s.agents, calls: s.calls}
}

func (s mockState) NumAgents() int { return s.agents }

// countingEvaluation returns the node value and counts every call.
func countingEvaluation(count *int) Evaluate[int] {
	return func(state GameState[int]) float64 {
		*count++
		return state.(mockState).tree.value
	}
}

func treeValue(state GameState[int]) float64 {
	return state.(mockState).tree.value
}

// randomTree builds a tree with up to maxBranch children per node. Nodes may end
// early, so some branches are shorter than depth.
func randomTree(rng *rand.Rand, depth, maxBranch int) *mockTree {
	t := &mockTree{value: float64(rng.Intn(41) - 20)}
	if depth == 0 || rng.Intn(8) == 0 {
		return t
	}
	n := 1 + rng.Intn(maxBranch)
	for i := 0; i < n; i++ {
		t.children = append(t.children, randomTree(rng, depth-1, maxBranch))
	}
	return t
}
