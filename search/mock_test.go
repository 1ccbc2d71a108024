package search

import (
	"fmt"

	"golang.org/x/exp/rand"
)

type edge struct {
	to     string
	action string
	cost   float64
}

// mockGraph is a search problem over named vertices with labeled, weighted edges.
type mockGraph struct {
	start    string
	goals    map[string]bool
	edges    map[string][]edge
	expanded []string
}

func newMockGraph(start string, goals ...string) *mockGraph {
	g := &mockGraph{
		start: start,
		goals: make(map[string]bool),
		edges: make(map[string][]edge),
	}
	for _, goal := range goals {
		g.goals[goal] = true
	}
	return g
}

func (g *mockGraph) add(from, to, action string, cost float64) *mockGraph {
	g.edges[from] = append(g.edges[from], edge{to: to, action: action, cost: cost})
	return g
}

func (g *mockGraph) StartState() string { return g.start }

func (g *mockGraph) IsGoal(state string) bool { return g.goals[state] }

func (g *mockGraph) Successors(state string) []Successor[string, string] {
	g.expanded = append(g.expanded, state)
	var out []Successor[string, string]
	for _, e := range g.edges[state] {
		out = append(out, Successor[string, string]{State: e.to, Action: e.action, Cost: e.cost})
	}
	return out
}

func (g *mockGraph) CostOfActions(actions []string) (float64, error) {
	state := g.start
	total := 0.0
	for _, action := range actions {
		found := false
		for _, e := range g.edges[state] {
			if e.action == action {
				state = e.to
				total += e.cost
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("action %q from %q: %w", action, state, ErrInvalidPlan)
		}
	}
	return total, nil
}

func (g *mockGraph) endState(actions []string) string {
	state := g.start
	for _, action := range actions {
		for _, e := range g.edges[state] {
			if e.action == action {
				state = e.to
				break
			}
		}
	}
	return state
}

func vertex(i int) string { return fmt.Sprintf("n%d", i) }

// randomGraph builds a graph over n vertices with up to maxDegree out-edges each.
// With acyclic set, edges only point to higher-numbered vertices.
func randomGraph(rng *rand.Rand, n, maxDegree int, acyclic bool) *mockGraph {
	g := newMockGraph(vertex(0), vertex(n-1))
	if rng.Intn(2) == 0 {
		g.goals[vertex(n/2+rng.Intn(n/2))] = true
	}
	for i := 0; i < n; i++ {
		degree := rng.Intn(maxDegree + 1)
		for k := 0; k < degree; k++ {
			var j int
			if acyclic {
				if i == n-1 {
					break
				}
				j = i + 1 + rng.Intn(n-i-1)
			} else {
				j = rng.Intn(n)
			}
			g.add(vertex(i), vertex(j), fmt.Sprintf("e%d", k), float64(1+rng.Intn(9)))
		}
	}
	return g
}

// distances runs Bellman-Ford from start. Unit set ignores edge costs.
func (g *mockGraph) distances(unit bool) map[string]float64 {
	dist := map[string]float64{g.start: 0}
	for changed := true; changed; {
		changed = false
		for from, edges := range g.edges {
			d, ok := dist[from]
			if !ok {
				continue
			}
			for _, e := range edges {
				cost := e.cost
				if unit {
					cost = 1
				}
				if old, seen := dist[e.to]; !seen || d+cost < old {
					dist[e.to] = d + cost
					changed = true
				}
			}
		}
	}
	return dist
}

// nearestGoal returns the optimal distance to any goal, or false if none is reachable.
func (g *mockGraph) nearestGoal(unit bool) (float64, bool) {
	dist := g.distances(unit)
	best, found := 0.0, false
	for goal := range g.goals {
		if d, ok := dist[goal]; ok && (!found || d < best) {
			best, found = d, true
		}
	}
	return best, found
}

// remaining computes the exact cost from every vertex to its nearest goal.
func (g *mockGraph) remaining() map[string]float64 {
	rest := make(map[string]float64)
	for goal := range g.goals {
		rest[goal] = 0
	}
	for changed := true; changed; {
		changed = false
		for from, edges := range g.edges {
			for _, e := range edges {
				d, ok := rest[e.to]
				if !ok {
					continue
				}
				if old, seen := rest[from]; !seen || d+e.cost < old {
					rest[from] = d + e.cost
					changed = true
				}
			}
		}
	}
	return rest
}
