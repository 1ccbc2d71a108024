package search

import (
	"testing"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func chainGraph() *mockGraph {
	return newMockGraph("S", "G").
		add("S", "A", "right", 1).
		add("A", "G", "right", 1).
		add("A", "S", "left", 1)
}

func TestSearchChain(t *testing.T) {
	for _, discipline := range Disciplines() {
		t.Run("finding the chain plan with "+discipline.String(), func(t *testing.T) {
			g := chainGraph()

			got := Search[string, string](g, discipline, nil)

			require.Equal(t, []string{"right", "right"}, got.Plan, "Should walk right twice")
			require.Equal(t, 2.0, got.Cost, "Should accumulate step costs")
			require.Equal(t, "G", got.End, "Should end at the goal")
			require.True(t, got.Reached, "Should reach the goal")
			require.NoError(t, got.Err(), "Reached result should carry no error")

			cost, err := g.CostOfActions(got.Plan)
			require.NoError(t, err, "Plan should be realizable")
			require.Equal(t, 2.0, cost, "Plan should cost 2")
		})
	}

	t.Run("convenience functions agree", func(t *testing.T) {
		var p Problem[string, string] = chainGraph()
		want := []string{"right", "right"}

		require.Equal(t, want, DepthFirst[string, string](p), "DepthFirst should return the chain plan")
		require.Equal(t, want, BreadthFirst[string, string](p), "BreadthFirst should return the chain plan")
		require.Equal(t, want, UniformCost[string, string](p), "UniformCost should return the chain plan")
		require.Equal(t, want, AStarPlan[string, string](p, nil), "AStarPlan with a nil heuristic should return the chain plan")
	})
}

func TestNodeExtend(t *testing.T) {
	t.Run("siblings own their plans", func(t *testing.T) {
		plan := make([]string, 1, 8) // Spare capacity a shared append would write into
		plan[0] = "down"
		parent := node[string, string]{state: "A", plan: plan, cost: 1}

		left := parent.extend(Successor[string, string]{State: "L", Action: "left", Cost: 2})
		right := parent.extend(Successor[string, string]{State: "R", Action: "right", Cost: 3})
		deeper := left.extend(Successor[string, string]{State: "LL", Action: "left", Cost: 1})

		require.Equal(t, []string{"down"}, parent.plan, "Parent plan should not grow")
		require.Equal(t, []string{"down", "left"}, left.plan, "Left child should keep its own action")
		require.Equal(t, []string{"down", "right"}, right.plan, "Right child should keep its own action")
		require.Equal(t, []string{"down", "left", "left"}, deeper.plan, "Grandchild should extend the left plan")
		require.Equal(t, 3.0, left.cost, "Left cost should add its step")
		require.Equal(t, 4.0, right.cost, "Right cost should add its step")
		require.Equal(t, 4.0, deeper.cost, "Grandchild cost should add its step")
	})

	t.Run("sibling branches return independent plans", func(t *testing.T) {
		g := newMockGraph("S", "G1", "G2").
			add("S", "A", "a", 1).
			add("S", "B", "b", 1).
			add("A", "G1", "x", 1).
			add("B", "G2", "y", 1)

		first := Search[string, string](g, BFS, nil)
		g.goals = map[string]bool{"G2": true}
		second := Search[string, string](g, BFS, nil)

		require.Equal(t, []string{"a", "x"}, first.Plan, "First goal should be reached through A")
		require.Equal(t, []string{"b", "y"}, second.Plan, "Second goal should be reached through B only")
	})
}

func TestSearchStartIsGoal(t *testing.T) {
	g := newMockGraph("S", "S").add("S", "A", "go", 1)

	got := Search[string, string](g, BFS, nil)

	require.Empty(t, got.Plan, "Plan should be empty when the start is a goal")
	require.True(t, got.Reached, "Start goal should count as reached")
	require.Zero(t, got.Expanded, "Nothing should be expanded")
}

func TestSearchDisciplineOrder(t *testing.T) {
	t.Run("depth-first explores successors left to right", func(t *testing.T) {
		g := newMockGraph("S", "G").
			add("S", "A", "a", 1).
			add("S", "B", "b", 1).
			add("A", "G", "ag", 5).
			add("B", "G", "bg", 1)

		got := Search[string, string](g, DFS, nil)

		require.Equal(t, []string{"a", "ag"}, got.Plan, "DFS should follow the leftmost branch first")
		require.Equal(t, []string{"S", "A"}, g.expanded, "DFS should expand S then A")
	})

	t.Run("depth-first goes deep before wide", func(t *testing.T) {
		g := newMockGraph("S", "G").
			add("S", "A", "a", 1).
			add("S", "G", "direct", 1).
			add("A", "B", "b", 1).
			add("B", "G", "bg", 1)

		require.Equal(t, []string{"a", "b", "bg"}, Search[string, string](g, DFS, nil).Plan, "DFS should return the deep leftmost path")
		require.Equal(t, []string{"direct"}, Search[string, string](g, BFS, nil).Plan, "BFS should return the shortest path")
	})

	t.Run("uniform-cost prefers cheap long paths", func(t *testing.T) {
		g := newMockGraph("S", "G").
			add("S", "G", "expensive", 10).
			add("S", "A", "a", 1).
			add("A", "B", "b", 1).
			add("B", "G", "c", 1)

		bfs := Search[string, string](g, BFS, nil)
		ucs := Search[string, string](g, UCS, nil)

		require.Equal(t, []string{"expensive"}, bfs.Plan, "BFS should ignore costs")
		require.Equal(t, 10.0, bfs.Cost, "BFS plan should cost 10")
		require.Equal(t, []string{"a", "b", "c"}, ucs.Plan, "UCS should take the cheap path")
		require.Equal(t, 3.0, ucs.Cost, "UCS plan should cost 3")
	})

	t.Run("uniform-cost breaks ties by discovery order", func(t *testing.T) {
		g := newMockGraph("S", "G").
			add("S", "A", "first", 1).
			add("S", "B", "second", 1).
			add("A", "G", "a", 1).
			add("B", "G", "b", 1)

		require.Equal(t, []string{"first", "a"}, Search[string, string](g, UCS, nil).Plan, "Equal keys should pop FIFO")
	})

	t.Run("A* is guided by the heuristic", func(t *testing.T) {
		g := newMockGraph("S", "G").
			add("S", "A", "a", 1).
			add("S", "B", "b", 1).
			add("A", "G", "ag", 3).
			add("B", "G", "bg", 2)
		h := Heuristic[string, string](func(state string, _ Problem[string, string]) float64 {
			if state == "A" {
				return 3
			}
			if state == "B" {
				return 1
			}
			return 0
		})

		got := Search[string, string](g, AStar, h)

		require.Equal(t, []string{"b", "bg"}, got.Plan, "A* should expand the lower estimate first")
		require.Equal(t, []string{"S", "B"}, g.expanded, "A* should never expand A")
	})
}

func TestSearchCycles(t *testing.T) {
	for _, discipline := range Disciplines() {
		t.Run("terminating on a cyclic graph with "+discipline.String(), func(t *testing.T) {
			g := newMockGraph("S", "G").
				add("S", "A", "a", 1).
				add("A", "S", "back", 1).
				add("A", "B", "b", 1).
				add("B", "A", "back", 1).
				add("B", "S", "home", 1).
				add("B", "G", "g", 1)

			got := Search[string, string](g, discipline, nil)

			require.True(t, got.Reached, "Should reach the goal")
			require.Equal(t, "G", g.endState(got.Plan), "Plan should lead to the goal")
			seen := map[string]bool{}
			for _, state := range g.expanded {
				require.False(t, seen[state], "State %s should be expanded once", state)
				seen[state] = true
			}
		})
	}
}

func TestSearchUnreachableGoal(t *testing.T) {
	for _, discipline := range Disciplines() {
		t.Run("returning the last dequeued plan with "+discipline.String(), func(t *testing.T) {
			g := newMockGraph("S", "G").
				add("S", "A", "a", 1).
				add("A", "B", "b", 1).
				add("B", "A", "back", 1)

			got := Search[string, string](g, discipline, nil)

			require.False(t, got.Reached, "Goal is unreachable")
			require.ErrorIs(t, got.Err(), ErrGoalNotReached, "Degraded result should report ErrGoalNotReached")
			require.Equal(t, []string{"a", "b"}, got.Plan, "Should return the plan of the last dequeued node")
			require.Equal(t, "B", got.End, "Degraded plan should end at a non-goal state")
			require.Equal(t, 3, got.Expanded, "Should expand each reachable state once")
		})
	}

	t.Run("start without successors", func(t *testing.T) {
		g := newMockGraph("S", "G")

		got := Search[string, string](g, UCS, nil)

		require.Empty(t, got.Plan, "Should return the empty start plan")
		require.False(t, got.Reached, "Goal is unreachable")
	})

	t.Run("frontier drains through visited copies", func(t *testing.T) {
		// A is queued twice; the second copy is popped after A was expanded
		g := newMockGraph("S", "G").
			add("S", "A", "a1", 1).
			add("S", "A", "a2", 1)

		got := Search[string, string](g, BFS, nil)

		require.False(t, got.Reached, "Goal is unreachable")
		require.Equal(t, []string{"a2"}, got.Plan, "Should return the last dequeued copy")
	})
}

func TestSearchInvalidPlan(t *testing.T) {
	_, err := chainGraph().CostOfActions([]string{"left"})

	require.ErrorIs(t, err, ErrInvalidPlan, "Collaborator errors should wrap ErrInvalidPlan")
}

func TestSearchMetrics(t *testing.T) {
	collector := metrics.NewCollector()
	h := Heuristic[string, string](func(string, Problem[string, string]) float64 { return 0 })

	got := Search[string, string](chainGraph(), AStar, h, WithMetrics(collector))
	metric := collector.Complete()

	require.Equal(t, "astar", metric.Label, "Should label the metric with the discipline")
	require.Equal(t, got.Expanded, metric.Expanded, "Collector should count every expansion")
	require.Equal(t, 2, metric.Expanded, "Should expand S and A")
	require.Equal(t, 2, metric.Generated, "Should push A and G")
	require.Equal(t, 2, metric.Evaluations, "Should evaluate the heuristic once per push")
}

func TestSearchOptimality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		g := randomGraph(rng, 4+rng.Intn(12), 3, true)
		optimal, reachable := g.nearestGoal(false)
		shortest, _ := g.nearestGoal(true)

		rest := g.remaining()
		admissible := Heuristic[string, string](func(state string, _ Problem[string, string]) float64 {
			return rest[state] / 2
		})

		bfs := Search[string, string](g, BFS, nil)
		ucs := Search[string, string](g, UCS, nil)
		astar := Search[string, string](g, AStar, admissible)
		exact := Search[string, string](g, AStar, Heuristic[string, string](func(state string, _ Problem[string, string]) float64 {
			return rest[state]
		}))

		require.Equal(t, reachable, ucs.Reached, "trial %d: UCS should reach a goal iff one is reachable", trial)
		if !reachable {
			continue
		}
		require.Equal(t, optimal, ucs.Cost, "trial %d: UCS should find the cheapest plan", trial)
		require.Equal(t, shortest, float64(len(bfs.Plan)), "trial %d: BFS should find the shortest plan", trial)
		require.Equal(t, optimal, astar.Cost, "trial %d: A* should be optimal with an admissible heuristic", trial)
		require.Equal(t, optimal, exact.Cost, "trial %d: A* should be optimal with the exact heuristic", trial)
		require.LessOrEqual(t, astar.Cost, bfs.Cost, "trial %d: A* should not cost more than BFS", trial)

		for name, r := range map[string]Result[string, string]{"bfs": bfs, "ucs": ucs, "astar": astar} {
			cost, err := g.CostOfActions(r.Plan)
			require.NoError(t, err, "trial %d: %s plan should be realizable", trial, name)
			require.Equal(t, r.Cost, cost, "trial %d: %s cost should match the plan", trial, name)
			require.True(t, g.IsGoal(g.endState(r.Plan)), "trial %d: %s plan should end at a goal", trial, name)
		}
	}
}

func TestSearchDuplicatePruning(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 200; trial++ {
		g := randomGraph(rng, 4+rng.Intn(16), 4, trial%2 == 0)
		rest := g.remaining()
		h := Heuristic[string, string](func(state string, _ Problem[string, string]) float64 {
			return rest[state]
		})

		for _, discipline := range Disciplines() {
			lazy := Search[string, string](g, discipline, h)
			pruned := Search[string, string](g, discipline, h, WithDuplicatePruning())

			// Degraded results may end on different discarded copies
			if lazy.Reached {
				require.Equal(t, lazy.Plan, pruned.Plan, "trial %d: %s plans should not depend on pruning", trial, discipline)
			}
			require.Equal(t, lazy.Reached, pruned.Reached, "trial %d: %s outcome should not depend on pruning", trial, discipline)
			require.Equal(t, lazy.Expanded, pruned.Expanded, "trial %d: %s expansions should not depend on pruning", trial, discipline)
		}
	}

	t.Run("pruning pushes fewer nodes", func(t *testing.T) {
		g := newMockGraph("S", "G").
			add("S", "A", "a", 1).
			add("S", "B", "b", 1).
			add("A", "C", "ac", 1).
			add("B", "C", "bc", 1).
			add("C", "G", "g", 1)
		lazy, pruned := metrics.NewCollector(), metrics.NewCollector()

		Search[string, string](g, BFS, nil, WithMetrics(lazy))
		Search[string, string](g, BFS, nil, WithMetrics(pruned), WithDuplicatePruning())

		require.Less(t, pruned.Complete().Generated, lazy.Complete().Generated, "Second push of C should be skipped")
	})
}

func TestParseDiscipline(t *testing.T) {
	for _, discipline := range Disciplines() {
		got, err := ParseDiscipline(discipline.String())
		require.NoError(t, err, "Should parse %s", discipline)
		require.Equal(t, discipline, got, "Should round-trip %s", discipline)
	}

	got, err := ParseDiscipline(" A* ")
	require.NoError(t, err, "Should accept the A* alias")
	require.Equal(t, AStar, got, "A* alias should map to AStar")

	_, err = ParseDiscipline("greedy")
	require.Error(t, err, "Should reject unknown disciplines")
	require.Equal(t, "Discipline(9)", Discipline(9).String(), "Unknown values should print their number")
}
