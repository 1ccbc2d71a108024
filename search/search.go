package search

import (
	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// node is immutable once built. Every node owns its plan, so extending one path
// never leaks into a sibling.
type node[S comparable, A any] struct {
	state S
	plan  []A
	cost  float64
}

func (n node[S, A]) extend(successor Successor[S, A]) node[S, A] {
	plan := make([]A, len(n.plan)+1)
	copy(plan, n.plan)
	plan[len(n.plan)] = successor.Action
	return node[S, A]{
		state: successor.State,
		plan:  plan,
		cost:  n.cost + successor.Cost,
	}
}

// Result is the outcome of one search call.
type Result[S comparable, A any] struct {
	Plan     []A
	Cost     float64 // Sum of step costs along Plan
	End      S       // State reached by playing Plan
	Reached  bool    // False when the frontier ran out and End is not a goal
	Expanded int
}

// Err returns ErrGoalNotReached for a degraded result.
func (r Result[S, A]) Err() error {
	if !r.Reached {
		return ErrGoalNotReached
	}
	return nil
}

type Option func(*options)

type options struct {
	metrics metrics.Collector
	prune   bool
}

func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// WithDuplicatePruning skips pushes that cannot beat a copy of the same state that
// is already queued. Plans are unchanged. Depth-first search ignores it since a
// later push pops first there.
func WithDuplicatePruning() Option {
	return func(o *options) {
		o.prune = true
	}
}

// Search runs graph search from the problem's start state and returns the plan of
// the first dequeued goal. A state is marked visited when it is expanded; copies
// of visited states are discarded when popped. A nil heuristic is the null
// heuristic and is only consulted by A*.
//
// When the frontier runs out first, the plan of the last dequeued node is returned
// with Reached set to false.
func Search[S comparable, A any](problem Problem[S, A], discipline Discipline, heuristic Heuristic[S, A], opts ...Option) Result[S, A] {
	if problem == nil {
		panic("search problem is required")
	}
	o := options{metrics: metrics.NewDummyCollector()}
	for _, opt := range opts {
		opt(&o)
	}
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}

	fringe := newFrontier[S, A](discipline)
	visited := make(map[S]struct{})
	var queued map[S]float64 // Cheapest queued cost per state, only when pruning
	if o.prune && discipline != DFS {
		queued = make(map[S]float64)
	}
	expanded := 0

	finish := func(n node[S, A], reached bool) Result[S, A] {
		log.Debug().Msgf("%s search finished: reached=%t expanded=%d plan=%d cost=%g", discipline, reached, expanded, len(n.plan), n.cost)
		return Result[S, A]{Plan: n.plan, Cost: n.cost, End: n.state, Reached: reached, Expanded: expanded}
	}

	o.metrics.Start(discipline.String())
	current := node[S, A]{state: problem.StartState(), plan: []A{}}
	for {
		if problem.IsGoal(current.state) {
			return finish(current, true)
		}

		visited[current.state] = struct{}{}
		expanded++
		o.metrics.AddExpansion()

		successors := problem.Successors(current.state)
		for i := range successors {
			if discipline.reversesSuccessors() {
				i = len(successors) - 1 - i
			}
			successor := successors[i]
			if _, ok := visited[successor.State]; ok {
				continue
			}
			child := current.extend(successor)
			if queued != nil {
				if cost, ok := queued[child.state]; ok && (discipline.dedupsOnDiscovery() || child.cost >= cost) {
					continue
				}
				queued[child.state] = child.cost
			}

			estimate := 0.0
			if discipline == AStar {
				estimate = heuristic(child.state, problem)
				o.metrics.AddEvaluation()
			}
			fringe.Push(child, discipline.priority(child.cost, estimate))
			o.metrics.AddGenerated()
		}

		if fringe.IsEmpty() {
			return finish(current, false)
		}
		// Lazy duplicate elimination: only the first copy of a state to be popped
		// is expanded
		current = fringe.Pop()
		for isVisited(visited, current.state) && !fringe.IsEmpty() {
			current = fringe.Pop()
		}
		if isVisited(visited, current.state) {
			return finish(current, false)
		}
	}
}

func isVisited[S comparable](visited map[S]struct{}, state S) bool {
	_, ok := visited[state]
	return ok
}

// DepthFirst returns the plan found by depth-first graph search.
func DepthFirst[S comparable, A any](problem Problem[S, A]) []A {
	return Search(problem, DFS, nil).Plan
}

// BreadthFirst returns a plan with the fewest actions.
func BreadthFirst[S comparable, A any](problem Problem[S, A]) []A {
	return Search(problem, BFS, nil).Plan
}

// UniformCost returns a cheapest plan for non-negative step costs.
func UniformCost[S comparable, A any](problem Problem[S, A]) []A {
	return Search(problem, UCS, nil).Plan
}

// AStarPlan returns a cheapest plan when heuristic is admissible.
func AStarPlan[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A]) []A {
	return Search(problem, AStar, heuristic).Plan
}
