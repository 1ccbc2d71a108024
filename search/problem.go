// Package search finds a sequence of actions leading from a problem's start state
// to a goal state. Depth-first, breadth-first, uniform-cost and A* search share one
// graph-search loop and differ only in the frontier that orders the nodes.
package search

import "errors"

// ErrInvalidPlan is returned by Problem.CostOfActions when the actions cannot be
// played from the start state.
var ErrInvalidPlan = errors.New("plan is not realizable from the start state")

// ErrGoalNotReached reports that the frontier ran out before a goal was dequeued.
var ErrGoalNotReached = errors.New("frontier exhausted before reaching a goal")

// Successor is a state reachable in one step, the action leading there and the
// non-negative cost of that step.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem describes a state space. States are compared by value, so S should not
// hold pointers to data that changes after the state is handed out.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoal(state S) bool
	// Successors lists the states reachable from state. Depth-first search explores
	// them left to right.
	Successors(state S) []Successor[S, A]
	// CostOfActions returns the total cost of playing actions from the start state,
	// or ErrInvalidPlan.
	CostOfActions(actions []A) (float64, error)
}

// Heuristic estimates the remaining cost from state to the nearest goal. A* only
// returns optimal plans when it never overestimates.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic estimates zero for every state, which turns A* into uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}
