// Package searcher picks actions in multi-agent games by exploring the game tree to a
// fixed depth. Minimax, alpha-beta minimax and expectimax share one recursive value
// function and differ only in how a node folds the values of its children.
package searcher

import (
	"fmt"
	"strings"
)

// GameState is a position in a turn-based game. Agent 0 maximizes; every other
// agent either minimizes or, under expectimax, acts uniformly at random.
type GameState[A any] interface {
	// LegalActions lists the moves available to agent. An empty list makes the state
	// terminal for that agent.
	LegalActions(agent int) []A
	Successor(agent int, action A) GameState[A]
	NumAgents() int
}

// Evaluate scores a state from agent 0's point of view.
type Evaluate[A any] func(state GameState[A]) float64

// Variant selects how a node combines the values of its children.
type Variant int

const (
	Minimax Variant = iota
	AlphaBeta
	Expectimax
)

func (v Variant) String() string {
	switch v {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	case Expectimax:
		return "expectimax"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func Variants() []Variant {
	return []Variant{Minimax, AlphaBeta, Expectimax}
}

func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "ab":
		return AlphaBeta, nil
	case "expectimax", "expectiminimax":
		return Expectimax, nil
	}
	return 0, fmt.Errorf("unknown search variant %q", name)
}

// combiner folds child values into the value of one node.
type combiner[A any] interface {
	// window returns the (alpha, beta) bounds to pass to the next child.
	window() (alpha, beta float64)
	// add records a child value and reports whether the remaining siblings can be
	// skipped.
	add(value float64, action A) (cutoff bool)
	result() (value float64, action A, ok bool)
}

// newCombiner returns the fold for agent's node. Agent 0 always maximizes.
func newCombiner[A any](variant Variant, agent int, alpha, beta float64) combiner[A] {
	switch {
	case agent == 0:
		return newDecision[A](true, variant == AlphaBeta, alpha, beta)
	case variant == Expectimax:
		return newChance[A](alpha, beta)
	default:
		return newDecision[A](false, variant == AlphaBeta, alpha, beta)
	}
}
