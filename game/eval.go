package game

import (
	"fmt"

	"github.com/jingshiliu/qc-artificial-intelligence/searcher"
	"github.com/jingshiliu/qc-artificial-intelligence/utils"
)

// StopPenalty discourages a reflex runner from standing still.
const StopPenalty = 50.0

func asChase(state searcher.GameState[Direction]) *Chase {
	c, ok := state.(*Chase)
	if !ok {
		panic(fmt.Sprintf("unexpected state type %T", state))
	}
	return c
}

// ScoreEvaluation is the game score of the state.
func ScoreEvaluation(state searcher.GameState[Direction]) float64 {
	return asChase(state).Score()
}

// ProximityEvaluation adds to the score a pull toward the nearest dot and a push away
// from the nearest ghost, both in grid distance.
func ProximityEvaluation(state searcher.GameState[Direction]) float64 {
	c := asChase(state)
	if c.IsOver() {
		return c.Score()
	}
	far := float64(c.maze.Width + c.maze.Height)
	dot := utils.MinOf(c.DotPositions(), far, func(p Position) float64 { return Manhattan(c.runner, p) })
	ghost := utils.MinOf(c.ghosts, far, func(p Position) float64 { return Manhattan(c.runner, p) })
	return c.Score() - dot + min(ghost, 3)
}

// ReflexEvaluation scores the runner playing action: the resulting score plus the
// ratio of ghost distance to dot distance, less StopPenalty for standing still.
func ReflexEvaluation(state searcher.GameState[Direction], action Direction) float64 {
	next := asChase(state).Play(0, action)
	far := float64(next.maze.Width + next.maze.Height)
	ghost := utils.MinOf(next.ghosts, far, func(p Position) float64 { return Manhattan(next.runner, p) })
	dot := utils.MinOf(next.DotPositions(), 0.1, func(p Position) float64 { return Manhattan(next.runner, p) })

	score := next.Score() + ghost/dot
	if action == Stop {
		score -= StopPenalty
	}
	return score
}

// Evaluations maps evaluation names accepted by the CLI and config files.
var Evaluations = map[string]searcher.Evaluate[Direction]{
	"score":     ScoreEvaluation,
	"proximity": ProximityEvaluation,
}

func ParseEvaluation(name string) (searcher.Evaluate[Direction], error) {
	if name == "" {
		return ScoreEvaluation, nil
	}
	if evaluate, ok := Evaluations[name]; ok {
		return evaluate, nil
	}
	return nil, fmt.Errorf("unknown evaluation function %q", name)
}
