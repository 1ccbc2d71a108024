package agent

import (
	"time"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher"
)

type reflexAgent[A any] struct {
	reflex *searcher.Reflex[A]
}

// NewReflexAgent returns an agent that looks a single move ahead.
func NewReflexAgent[A any](evaluate searcher.ActionEvaluate[A], seed uint64) Agent[A] {
	return reflexAgent[A]{reflex: searcher.NewReflex(evaluate, seed)}
}

func (a reflexAgent[A]) FindMove(state searcher.GameState[A]) (A, metrics.SearchMetric, bool) {
	start := time.Now()
	move, ok := a.reflex.ChooseAction(state)
	metric := metrics.SearchMetric{
		Label:       a.Name(),
		StartTime:   start,
		Duration:    time.Since(start),
		Evaluations: len(state.LegalActions(0)),
	}
	return move, metric, ok
}

func (a reflexAgent[A]) Name() string {
	return "reflex"
}
