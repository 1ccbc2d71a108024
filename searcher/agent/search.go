package agent

import (
	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher"
)

type searchAgent[A any] struct {
	searcher *searcher.Searcher[A]
	metrics  metrics.Collector
}

// NewSearchAgent returns an agent that plays the action backed up by a depth-limited
// game-tree search. Metrics are collected when collector is not nil.
func NewSearchAgent[A any](depth int, evaluate searcher.Evaluate[A], variant searcher.Variant, collector metrics.Collector) Agent[A] {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return searchAgent[A]{
		searcher: searcher.NewSearcher(depth, evaluate, searcher.WithVariant(variant), searcher.WithMetrics(collector)),
		metrics:  collector,
	}
}

func (a searchAgent[A]) FindMove(state searcher.GameState[A]) (A, metrics.SearchMetric, bool) {
	move, ok := a.searcher.ChooseAction(state)
	return move, a.metrics.Complete(), ok
}

func (a searchAgent[A]) Name() string {
	return a.searcher.Variant().String()
}
