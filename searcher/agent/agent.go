package agent

import (
	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher"
)

// Agent plays for agent 0.
type Agent[A any] interface {
	// FindMove returns a move and the metrics of the search behind it. ok is false
	// when the agent could not pick a move.
	FindMove(state searcher.GameState[A]) (move A, metric metrics.SearchMetric, ok bool)
	Name() string
}
