package engine

import "github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"

// MaxTurns bounds a game when the caller does not.
const MaxTurns = 500

type Engine interface {
	// Run plays a game until it is over or the turn limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
