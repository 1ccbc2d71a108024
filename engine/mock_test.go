package engine

import (
	"testing"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher"

	"github.com/stretchr/testify/require"
)

// stopAgent is a runner that never moves.
type stopAgent struct{}

func (stopAgent) FindMove(searcher.GameState[game.Direction]) (game.Direction, metrics.SearchMetric, bool) {
	return game.Stop, metrics.SearchMetric{Label: "stop"}, true
}

func (stopAgent) Name() string { return "stop" }

const (
	corridor = "%%%%%\n%P G%\n%.  %\n%%%%%\n"
	lastDot  = "%%%%\n%P.%\n%%%%\n"
)

func newChase(t *testing.T, layout string) *game.Chase {
	t.Helper()
	maze, err := game.ParseMaze(layout)
	if err != nil {
		maze, err = game.OpenMaze(layout)
	}
	require.NoError(t, err, "Fixture maze should parse")
	return game.NewChase(maze, -1)
}
