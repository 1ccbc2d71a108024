package experiments

import (
	"fmt"

	"github.com/jingshiliu/qc-artificial-intelligence/engine"
	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher/agent"
)

// Reflex names the one-ply runner in an AgentConfig; every other variant name is a
// game-tree search.
const Reflex = "reflex"

// NewRunner builds the runner an AgentConfig describes.
func NewRunner(config metrics.AgentConfig, seed uint64) (agent.Agent[game.Direction], error) {
	if config.Variant == Reflex {
		return agent.NewReflexAgent(game.ReflexEvaluation, seed), nil
	}
	variant, err := searcher.ParseVariant(config.Variant)
	if err != nil {
		return nil, err
	}
	evaluate, err := game.ParseEvaluation(config.Evaluation)
	if err != nil {
		return nil, err
	}
	if config.Depth < 0 {
		return nil, fmt.Errorf("depth must not be negative, got %d", config.Depth)
	}
	return agent.NewSearchAgent(config.Depth, evaluate, variant, metrics.NewCollector()), nil
}

// NewGhosts builds one policy per ghost. Ghost i is seeded with seed+i. A negative
// count builds none; resolve it against the maze first.
func NewGhosts(config metrics.AgentConfig, seed uint64) []engine.Ghost {
	ghosts := make([]engine.Ghost, 0, max(config.Ghosts, 0))
	for i := 1; i <= config.Ghosts; i++ {
		if config.Attack > 0 {
			ghosts = append(ghosts, engine.DirectionalGhost(seed+uint64(i), config.Attack))
		} else {
			ghosts = append(ghosts, engine.RandomGhost(seed+uint64(i)))
		}
	}
	return ghosts
}

// DefaultConfigs compares every runner at the same depth against the same ghosts.
func DefaultConfigs(depth, ghosts int, evaluation string, attack float64) []metrics.AgentConfig {
	names := []string{searcher.Minimax.String(), searcher.AlphaBeta.String(), searcher.Expectimax.String(), Reflex}
	configs := make([]metrics.AgentConfig, 0, len(names))
	for i, name := range names {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Variant:    name,
			Depth:      depth,
			Evaluation: evaluation,
			Ghosts:     ghosts,
			Attack:     attack,
		})
	}
	return configs
}
