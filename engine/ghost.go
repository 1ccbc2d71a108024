package engine

import (
	"github.com/jingshiliu/qc-artificial-intelligence/game"

	"golang.org/x/exp/rand"
)

// Ghost picks moves for one ghost agent.
type Ghost interface {
	Move(state *game.Chase, agent int) game.Direction
	Name() string
}

type randomGhost struct {
	rng *rand.Rand
}

// RandomGhost moves uniformly at random among its legal moves, which is exactly
// what an expectimax search assumes.
func RandomGhost(seed uint64) Ghost {
	return &randomGhost{rng: rand.New(rand.NewSource(seed))}
}

func (g *randomGhost) Move(state *game.Chase, agent int) game.Direction {
	moves := state.LegalActions(agent)
	return moves[g.rng.Intn(len(moves))]
}

func (g *randomGhost) Name() string { return "random" }

type directionalGhost struct {
	rng    *rand.Rand
	attack float64
}

// DirectionalGhost heads for the runner with probability attack and otherwise moves
// at random. Ties between equally close moves keep the first in compass order.
func DirectionalGhost(seed uint64, attack float64) Ghost {
	if attack < 0 || attack > 1 {
		panic("attack probability must be within [0, 1]")
	}
	return &directionalGhost{rng: rand.New(rand.NewSource(seed)), attack: attack}
}

func (g *directionalGhost) Move(state *game.Chase, agent int) game.Direction {
	moves := state.LegalActions(agent)
	if g.rng.Float64() >= g.attack {
		return moves[g.rng.Intn(len(moves))]
	}

	from := state.Ghost(agent)
	best := moves[0]
	bestDistance := game.Manhattan(from.Move(best), state.Runner())
	for _, move := range moves[1:] {
		if d := game.Manhattan(from.Move(move), state.Runner()); d < bestDistance {
			best, bestDistance = move, d
		}
	}
	return best
}

func (g *directionalGhost) Name() string { return "directional" }
