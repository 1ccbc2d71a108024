package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(*Local)

func WithMaxTurns(turns int) Option {
	return func(l *Local) {
		if turns > 0 {
			l.maxTurns = turns
		}
	}
}

// WithGhosts sets the ghost policies in agent order. Ghosts without a policy move at
// random.
func WithGhosts(ghosts ...Ghost) Option {
	return func(l *Local) {
		l.ghosts = append([]Ghost(nil), ghosts...)
	}
}

func WithSeed(seed uint64) Option {
	return func(l *Local) {
		l.seed = seed
	}
}

// WithReplay writes the game record to w once the game ends.
func WithReplay(w io.Writer) Option {
	return func(l *Local) {
		l.replay = w
	}
}

// Local plays a chase in process. Agent 0 is the runner; every other agent is a
// ghost.
type Local struct {
	State    *game.Chase
	runner   agent.Agent[game.Direction]
	ghosts   []Ghost
	maxTurns int
	seed     uint64
	replay   io.Writer
}

func LocalEngine(state *game.Chase, runner agent.Agent[game.Direction], options ...Option) *Local {
	if state == nil {
		panic("initial state is required")
	}
	if runner == nil {
		panic("runner agent is required")
	}
	l := &Local{ // Default values
		State:    state,
		runner:   runner,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(l)
	}
	for i := len(l.ghosts); i < state.NumAgents()-1; i++ {
		l.ghosts = append(l.ghosts, RandomGhost(l.seed+uint64(i)+1))
	}
	return l
}

// Run plays one round per turn: the runner moves, then every ghost in order. The
// game stops as soon as it is over.
func (l *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        uuid.NewString(),
		Variant:   l.runner.Name(),
		Seed:      l.seed,
		StartTime: time.Now(),
	}
	record := Replay{ID: gameMetric.ID, Maze: l.State.Maze().String(), Seed: l.seed}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("game %s starting: runner=%s ghosts=%d", gameMetric.ID, gameMetric.Variant, len(l.ghosts))

	step := 0
	for turn := 1; turn <= l.maxTurns && !l.State.IsOver(); turn++ {
		for agentIndex := 0; agentIndex < l.State.NumAgents() && !l.State.IsOver(); agentIndex++ {
			step++
			move, searchMetric := l.findMove(agentIndex)
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Agent:        agentIndex,
				SearchMetric: searchMetric,
			})

			l.State = l.State.Play(agentIndex, move)
			record.Moves = append(record.Moves, Update{
				Agent: agentIndex,
				Move:  move,
				Hash:  l.State.Hash(),
			})
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Won = l.State.IsWin()
	gameMetric.Score = l.State.Score()
	gameMetric.TotalMoves = step

	if l.State.IsOver() {
		log.Info().Msgf("game %s over after %d moves: won=%t score=%g", gameMetric.ID, step, gameMetric.Won, gameMetric.Score)
	} else {
		log.Info().Msgf("game %s stopped after %d turns: score=%g", gameMetric.ID, l.maxTurns, gameMetric.Score)
	}

	if l.replay != nil {
		record.Final = l.State.Snapshot()
		if err := WriteReplay(l.replay, record); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("game %s: %w", gameMetric.ID, err)
		}
	}
	return gameMetric, moveMetrics, nil
}

func (l *Local) findMove(agentIndex int) (game.Direction, metrics.SearchMetric) {
	if agentIndex > 0 {
		ghost := l.ghosts[agentIndex-1]
		start := time.Now()
		move := ghost.Move(l.State, agentIndex)
		return move, metrics.SearchMetric{Label: ghost.Name(), StartTime: start, Duration: time.Since(start)}
	}

	move, searchMetric, ok := l.runner.FindMove(l.State)
	if !ok {
		// Nothing was searched, so fall back to the first legal move
		move = l.State.LegalActions(0)[0]
		log.Warn().Msgf("%s found no move, playing %s", l.runner.Name(), move)
	}
	return move, searchMetric
}
