package experiments

import (
	"context"
	"fmt"

	"github.com/jingshiliu/qc-artificial-intelligence/engine"
	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Settings of a variant comparison.
type Settings struct {
	Maze     *game.Maze
	Configs  []metrics.AgentConfig
	Trials   int // Games per config
	Workers  int // Games played at once
	MaxTurns int
	Seed     uint64 // Trial i of every config uses Seed+i, so configs face the same ghosts
}

// Results are the tables an experiment produces. Empty tables are not written.
type Results struct {
	Configs  []metrics.AgentConfig
	Games    []metrics.GameRecord
	Moves    []metrics.MoveRecord
	Searches []metrics.SearchRecord
}

func (r Results) Write(w *metrics.Writer) error {
	if len(r.Configs) > 0 {
		if err := w.WriteAgentConfigs(r.Configs); err != nil {
			return fmt.Errorf("failed to store agent configs: %w", err)
		}
		log.Info().Msg("stored agent configs")
	}
	if len(r.Games) > 0 {
		if err := w.WriteGameRecords(r.Games); err != nil {
			return fmt.Errorf("failed to write game records: %w", err)
		}
		log.Info().Msg("stored game records")
	}
	if len(r.Moves) > 0 {
		if err := w.WriteMoveRecords(r.Moves); err != nil {
			return fmt.Errorf("failed to write move records: %w", err)
		}
		log.Info().Msg("stored move records")
	}
	if len(r.Searches) > 0 {
		if err := w.WriteSearchRecords(r.Searches); err != nil {
			return fmt.Errorf("failed to write search records: %w", err)
		}
		log.Info().Msg("stored search records")
	}
	return nil
}

// Summary aggregates the games of one config.
type Summary struct {
	Config    metrics.AgentConfig
	Games     int
	Wins      int
	MeanScore float64
	MeanMoves float64
}

// Summaries returns one summary per config, in config order. Configs without games
// report zero means.
func (r Results) Summaries() []Summary {
	summaries := make([]Summary, len(r.Configs))
	index := make(map[int]int, len(r.Configs))
	for i, config := range r.Configs {
		summaries[i].Config = config
		index[config.ID] = i
	}
	for _, g := range r.Games {
		i, ok := index[g.Agent]
		if !ok {
			continue
		}
		s := &summaries[i]
		s.Games++
		if g.Won {
			s.Wins++
		}
		s.MeanScore += g.Score
		s.MeanMoves += float64(g.TotalMoves)
	}
	for i := range summaries {
		if n := summaries[i].Games; n > 0 {
			summaries[i].MeanScore /= float64(n)
			summaries[i].MeanMoves /= float64(n)
		}
	}
	return summaries
}

type trial struct {
	config metrics.AgentConfig
	index  int
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// RunVariantComparison plays Trials chase games for every config. Games run
// concurrently on up to Workers goroutines; records keep config then trial order.
func RunVariantComparison(ctx context.Context, s Settings) (Results, error) {
	if s.Maze == nil {
		panic("maze is required")
	}
	if s.Trials <= 0 {
		panic("at least one trial is required")
	}

	trials := make([]trial, 0, len(s.Configs)*s.Trials)
	for _, config := range s.Configs {
		for i := 0; i < s.Trials; i++ {
			trials = append(trials, trial{config: config, index: i})
		}
	}
	outcomes := make([]outcome, len(trials))

	log.Info().Msgf("starting variant comparison: %d configs x %d trials", len(s.Configs), s.Trials)

	g, ctx := errgroup.WithContext(ctx)
	if s.Workers > 0 {
		g.SetLimit(s.Workers)
	}
	for i, t := range trials {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := runGame(s, t)
			if err != nil {
				return fmt.Errorf("config %d trial %d: %w", t.config.ID, t.index, err)
			}
			outcomes[i] = o
			log.Info().Msgf("completed config %d (%s) trial %d: won=%t score=%g", t.config.ID, t.config.Variant, t.index+1, o.game.Won, o.game.Score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	results := Results{Configs: s.Configs}
	for _, o := range outcomes {
		results.Games = append(results.Games, o.game)
		results.Moves = append(results.Moves, o.moves...)
	}
	log.Info().Msg("completed variant comparison")
	return results, nil
}

func runGame(s Settings, t trial) (outcome, error) {
	seed := s.Seed + uint64(t.index)
	runner, err := NewRunner(t.config, seed)
	if err != nil {
		return outcome{}, err
	}
	state := game.NewChase(s.Maze, t.config.Ghosts)
	config := t.config
	config.Ghosts = state.NumAgents() - 1
	e := engine.LocalEngine(state, runner,
		engine.WithGhosts(NewGhosts(config, seed)...),
		engine.WithSeed(seed),
		engine.WithMaxTurns(s.MaxTurns),
	)

	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return outcome{}, err
	}
	o := outcome{
		game: metrics.GameRecord{Trial: t.index + 1, Agent: t.config.ID, GameMetric: gameMetric},
	}
	for _, mm := range moveMetrics {
		o.moves = append(o.moves, metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: mm})
	}
	return o, nil
}
