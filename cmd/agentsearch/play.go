package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jingshiliu/qc-artificial-intelligence/engine"
	"github.com/jingshiliu/qc-artificial-intelligence/experiments"
	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	variantFlag    string
	depthFlag      int
	evaluationFlag string
	ghostsFlag     int
	attackFlag     float64
	seedFlag       uint64
	maxTurnsFlag   int
	replayFlag     string
	boardFlag      bool
)

var playCmd = &cobra.Command{
	Use:   "play MAZE",
	Short: "Play one chase with a search-driven runner",
	Long:  "MAZE is a layout file or the name of a built-in layout. Ghosts start on the G cells.",
	Args:  cobra.ExactArgs(1),
	RunE:  playCommand,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&replayFlag, "replay", "", "Write a msgpack replay of the game to this file")
	playCmd.Flags().BoolVar(&boardFlag, "board", false, "Print the final board")
}

// addGameFlags registers the flags that override the [game] config section.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&variantFlag, "variant", "", "Runner (minimax, alphabeta, expectimax, reflex)")
	cmd.Flags().IntVar(&depthFlag, "depth", 0, "Search depth in rounds")
	cmd.Flags().StringVar(&evaluationFlag, "evaluation", "", "Evaluation function (score, proximity)")
	cmd.Flags().IntVar(&ghostsFlag, "ghosts", 0, "Number of ghosts, -1 for every G cell")
	cmd.Flags().Float64Var(&attackFlag, "attack", 0, "Probability a ghost heads for the runner, 0 for random ghosts")
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Seed for ghosts and tie-breaks")
	cmd.Flags().IntVar(&maxTurnsFlag, "max-turns", 0, "Turn limit")
}

func applyGameFlags(cmd *cobra.Command) error {
	override(cmd.Flags(), map[string]func(){
		"variant":    func() { cfg.Game.Variant = variantFlag },
		"depth":      func() { cfg.Game.Depth = depthFlag },
		"evaluation": func() { cfg.Game.Evaluation = evaluationFlag },
		"ghosts":     func() { cfg.Game.Ghosts = ghostsFlag },
		"attack":     func() { cfg.Game.Attack = attackFlag },
		"seed":       func() { cfg.Game.Seed = seedFlag },
		"max-turns":  func() { cfg.Game.MaxTurns = maxTurnsFlag },
	})
	return cfg.Validate()
}

// agentConfig describes the configured runner on maze.
func agentConfig(maze *game.Maze, variant string) metrics.AgentConfig {
	ghosts := cfg.Game.Ghosts
	if ghosts < 0 || ghosts > len(maze.Ghosts) {
		ghosts = len(maze.Ghosts)
	}
	return metrics.AgentConfig{
		ID:         1,
		Variant:    variant,
		Depth:      cfg.Game.Depth,
		Evaluation: cfg.Game.Evaluation,
		Ghosts:     ghosts,
		Attack:     cfg.Game.Attack,
	}
}

func playCommand(cmd *cobra.Command, args []string) error {
	if err := applyGameFlags(cmd); err != nil {
		return err
	}
	maze, err := game.OpenMaze(args[0])
	if err != nil {
		return err
	}
	config := agentConfig(maze, cfg.Game.Variant)
	runner, err := experiments.NewRunner(config, cfg.Game.Seed)
	if err != nil {
		return err
	}

	options := []engine.Option{
		engine.WithGhosts(experiments.NewGhosts(config, cfg.Game.Seed)...),
		engine.WithSeed(cfg.Game.Seed),
		engine.WithMaxTurns(cfg.Game.MaxTurns),
	}
	if replayFlag != "" {
		f, err := os.Create(replayFlag)
		if err != nil {
			return fmt.Errorf("failed to create replay: %w", err)
		}
		defer f.Close()
		options = append(options, engine.WithReplay(f))
	}

	e := engine.LocalEngine(game.NewChase(maze, config.Ghosts), runner, options...)
	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printGame(out, gameMetric, e.State.IsLose(), moveMetrics)
	if boardFlag {
		fmt.Fprint(out, e.State.String())
	}
	return nil
}

func printGame(out io.Writer, gameMetric metrics.GameMetric, caught bool, moveMetrics []metrics.MoveMetric) {
	switch {
	case gameMetric.Won:
		fmt.Fprintln(out, color.Green.Sprintf("%s runner won with score %g", gameMetric.Variant, gameMetric.Score))
	case caught:
		fmt.Fprintln(out, color.Red.Sprintf("%s runner was caught with score %g", gameMetric.Variant, gameMetric.Score))
	default:
		fmt.Fprintln(out, color.Yellow.Sprintf("%s runner ran out of turns with score %g", gameMetric.Variant, gameMetric.Score))
	}

	evaluations := 0
	for _, mm := range moveMetrics {
		if mm.Agent == 0 {
			evaluations += mm.Evaluations
		}
	}
	fmt.Fprintf(out, "game %s: %d moves, %d evaluations, %s\n", gameMetric.ID, gameMetric.TotalMoves, evaluations, gameMetric.Duration)
}
