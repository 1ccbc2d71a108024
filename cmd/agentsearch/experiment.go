package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments"
	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	trialsFlag   int
	workersFlag  int
	maxDepthFlag int
	outFlag      string
	variantsFlag []string
)

var experimentCmd = &cobra.Command{
	Use:   "experiment MAZE",
	Short: "Compare search disciplines and game-tree variants on one maze",
	Long: "Runs every search discipline on MAZE, sweeps the game-tree variants over increasing depths from the\n" +
		"opening position, and plays the configured runners against the ghosts. Tables are written as CSV\n" +
		"under <out>/experiment/<run id>.",
	Args: cobra.ExactArgs(1),
	RunE: experimentCommand,
}

func init() {
	addGameFlags(experimentCmd)
	experimentCmd.Flags().IntVar(&trialsFlag, "trials", 0, "Games per runner")
	experimentCmd.Flags().IntVar(&workersFlag, "workers", 0, "Games played at once")
	experimentCmd.Flags().IntVar(&maxDepthFlag, "max-depth", 0, "Deepest level of the depth sweep, 0 skips it")
	experimentCmd.Flags().StringVar(&outFlag, "out", "", "Output directory")
	experimentCmd.Flags().StringSliceVar(&variantsFlag, "variants", nil, "Runners to compare")
}

func experimentCommand(cmd *cobra.Command, args []string) error {
	override(cmd.Flags(), map[string]func(){
		"trials":    func() { cfg.Experiment.Trials = trialsFlag },
		"workers":   func() { cfg.Experiment.Workers = workersFlag },
		"max-depth": func() { cfg.Experiment.MaxDepth = maxDepthFlag },
		"out":       func() { cfg.Experiment.Output = outFlag },
		"variants":  func() { cfg.Experiment.Variants = variantsFlag },
	})
	if err := applyGameFlags(cmd); err != nil {
		return err
	}

	maze, err := game.OpenMaze(args[0])
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	heuristic, err := game.ParseHeuristic(cfg.Search.Heuristic)
	if err != nil {
		return err
	}
	evaluate, err := game.ParseEvaluation(cfg.Game.Evaluation)
	if err != nil {
		return err
	}

	configs := make([]metrics.AgentConfig, 0, len(cfg.Experiment.Variants))
	for i, variant := range cfg.Experiment.Variants {
		config := agentConfig(maze, variant)
		config.ID = i + 1
		configs = append(configs, config)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	searches := experiments.RunSearchComparison(name, maze, heuristic, cfg.Search.Prune)
	if cfg.Experiment.MaxDepth > 0 {
		searches = append(searches, experiments.RunDepthSweep(name, maze, cfg.Game.Ghosts, cfg.Experiment.MaxDepth, evaluate)...)
	}
	results, err := experiments.RunVariantComparison(ctx, experiments.Settings{
		Maze:     maze,
		Configs:  configs,
		Trials:   cfg.Experiment.Trials,
		Workers:  cfg.Experiment.Workers,
		MaxTurns: cfg.Game.MaxTurns,
		Seed:     cfg.Game.Seed,
	})
	if err != nil {
		return err
	}
	results.Searches = searches

	w, err := metrics.NewWriter(cfg.Experiment.Output, "experiment")
	if err != nil {
		return err
	}
	if err := results.Write(w); err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", w.BaseDir())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, color.Cyan.Sprintf("run %s on %s", w.RunID(), name))
	for _, s := range results.Summaries() {
		line := fmt.Sprintf("%-10s depth=%d won %d/%d mean score %.1f mean moves %.1f",
			s.Config.Variant, s.Config.Depth, s.Wins, s.Games, s.MeanScore, s.MeanMoves)
		if s.Wins*2 >= s.Games {
			fmt.Fprintln(out, color.Green.Sprint(line))
		} else {
			fmt.Fprintln(out, color.Yellow.Sprint(line))
		}
	}
	return nil
}
