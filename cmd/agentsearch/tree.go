package main

import (
	"fmt"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	treeVariant string
	treeDepth   int
	treeAgents  int
)

var treeCmd = &cobra.Command{
	Use:   "tree TREEFILE",
	Short: "Search a game tree written in YAML",
	Long: "TREEFILE holds an agents count and a root node. Every node has a value and optional children;\n" +
		"actions are child indices and the agents take turns starting with the maximizer.",
	Args: cobra.ExactArgs(1),
	RunE: treeCommand,
}

func init() {
	treeCmd.Flags().StringVar(&treeVariant, "variant", "", "Search variant (minimax, alphabeta, expectimax)")
	treeCmd.Flags().IntVar(&treeDepth, "depth", 0, "Search depth in rounds")
	treeCmd.Flags().IntVar(&treeAgents, "agents", 0, "Override the number of agents in the file")
}

func treeCommand(cmd *cobra.Command, args []string) error {
	override(cmd.Flags(), map[string]func(){
		"variant": func() { cfg.Game.Variant = treeVariant },
		"depth":   func() { cfg.Game.Depth = treeDepth },
	})

	tree, err := game.LoadTree(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("agents") {
		if treeAgents < 1 {
			return fmt.Errorf("agents must be positive, got %d", treeAgents)
		}
		tree.SetAgents(treeAgents)
	}
	variant, err := searcher.ParseVariant(cfg.Game.Variant)
	if err != nil {
		return err
	}
	if cfg.Game.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", cfg.Game.Depth)
	}

	collector := metrics.NewCollector()
	s := searcher.NewSearcher[int](cfg.Game.Depth, game.TreeEvaluation, searcher.WithVariant(variant), searcher.WithMetrics(collector))
	action, ok := s.ChooseAction(tree)
	metric := collector.Complete()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, color.Cyan.Sprintf("%s on %s: %d nodes, %d agents, depth %d", variant, args[0], tree.Size(), tree.NumAgents(), cfg.Game.Depth))
	if ok {
		fmt.Fprintln(out, color.Green.Sprintf("best action %d", action))
	} else {
		fmt.Fprintln(out, color.Yellow.Sprint("root is a leaf at this depth, no action"))
	}
	fmt.Fprintf(out, "value %g\n", s.Value(tree))
	fmt.Fprintf(out, "expanded %d, generated %d, evaluations %d, cutoffs %d\n", metric.Expanded, metric.Generated, metric.Evaluations, metric.Cutoffs)
	return nil
}
