package main

import (
	"fmt"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"
	"github.com/jingshiliu/qc-artificial-intelligence/search"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	disciplineFlag string
	heuristicFlag  string
	pruneFlag      bool
)

var planCmd = &cobra.Command{
	Use:   "plan MAZE",
	Short: "Find a path from the start to a dot",
	Long:  "MAZE is a layout file or the name of a built-in layout (tiny, open, chase, duel).",
	Args:  cobra.ExactArgs(1),
	RunE:  planCommand,
}

func init() {
	planCmd.Flags().StringVar(&disciplineFlag, "discipline", "", "Search discipline (dfs, bfs, ucs, astar)")
	planCmd.Flags().StringVar(&heuristicFlag, "heuristic", "", "A* heuristic (manhattan, euclidean, null)")
	planCmd.Flags().BoolVar(&pruneFlag, "prune", false, "Skip pushes that cannot beat a queued copy of the same state")
}

func planCommand(cmd *cobra.Command, args []string) error {
	override(cmd.Flags(), map[string]func(){
		"discipline": func() { cfg.Search.Discipline = disciplineFlag },
		"heuristic":  func() { cfg.Search.Heuristic = heuristicFlag },
		"prune":      func() { cfg.Search.Prune = pruneFlag },
	})

	maze, err := game.OpenMaze(args[0])
	if err != nil {
		return err
	}
	discipline, err := search.ParseDiscipline(cfg.Search.Discipline)
	if err != nil {
		return err
	}
	heuristic, err := game.ParseHeuristic(cfg.Search.Heuristic)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	opts := []search.Option{search.WithMetrics(collector)}
	if cfg.Search.Prune {
		opts = append(opts, search.WithDuplicatePruning())
	}
	problem := game.NewPositionProblem(maze)
	result := search.Search(problem, discipline, heuristic, opts...)
	metric := collector.Complete()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, color.Cyan.Sprintf("%s search on %s", discipline, args[0]))
	if result.Reached {
		fmt.Fprintln(out, color.Green.Sprintf("reached %v in %d steps, cost %g", result.End, len(result.Plan), result.Cost))
	} else {
		fmt.Fprintln(out, color.Yellow.Sprintf("no dot reachable, stopped at %v", result.End))
	}
	fmt.Fprintf(out, "plan: %v\n", result.Plan)
	fmt.Fprintf(out, "expanded %d, generated %d, heuristic calls %d in %s\n", metric.Expanded, metric.Generated, metric.Evaluations, metric.Duration)

	if _, err := problem.CostOfActions(result.Plan); err != nil {
		return fmt.Errorf("plan does not replay: %w", err)
	}
	return nil
}
