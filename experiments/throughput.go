package experiments

import (
	"fmt"

	"github.com/jingshiliu/qc-artificial-intelligence/experiments/metrics"
	"github.com/jingshiliu/qc-artificial-intelligence/game"
	"github.com/jingshiliu/qc-artificial-intelligence/search"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher"

	"github.com/rs/zerolog/log"
)

// RunSearchComparison solves the maze once with every discipline. The heuristic only
// affects A*.
func RunSearchComparison(name string, maze *game.Maze, heuristic search.Heuristic[game.Position, game.Direction], prune bool) []metrics.SearchRecord {
	problem := game.NewPositionProblem(maze)
	collector := metrics.NewCollector()
	opts := []search.Option{search.WithMetrics(collector)}
	if prune {
		opts = append(opts, search.WithDuplicatePruning())
	}

	records := make([]metrics.SearchRecord, 0, len(search.Disciplines()))
	for _, discipline := range search.Disciplines() {
		result := search.Search(problem, discipline, heuristic, opts...)
		metric := collector.Complete()
		records = append(records, metrics.SearchRecord{
			Problem:      name,
			PlanLength:   len(result.Plan),
			Cost:         result.Cost,
			Reached:      result.Reached,
			SearchMetric: metric,
		})
		log.Info().Msgf("%s on %s: reached=%t plan=%d cost=%g expanded=%d", discipline, name, result.Reached, len(result.Plan), result.Cost, metric.Expanded)
	}
	return records
}

// RunDepthSweep searches the opening position of a chase with every variant at
// depths 1 to maxDepth, to show how the work grows and how much pruning saves.
func RunDepthSweep(name string, maze *game.Maze, ghosts, maxDepth int, evaluate searcher.Evaluate[game.Direction]) []metrics.SearchRecord {
	state := game.NewChase(maze, ghosts)
	collector := metrics.NewCollector()

	var records []metrics.SearchRecord
	for depth := 1; depth <= maxDepth; depth++ {
		for _, variant := range searcher.Variants() {
			s := searcher.NewSearcher(depth, evaluate, searcher.WithVariant(variant), searcher.WithMetrics(collector))
			_, ok := s.ChooseAction(state)
			metric := collector.Complete()
			planLength := 0
			if ok {
				planLength = 1
			}
			records = append(records, metrics.SearchRecord{
				Problem:      fmt.Sprintf("%s/depth=%d", name, depth),
				PlanLength:   planLength,
				Reached:      ok,
				SearchMetric: metric,
			})
			log.Info().Msgf("%s at depth %d: evaluations=%d cutoffs=%d duration=%s", variant, depth, metric.Evaluations, metric.Cutoffs, metric.Duration)
		}
	}
	return records
}
