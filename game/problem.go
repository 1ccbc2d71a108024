package game

import (
	"fmt"

	"github.com/jingshiliu/qc-artificial-intelligence/search"
	"github.com/jingshiliu/qc-artificial-intelligence/utils"
)

type ProblemOption func(*PositionProblem)

// WithCostFn prices a step by the cell it enters.
func WithCostFn(costFn func(Position) float64) ProblemOption {
	return func(p *PositionProblem) {
		if costFn != nil {
			p.costFn = costFn
		}
	}
}

// WithGoals replaces the maze dots as goals.
func WithGoals(goals ...Position) ProblemOption {
	return func(p *PositionProblem) {
		if len(goals) > 0 {
			p.goals = goals
		}
	}
}

// PositionProblem is the search for a path from the maze start to any goal cell.
type PositionProblem struct {
	maze   *Maze
	goals  []Position
	costFn func(Position) float64
}

func NewPositionProblem(maze *Maze, opts ...ProblemOption) *PositionProblem {
	if maze == nil {
		panic("maze is required")
	}
	p := &PositionProblem{ // Default values
		maze:   maze,
		goals:  maze.Dots,
		costFn: func(Position) float64 { return 1 },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PositionProblem) Maze() *Maze          { return p.maze }
func (p *PositionProblem) Goals() []Position    { return p.goals }
func (p *PositionProblem) StartState() Position { return p.maze.Start }

func (p *PositionProblem) IsGoal(state Position) bool {
	return utils.FindIndex(p.goals, state) >= 0
}

func (p *PositionProblem) Successors(state Position) []search.Successor[Position, Direction] {
	moves := p.maze.Moves(state)
	successors := make([]search.Successor[Position, Direction], 0, len(moves))
	for _, d := range moves {
		next := state.Move(d)
		successors = append(successors, search.Successor[Position, Direction]{
			State:  next,
			Action: d,
			Cost:   p.costFn(next),
		})
	}
	return successors
}

func (p *PositionProblem) CostOfActions(actions []Direction) (float64, error) {
	state := p.maze.Start
	total := 0.0
	for i, d := range actions {
		next := state.Move(d)
		if d == Stop || p.maze.IsWall(next) {
			return 0, fmt.Errorf("step %d moves %s into %v: %w", i, d, next, search.ErrInvalidPlan)
		}
		state = next
		total += p.costFn(next)
	}
	return total, nil
}

type goalProblem interface {
	Goals() []Position
}

// ManhattanHeuristic is the grid distance to the nearest goal. It is admissible for
// unit step costs.
func ManhattanHeuristic(state Position, problem search.Problem[Position, Direction]) float64 {
	return nearestGoal(state, problem, Manhattan)
}

// EuclideanHeuristic is the straight-line distance to the nearest goal.
func EuclideanHeuristic(state Position, problem search.Problem[Position, Direction]) float64 {
	return nearestGoal(state, problem, Euclidean)
}

func nearestGoal(state Position, problem search.Problem[Position, Direction], distance func(a, b Position) float64) float64 {
	gp, ok := problem.(goalProblem)
	if !ok {
		return 0
	}
	return utils.MinOf(gp.Goals(), 0.0, func(goal Position) float64 {
		return distance(state, goal)
	})
}

// ParseHeuristic maps a heuristic name to its function. "null" and "" give the null
// heuristic.
func ParseHeuristic(name string) (search.Heuristic[Position, Direction], error) {
	switch name {
	case "manhattan":
		return ManhattanHeuristic, nil
	case "euclidean":
		return EuclideanHeuristic, nil
	case "null", "":
		return search.NullHeuristic[Position, Direction], nil
	}
	return nil, fmt.Errorf("unknown heuristic %q", name)
}
