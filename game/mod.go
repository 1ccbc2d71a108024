// Package game holds the concrete domains the engines are played on: mazes for
// single-agent search, a chase between a runner and ghosts for game-tree search, and
// small hand-written game trees.
package game

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jingshiliu/qc-artificial-intelligence/utils"
)

var (
	// ErrInvalidMaze reports a maze layout that cannot be parsed.
	ErrInvalidMaze = errors.New("invalid maze layout")
	// ErrInvalidTree reports a game tree file that cannot be used.
	ErrInvalidTree = errors.New("invalid game tree")
)

type StateHash uint64

// Direction is a move on the maze grid.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

// Compass lists the moving directions in the order successors are generated.
var Compass = []Direction{North, South, East, West}

var directionNames = []string{"North", "South", "East", "West", "Stop"}

func (d Direction) String() string {
	if d < North || d > Stop {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func ParseDirection(name string) (Direction, error) {
	for i, n := range directionNames {
		if strings.EqualFold(n, name) || strings.EqualFold(n[:1], name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// Position is a cell on the grid. Row 0 is the top of the layout.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move returns the neighboring cell in direction d. Stop stays in place.
func (p Position) Move(d Direction) Position {
	switch d {
	case North:
		return Position{p.Row - 1, p.Col}
	case South:
		return Position{p.Row + 1, p.Col}
	case East:
		return Position{p.Row, p.Col + 1}
	case West:
		return Position{p.Row, p.Col - 1}
	}
	return p
}

func Manhattan(a, b Position) float64 {
	return float64(utils.Abs(a.Row-b.Row) + utils.Abs(a.Col-b.Col))
}

func Euclidean(a, b Position) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}
