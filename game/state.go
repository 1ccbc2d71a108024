package game

import (
	"fmt"

	"github.com/dgryski/go-farm"
	"github.com/jingshiliu/qc-artificial-intelligence/searcher"
	"github.com/jingshiliu/qc-artificial-intelligence/utils"
	"github.com/shamaton/msgpack/v2"
)

// Chase is a runner (agent 0) eating dots in a maze while ghosts (agents 1..n) hunt
// it. The game ends when the last dot is eaten or a ghost shares the runner's cell.
// States are immutable: Successor always returns a new Chase.
type Chase struct {
	maze   *Maze
	runner Position
	ghosts []Position
	dots   []bool // Indexed like the maze walls, copied when a dot is eaten
	left   int
	score  float64
	won    bool
	lost   bool
}

// NewChase starts a game on maze with a ghost on every 'G' cell. ghosts limits the
// number of ghosts; a negative value keeps them all.
func NewChase(maze *Maze, ghosts int) *Chase {
	if maze == nil {
		panic("maze is required")
	}
	starts := maze.Ghosts
	if ghosts >= 0 && ghosts < len(starts) {
		starts = starts[:ghosts]
	}
	c := &Chase{
		maze:   maze,
		runner: maze.Start,
		ghosts: append([]Position(nil), starts...),
		dots:   make([]bool, maze.Width*maze.Height),
		left:   len(maze.Dots),
	}
	for _, dot := range maze.Dots {
		c.dots[maze.index(dot)] = true
	}
	return c
}

func (c *Chase) Maze() *Maze        { return c.maze }
func (c *Chase) Runner() Position   { return c.runner }
func (c *Chase) Score() float64     { return c.score }
func (c *Chase) DotsLeft() int      { return c.left }
func (c *Chase) IsWin() bool        { return c.won }
func (c *Chase) IsLose() bool       { return c.lost }
func (c *Chase) IsOver() bool       { return c.won || c.lost }
func (c *Chase) NumAgents() int     { return 1 + len(c.ghosts) }
func (c *Chase) Ghosts() []Position { return append([]Position(nil), c.ghosts...) }

func (c *Chase) Ghost(agent int) Position {
	return c.ghosts[agent-1]
}

func (c *Chase) HasDot(p Position) bool {
	return c.maze.InBounds(p) && c.dots[c.maze.index(p)]
}

// DotPositions lists the remaining dots in reading order.
func (c *Chase) DotPositions() []Position {
	dots := make([]Position, 0, c.left)
	for _, dot := range c.maze.Dots {
		if c.HasDot(dot) {
			dots = append(dots, dot)
		}
	}
	return dots
}

// LegalActions is empty once the game is over. The runner may Stop; a ghost may only
// Stop when it is walled in.
func (c *Chase) LegalActions(agent int) []Direction {
	if c.IsOver() {
		return nil
	}
	if agent == 0 {
		return append(c.maze.Moves(c.runner), Stop)
	}
	moves := c.maze.Moves(c.Ghost(agent))
	if len(moves) == 0 {
		return []Direction{Stop}
	}
	return moves
}

func (c *Chase) Successor(agent int, action Direction) searcher.GameState[Direction] {
	return c.Play(agent, action)
}

// Play applies one move. It panics on a move that is not legal, which is always a bug
// in the caller.
func (c *Chase) Play(agent int, action Direction) *Chase {
	if c.IsOver() {
		panic("cannot play in a finished game")
	}
	if agent < 0 || agent >= c.NumAgents() {
		panic(fmt.Sprintf("no agent %d in a game of %d", agent, c.NumAgents()))
	}
	if utils.FindIndex(c.LegalActions(agent), action) < 0 {
		panic(fmt.Sprintf("illegal move %s for agent %d", action, agent))
	}

	next := *c
	if agent == 0 {
		next.runner = c.runner.Move(action)
		next.score -= TimePenalty
		if next.HasDot(next.runner) {
			next.dots = append([]bool(nil), c.dots...)
			next.dots[c.maze.index(next.runner)] = false
			next.left--
			next.score += DotReward
			if next.left == 0 {
				next.score += ClearReward
				next.won = true
			}
		}
	} else {
		next.ghosts = append([]Position(nil), c.ghosts...)
		next.ghosts[agent-1] = c.Ghost(agent).Move(action)
	}

	if !next.won && utils.FindIndex(next.ghosts, next.runner) >= 0 {
		next.score -= CaughtPenalty
		next.lost = true
	}
	return &next
}

// Snapshot is the serializable view of a Chase.
type Snapshot struct {
	Runner Position   `msgpack:"runner"`
	Ghosts []Position `msgpack:"ghosts"`
	Dots   []Position `msgpack:"dots"`
	Score  float64    `msgpack:"score"`
	Won    bool       `msgpack:"won"`
	Lost   bool       `msgpack:"lost"`
}

func (c *Chase) Snapshot() Snapshot {
	return Snapshot{
		Runner: c.runner,
		Ghosts: c.Ghosts(),
		Dots:   c.DotPositions(),
		Score:  c.score,
		Won:    c.won,
		Lost:   c.lost,
	}
}

// Hash fingerprints the positions and remaining dots. The score is left out, so two
// states reached by different paths hash the same.
func (c *Chase) Hash() StateHash {
	snapshot := c.Snapshot()
	snapshot.Score = 0
	data, err := msgpack.Marshal(snapshot)
	if err != nil {
		panic(fmt.Sprintf("failed to encode state: %v", err))
	}
	return StateHash(farm.Hash64(data))
}

// String draws the board.
func (c *Chase) String() string {
	cells := []byte(c.maze.String())
	put := func(p Position, cell byte) {
		cells[p.Row*(c.maze.Width+1)+p.Col] = cell
	}
	for _, dot := range c.DotPositions() {
		put(dot, dotCell)
	}
	put(c.runner, startCell)
	for _, ghost := range c.ghosts {
		put(ghost, ghostCell)
	}
	return string(cells)
}
