package game

import (
	"fmt"
	"os"
	"strings"
)

const (
	wallCell  = '%'
	startCell = 'P'
	dotCell   = '.'
	ghostCell = 'G'
	openCell  = ' '
)

// Maze is a static grid layout. Mazes are never modified after parsing, so states
// share them freely.
type Maze struct {
	Width  int
	Height int
	Start  Position   // Runner start, 'P'
	Dots   []Position // Goals of a search problem or dots of a chase, '.', in reading order
	Ghosts []Position // Ghost starts, 'G'
	walls  []bool     // Indexed by Row*Width+Col
}

// ParseMaze reads a text layout: '%' is a wall, 'P' the start, '.' a dot, 'G' a
// ghost and ' ' an open cell. Blank lines around the layout are ignored.
func ParseMaze(text string) (*Maze, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty layout: %w", ErrInvalidMaze)
	}

	m := &Maze{
		Width:  len(lines[0]),
		Height: len(lines),
		walls:  make([]bool, len(lines[0])*len(lines)),
	}
	starts := 0
	for row, line := range lines {
		if len(line) != m.Width {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", row, len(line), m.Width, ErrInvalidMaze)
		}
		for col, cell := range line {
			p := Position{row, col}
			switch cell {
			case wallCell:
				m.walls[m.index(p)] = true
			case startCell:
				m.Start = p
				starts++
			case dotCell:
				m.Dots = append(m.Dots, p)
			case ghostCell:
				m.Ghosts = append(m.Ghosts, p)
			case openCell:
			default:
				return nil, fmt.Errorf("unknown cell %q at %v: %w", cell, p, ErrInvalidMaze)
			}
		}
	}

	if starts != 1 {
		return nil, fmt.Errorf("found %d start cells, want 1: %w", starts, ErrInvalidMaze)
	}
	if len(m.Dots) == 0 {
		return nil, fmt.Errorf("no dots: %w", ErrInvalidMaze)
	}
	return m, nil
}

func LoadMaze(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}
	m, err := ParseMaze(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// OpenMaze returns a built-in layout by name, or loads the file at path.
func OpenMaze(nameOrPath string) (*Maze, error) {
	if layout, ok := Layouts[nameOrPath]; ok {
		return ParseMaze(layout)
	}
	return LoadMaze(nameOrPath)
}

func (m *Maze) index(p Position) int {
	return p.Row*m.Width + p.Col
}

func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.Height && p.Col >= 0 && p.Col < m.Width
}

// IsWall treats every cell outside the grid as a wall.
func (m *Maze) IsWall(p Position) bool {
	return !m.InBounds(p) || m.walls[m.index(p)]
}

// Moves lists the directions that lead from p to an open cell, in Compass order.
func (m *Maze) Moves(p Position) []Direction {
	moves := make([]Direction, 0, len(Compass))
	for _, d := range Compass {
		if !m.IsWall(p.Move(d)) {
			moves = append(moves, d)
		}
	}
	return moves
}

// String renders the walls and open cells only.
func (m *Maze) String() string {
	var b strings.Builder
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if m.walls[m.index(Position{row, col})] {
				b.WriteByte(wallCell)
			} else {
				b.WriteByte(openCell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
