package search

import (
	"fmt"
	"strings"

	"github.com/jingshiliu/qc-artificial-intelligence/frontier"
)

// Discipline selects the order in which discovered nodes are expanded.
type Discipline int

const (
	DFS   Discipline = iota // Deepest node first
	BFS                     // Shallowest node first
	UCS                     // Cheapest path cost first
	AStar                   // Cheapest path cost plus heuristic first
)

var disciplineNames = map[Discipline]string{
	DFS:   "dfs",
	BFS:   "bfs",
	UCS:   "ucs",
	AStar: "astar",
}

func (d Discipline) String() string {
	if name, ok := disciplineNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Discipline(%d)", int(d))
}

// Disciplines lists every discipline in declaration order.
func Disciplines() []Discipline {
	return []Discipline{DFS, BFS, UCS, AStar}
}

// ParseDiscipline accepts the names printed by String plus a few common aliases.
func ParseDiscipline(name string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first", "depthfirst":
		return DFS, nil
	case "bfs", "breadth-first", "breadthfirst":
		return BFS, nil
	case "ucs", "uniform-cost", "uniformcost":
		return UCS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("unknown search discipline %q", name)
}

// priority returns the ordering key of a node. Only the priority queue reads it.
func (d Discipline) priority(cost, estimate float64) float64 {
	switch d {
	case UCS:
		return cost
	case AStar:
		return cost + estimate
	}
	return 0
}

// reversesSuccessors reports whether successors are pushed right to left so that
// a LIFO frontier still explores them left to right.
func (d Discipline) reversesSuccessors() bool {
	return d == DFS
}

// dedupsOnDiscovery reports whether any second push of a discovered state is
// redundant. FIFO order always pops the first copy first.
func (d Discipline) dedupsOnDiscovery() bool {
	return d == BFS
}

func newFrontier[S comparable, A any](d Discipline) frontier.Frontier[node[S, A]] {
	switch d {
	case DFS:
		return frontier.NewStack[node[S, A]]()
	case BFS:
		return frontier.NewQueue[node[S, A]]()
	case UCS, AStar:
		return frontier.NewPriorityQueue[node[S, A]]()
	}
	panic(fmt.Sprintf("unsupported search discipline %v", d))
}
