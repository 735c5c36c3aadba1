// Package gridgraph models a fixed-size rectangular grid of cells that the
// search strategies (bfs, dfs, dijkstra) traverse. It supports:
//
//   - Building and clearing a grid with one start and one end marker
//   - Wall painting and marker moves as silent-no-op edits
//   - Orthogonal neighbor resolution in a fixed up, down, left, right order
//   - Path reconstruction from Previous back-references
//
// Cells are addressed by Coord; back-references are row-major indices so a
// Grid can be cloned or serialized without pointer aliasing.
package gridgraph

import (
	"fmt"
	"math"
)

// Build constructs a rows×cols grid with no walls, every node unvisited at
// distance +Inf, and the start and end markers at the given coordinates.
// Returns ErrEmptyGrid for non-positive dimensions, ErrOutOfBounds if a
// marker lies outside the grid and ErrMarkerOverlap if start == end.
// Complexity: O(rows×cols) time and memory.
func Build(rows, cols int, start, end Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, nodes: make([]Node, rows*cols)}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, end, rows, cols)
	}
	if start == end {
		return nil, ErrMarkerOverlap
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.nodes[r*cols+c] = Node{
				Row:      r,
				Col:      c,
				Distance: math.Inf(1),
				Previous: NoPrevious,
			}
		}
	}
	g.start = g.Index(start)
	g.end = g.Index(end)
	g.nodes[g.start].IsStart = true
	g.nodes[g.end].IsEnd = true

	return g, nil
}

// Default returns the standard 20×50 grid with start (10,5) and end (10,45).
func Default() *Grid {
	g, err := Build(DefaultRows, DefaultCols, DefaultStart, DefaultEnd)
	if err != nil {
		panic(err) // constants are valid
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of nodes.
func (g *Grid) Len() int { return len(g.nodes) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index converts c to its row-major index. c must be in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Node returns the node at c, or nil when c is out of bounds.
// The returned pointer aliases grid storage.
func (g *Grid) Node(c Coord) *Node {
	if !g.InBounds(c) {
		return nil
	}
	return &g.nodes[g.Index(c)]
}

// NodeAt returns the node at row-major index idx.
func (g *Grid) NodeAt(idx int) *Node {
	return &g.nodes[idx]
}

// Start returns the coordinate of the start marker.
func (g *Grid) Start() Coord { return g.Coordinate(g.start) }

// End returns the coordinate of the end marker.
func (g *Grid) End() Coord { return g.Coordinate(g.end) }

// Walls returns every wall coordinate in row-major order.
func (g *Grid) Walls() []Coord {
	var walls []Coord
	for i := range g.nodes {
		if g.nodes[i].IsWall {
			walls = append(walls, g.Coordinate(i))
		}
	}
	return walls
}

// ResetForSearch clears IsVisited, Distance and Previous on every node while
// keeping walls and markers. Calling it repeatedly has no further effect.
// Complexity: O(rows×cols).
func (g *Grid) ResetForSearch() {
	inf := math.Inf(1)
	for i := range g.nodes {
		n := &g.nodes[i]
		n.IsVisited = false
		n.Distance = inf
		n.Previous = NoPrevious
	}
}

// Clone returns a deep copy of g, traversal state included.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.nodes = make([]Node, len(g.nodes))
	copy(cp.nodes, g.nodes)
	return &cp
}
