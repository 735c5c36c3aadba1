// Package gridgraph defines the cell, coordinate and grid types
// of the gridpath module together with its default dimensions.
package gridgraph

import "fmt"

// Default dimensions and marker positions of a freshly cleared grid.
const (
	DefaultRows = 20
	DefaultCols = 50
)

var (
	// DefaultStart is the start marker position after a clear.
	DefaultStart = Coord{Row: 10, Col: 5}
	// DefaultEnd is the end marker position after a clear.
	DefaultEnd = Coord{Row: 10, Col: 45}
)

// NoPrevious marks a node that has not been reached from any other node.
const NoPrevious = -1

// Coord addresses a single cell. Row grows downwards, Col grows to the right.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the orthogonal step distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether c and o share an edge (no diagonals).
func (c Coord) Adjacent(o Coord) bool {
	return c.Manhattan(o) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Node is one grid cell plus its traversal metadata.
//
// Row and Col never change after Build. IsStart, IsEnd and IsWall describe
// the layout and survive ResetForSearch; Distance, IsVisited and Previous
// are scratch state owned by the search strategies.
type Node struct {
	Row, Col int

	IsStart bool
	IsEnd   bool
	IsWall  bool

	// Distance is +Inf until the node is reached.
	Distance float64
	// IsVisited is set when a strategy finalizes the node.
	IsVisited bool
	// Previous is the row-major index of the node this one was reached from,
	// or NoPrevious.
	Previous int
}

// Coord returns the node's position.
func (n *Node) Coord() Coord {
	return Coord{Row: n.Row, Col: n.Col}
}

// Grid is a fixed Rows×Cols rectangle of nodes stored in row-major order.
// Exactly one node carries IsStart and exactly one carries IsEnd; neither
// is ever a wall. Grid is not safe for concurrent use.
type Grid struct {
	rows, cols int
	nodes      []Node
	start, end int // indices of the marker holders
}

// offsets lists the orthogonal directions in resolution order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
