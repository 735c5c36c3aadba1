package gridgraph

import "fmt"

// ShortestPath follows Previous back-references from end until a node with
// NoPrevious is reached and returns the chain ordered start→end inclusive.
//
// The chain is only a shortest path after a run of a strategy that
// guarantees one (BFS or Dijkstra) and only when end was visited; for an
// unreached end the result is the single-element slice [end]. Use PathTo
// when that case must be told apart.
//
// Complexity: O(L) where L is the chain length.
func (g *Grid) ShortestPath(end Coord) []Coord {
	if !g.InBounds(end) {
		return nil
	}
	var rev []Coord
	// bound the walk by the node count so a corrupted chain cannot loop
	for at, steps := g.Index(end), 0; at != NoPrevious && steps <= len(g.nodes); steps++ {
		rev = append(rev, g.Coordinate(at))
		at = g.nodes[at].Previous
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// PathTo is ShortestPath with validation: it returns ErrOutOfBounds for a
// coordinate outside the grid and ErrNotVisited when end was never reached.
func (g *Grid) PathTo(end Coord) ([]Coord, error) {
	n := g.Node(end)
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, end)
	}
	if !n.IsVisited {
		return nil, fmt.Errorf("%w: %v", ErrNotVisited, end)
	}
	return g.ShortestPath(end), nil
}
