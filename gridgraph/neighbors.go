package gridgraph

// Neighbors returns the orthogonally adjacent in-bounds cells of c in the
// order up, down, left, right. Walls are included; filtering them is the
// caller's decision because the strategies check walls at different times.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// UnvisitedNeighbors returns Neighbors(c) filtered to nodes whose IsVisited
// flag is false, preserving order.
func (g *Grid) UnvisitedNeighbors(c Coord) []Coord {
	all := g.Neighbors(c)
	out := all[:0]
	for _, n := range all {
		if !g.nodes[g.Index(n)].IsVisited {
			out = append(out, n)
		}
	}
	return out
}
