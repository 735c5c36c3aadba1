package gridgraph

// Region returns every open (non-wall) cell orthogonally reachable from
// from, including from itself, in BFS discovery order. A wall or
// out-of-bounds origin yields nil.
//
// Region ignores traversal state, so it can be called between runs.
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Region(from Coord) []Coord {
	n := g.Node(from)
	if n == nil || n.IsWall {
		return nil
	}
	seen := make([]bool, len(g.nodes))
	i0 := g.Index(from)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, v := range g.Neighbors(u) {
			vi := g.Index(v)
			if seen[vi] || g.nodes[vi].IsWall {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	out := make([]Coord, len(queue))
	for i, idx := range queue {
		out[i] = g.Coordinate(idx)
	}
	return out
}

// Connected reports whether an open orthogonal route joins a and b.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.InBounds(b) {
		return false
	}
	for _, c := range g.Region(a) {
		if c == b {
			return true
		}
	}
	return false
}

// OpenComponents partitions all open cells into orthogonally connected
// regions ("rooms"). Components are returned in row-major order of their
// first cell; each component lists row-major indices in discovery order.
// To convert an index back to a Coord use Coordinate.
func (g *Grid) OpenComponents() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int

	for i0 := range g.nodes {
		if g.nodes[i0].IsWall || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(g.Coordinate(queue[qi])) {
				vi := g.Index(v)
				if !seen[vi] && !g.nodes[vi].IsWall {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
