package gridgraph

// SetWall sets or clears the wall flag at c. Start and end nodes can never
// become walls and out-of-bounds coordinates are ignored; both cases are
// silent no-ops. Reports whether the grid changed.
func (g *Grid) SetWall(c Coord, wall bool) bool {
	n := g.Node(c)
	if n == nil || n.IsStart || n.IsEnd || n.IsWall == wall {
		return false
	}
	n.IsWall = wall
	return true
}

// ToggleWall flips the wall flag at c under the same rules as SetWall.
func (g *Grid) ToggleWall(c Coord) bool {
	n := g.Node(c)
	if n == nil {
		return false
	}
	return g.SetWall(c, !n.IsWall)
}

// MoveStart moves the start marker to c. It is a no-op when c is out of
// bounds, a wall, or holds the end marker. Reports whether the grid changed.
func (g *Grid) MoveStart(c Coord) bool {
	n := g.Node(c)
	if n == nil || n.IsWall || n.IsEnd || n.IsStart {
		return false
	}
	g.nodes[g.start].IsStart = false
	n.IsStart = true
	g.start = g.Index(c)
	return true
}

// MoveEnd moves the end marker to c. It is a no-op when c is out of
// bounds, a wall, or holds the start marker. Reports whether the grid changed.
func (g *Grid) MoveEnd(c Coord) bool {
	n := g.Node(c)
	if n == nil || n.IsWall || n.IsStart || n.IsEnd {
		return false
	}
	g.nodes[g.end].IsEnd = false
	n.IsEnd = true
	g.end = g.Index(c)
	return true
}
