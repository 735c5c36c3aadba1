package gridgraph

import "math/rand"

// ScatterWalls turns each open, unmarked cell into a wall with probability
// density, drawing from rng so layouts are reproducible for a fixed seed.
// density is clamped to [0,1]. Existing walls are kept. Returns the number
// of walls added.
func (g *Grid) ScatterWalls(rng *rand.Rand, density float64) int {
	if density <= 0 {
		return 0
	}
	if density > 1 {
		density = 1
	}
	added := 0
	for i := range g.nodes {
		if rng.Float64() >= density {
			continue
		}
		if g.SetWall(g.Coordinate(i), true) {
			added++
		}
	}
	return added
}

// ClearWalls removes every wall and returns how many were removed.
func (g *Grid) ClearWalls() int {
	removed := 0
	for i := range g.nodes {
		if g.nodes[i].IsWall {
			g.nodes[i].IsWall = false
			removed++
		}
	}
	return removed
}
