package gridgraph

import "math/rand"

// CarveMaze replaces the layout with a perfect maze built by randomized
// Kruskal. Rooms are the cells sharing the start marker's row and column
// parity; the walls between two rooms are knocked down in a random order
// whenever the rooms belong to different sets. Markers keep their place.
//
// Steps:
//  1. Wall every unmarked cell, then open every room.
//  2. Collect room pairs two cells apart in row-major order and shuffle them with rng.
//  3. Union-find with path compression and union by rank: for each pair in
//     different sets, union them and open the cell between.
//  4. If the end marker sits off the room lattice and is still cut off,
//     open the walls of MinimalBreach.
//
// Returns the number of walls in the finished maze.
//
// Complexity: O(V·α(V)), Memory: O(V).
func (g *Grid) CarveMaze(rng *rand.Rand) int {
	for i := range g.nodes {
		g.SetWall(g.Coordinate(i), true)
	}
	s := g.Coordinate(g.start)
	room := func(c Coord) bool {
		return (c.Row-s.Row)%2 == 0 && (c.Col-s.Col)%2 == 0
	}
	for i := range g.nodes {
		if c := g.Coordinate(i); room(c) {
			g.SetWall(c, false)
		}
	}

	type pair struct{ a, b, mid int }
	var pairs []pair
	for i := range g.nodes {
		c := g.Coordinate(i)
		if !room(c) {
			continue
		}
		if d := (Coord{Row: c.Row, Col: c.Col + 2}); g.InBounds(d) {
			pairs = append(pairs, pair{i, g.Index(d), g.Index(Coord{Row: c.Row, Col: c.Col + 1})})
		}
		if d := (Coord{Row: c.Row + 2, Col: c.Col}); g.InBounds(d) {
			pairs = append(pairs, pair{i, g.Index(d), g.Index(Coord{Row: c.Row + 1, Col: c.Col})})
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	sets := newDisjointSet(len(g.nodes))
	for _, p := range pairs {
		if sets.union(p.a, p.b) {
			g.SetWall(g.Coordinate(p.mid), false)
		}
	}

	if !g.Connected(s, g.End()) {
		walls, _ := g.MinimalBreach()
		for _, c := range walls {
			g.SetWall(c, false)
		}
	}
	return len(g.Walls())
}

// disjointSet is union-find over dense int keys.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// find walks to the root, pointing each step at its grandparent.
func (d *disjointSet) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *disjointSet) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// attach the shallower tree under the deeper root
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}
	return true
}
