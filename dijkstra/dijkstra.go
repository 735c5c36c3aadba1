// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// gridgraph.Grid where every orthogonal step costs 1.
//
// The implementation keeps an explicit unvisited collection of ALL nodes,
// walls included, and on every iteration stable-sorts what remains by
// distance and extracts the head. Nodes at equal distance keep their
// relative order from the previous iteration, starting from row-major.
//
// Complexity:
//
//   - Time:  O(V² log V)  one stable sort of the remaining nodes per extraction.
//   - Space: O(V)         for the unvisited collection.
//
// Notes on implementation choices:
//
//   - Walls are extracted like any node and skipped without being marked.
//   - Extracting a node at +Inf ends the run; the rest is unreachable.
//   - Relaxation assigns distance and Previous to every unvisited neighbor
//     unconditionally. A grid is bipartite, so two adjacent nodes never
//     share a distance and a later assignment can never be larger.
package dijkstra

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Dijkstra runs the algorithm on g from start, stopping when end is
// finalized, and returns nodes in the order they were marked visited.
// Node state is mutated in place; the caller resets the grid between runs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must be in bounds (ErrOutOfBounds).
//
// An unreachable end is not an error: the returned sequence omits it and
// the end node's IsVisited stays false.
func Dijkstra(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) ([]gridgraph.Coord, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %v, end %v", ErrOutOfBounds, start, end)
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Initialize runner and run main loop
	r := &runner{grid: g, options: cfg, end: g.Index(end)}
	r.init(g.Index(start))
	err := r.process()
	return r.visited, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	grid      *gridgraph.Grid // grid being searched; node state is mutated
	options   Options         // hooks
	end       int             // index of the target node
	unvisited []int           // remaining node indices, kept in stable order
	visited   []gridgraph.Coord
}

// init zeroes the source distance and loads every node into the unvisited collection.
func (r *runner) init(source int) {
	n := r.grid.Len()
	r.grid.NodeAt(source).Distance = 0
	r.unvisited = make([]int, n)
	for i := range r.unvisited {
		r.unvisited[i] = i
	}
	r.visited = make([]gridgraph.Coord, 0, n)
}

// process repeatedly extracts the closest remaining node and relaxes its
// unvisited neighbors.
//
// Loop termination conditions:
//
//   - The unvisited collection becomes empty.
//   - The closest remaining node is at +Inf (everything left is unreachable).
//   - The end node is finalized.
//   - The visit hook returns an error.
func (r *runner) process() error {
	for len(r.unvisited) > 0 {
		sort.SliceStable(r.unvisited, func(a, b int) bool {
			return r.grid.NodeAt(r.unvisited[a]).Distance < r.grid.NodeAt(r.unvisited[b]).Distance
		})
		idx := r.unvisited[0]
		r.unvisited = r.unvisited[1:]

		closest := r.grid.NodeAt(idx)
		if closest.IsWall {
			continue
		}
		if math.IsInf(closest.Distance, 1) {
			return nil
		}

		closest.IsVisited = true
		at := r.grid.Coordinate(idx)
		r.visited = append(r.visited, at)
		if r.options.OnVisit != nil {
			if err := r.options.OnVisit(at); err != nil {
				return fmt.Errorf("dijkstra: OnVisit error at %v: %w", at, err)
			}
		}
		if idx == r.end {
			return nil
		}

		r.relax(at, closest)
	}
	return nil
}

// relax sets distance+1 and Previous on every unvisited neighbor of at.
func (r *runner) relax(at gridgraph.Coord, from *gridgraph.Node) {
	prev := r.grid.Index(at)
	for _, c := range r.grid.UnvisitedNeighbors(at) {
		nb := r.grid.Node(c)
		nb.Distance = from.Distance + 1
		nb.Previous = prev
	}
}
