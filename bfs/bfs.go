// Package bfs provides breadth-first search over a gridgraph.Grid,
// recording the visit order and Previous links for path reconstruction.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	end     gridgraph.Coord
	queue   []gridgraph.Coord
	visited []gridgraph.Coord
}

// BFS runs breadth-first search on g from start until end is dequeued or
// the frontier is exhausted, mutating node state in place.
//
// The start node is marked visited at distance 0 before the loop. Every
// dequeued node is appended to the returned sequence; each unvisited,
// non-wall neighbor is marked visited, linked through Previous and
// enqueued. If end is unreachable the sequence never contains it and
// end's IsVisited stays false; that is not an error.
//
// The caller resets the grid (gridgraph.Grid.ResetForSearch) between runs.
// Returns ErrGridNil, ErrOutOfBounds, or a wrapped OnVisit error.
func BFS(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) ([]gridgraph.Coord, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %v, end %v", ErrOutOfBounds, start, end)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		end:     end,
		queue:   make([]gridgraph.Coord, 0, g.Len()),
		visited: make([]gridgraph.Coord, 0, g.Len()),
	}
	s := g.Node(start)
	s.IsVisited = true
	s.Distance = 0
	w.queue = append(w.queue, start)
	w.opts.OnEnqueue(start)

	err := w.loop()
	return w.visited, err
}

// loop processes the queue until it is empty, end is reached, or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		w.visited = append(w.visited, cur)
		if err := w.opts.OnVisit(cur); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", cur, err)
		}
		if cur == w.end {
			return nil
		}
		w.enqueueNeighbors(cur)
	}
	return nil
}

// enqueueNeighbors marks and enqueues every unvisited, non-wall neighbor.
func (w *walker) enqueueNeighbors(cur gridgraph.Coord) {
	from := w.grid.Node(cur)
	prev := w.grid.Index(cur)
	for _, c := range w.grid.UnvisitedNeighbors(cur) {
		n := w.grid.Node(c)
		if n.IsWall {
			continue
		}
		n.IsVisited = true
		n.Previous = prev
		n.Distance = from.Distance + 1
		w.queue = append(w.queue, c)
		w.opts.OnEnqueue(c)
	}
}
