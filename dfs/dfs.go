// Package dfs implements iterative depth-first search on gridgraph.Grid.
//
// Key features:
//   - DFS(g, start, end, opts...): LIFO traversal that stops at end
//   - Lazy filtering: visited nodes and walls are skipped when popped
//   - Hooks: OnVisit with error aborts
//   - WithEagerDedupe: optional push-time dedupe
//
// Complexity:
//
//   - Time:   O(V) pops with dedupe, O(4·V) without (each visit pushes up to 4).
//   - Memory: O(V) for the stack.
//
// Errors:
//
//   - ErrGridNil      if g is nil.
//   - ErrOutOfBounds  if start or end is outside the grid.
//   - any error returned by OnVisit, wrapped.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *gridgraph.Grid   // grid being traversed
	opts    DFSOptions        // traversal options
	end     gridgraph.Coord   // stop target
	stack   []gridgraph.Coord // LIFO frontier
	queued  []bool            // per index: pushed at least once (EagerDedupe only)
	visited []gridgraph.Coord // result collector
}

// DFS performs depth-first search on g from start, mutating node state in
// place, and returns nodes in the order they were marked visited.
//
// The start node is pushed without being marked. Each pop skips visited
// nodes and walls; otherwise the node is marked visited, appended, and the
// search returns if it is end. Then each unvisited neighbor (up, down,
// left, right) gets Previous = current and is pushed, so Previous may be
// overwritten several times before a node is popped. The resulting chain
// is not a shortest path.
func DFS(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) ([]gridgraph.Coord, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %v, end %v", ErrOutOfBounds, start, end)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Prepare walker
	w := &dfsWalker{
		grid:    g,
		opts:    dopts,
		end:     end,
		stack:   []gridgraph.Coord{start},
		visited: make([]gridgraph.Coord, 0, g.Len()),
	}
	if dopts.EagerDedupe {
		w.queued = make([]bool, g.Len())
		w.queued[g.Index(start)] = true
	}

	// 4. Run
	err := w.run()
	return w.visited, err
}

// run pops until the stack is empty, end is visited, or the hook fails.
func (w *dfsWalker) run() error {
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		cur := w.stack[top]
		w.stack = w.stack[:top]

		n := w.grid.Node(cur)
		if n.IsVisited || n.IsWall {
			continue
		}
		n.IsVisited = true
		w.visited = append(w.visited, cur)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur); err != nil {
				return fmt.Errorf("dfs: OnVisit error at %v: %w", cur, err)
			}
		}
		if cur == w.end {
			return nil
		}
		w.push(cur)
	}
	return nil
}

// push links and stacks the unvisited neighbors of cur.
func (w *dfsWalker) push(cur gridgraph.Coord) {
	prev := w.grid.Index(cur)
	for _, c := range w.grid.UnvisitedNeighbors(cur) {
		idx := w.grid.Index(c)
		if w.queued != nil {
			if w.queued[idx] {
				continue
			}
			w.queued[idx] = true
		}
		w.grid.NodeAt(idx).Previous = prev
		w.stack = append(w.stack, c)
	}
}
