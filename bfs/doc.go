// Package bfs provides breadth-first search over a gridgraph.Grid with
// uniform edge cost 1, yielding the visit order and a shortest path.
//
// What
//
//   - A FIFO queue seeded with the start node, which is marked visited at
//     distance 0 before the loop.
//   - Each dequeued node is appended to the visited sequence; the search
//     stops as soon as the end node is dequeued.
//   - Walls are checked at enqueue time: an unvisited wall neighbor is never
//     marked, linked, or enqueued.
//   - Every enqueued node gets Previous (row-major index of its parent) and
//     Distance (edge count from start).
//   - Hooks: OnEnqueue and OnVisit (may abort with an error).
//
// Why
//
//   - Because all edges weigh 1, first discovery is optimal and
//     gridgraph.Grid.ShortestPath(end) is a shortest path.
//
// Determinism
//
//	Neighbors are resolved up, down, left, right, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = cells)
//
//   - Time:   O(V)
//   - Memory: O(V)
//
// Usage
//
//	g.ResetForSearch()
//	visited, err := bfs.BFS(g, g.Start(), g.End())
//	if err != nil {
//	    // ErrGridNil, ErrOutOfBounds, or an OnVisit error
//	}
//	if g.Node(g.End()).IsVisited {
//	    path := g.ShortestPath(g.End())
//	}
package bfs
