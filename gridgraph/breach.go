package gridgraph

import "container/list"

// MinimalBreach finds the fewest walls whose removal would open an
// orthogonal route from the start marker to the end marker. It returns
// those walls in route order; an empty, non-nil slice means start and end
// are already connected.
//
// Behavior:
//  1. 0-1 BFS from the start cell:
//     • stepping onto an open cell costs 0
//     • stepping onto a wall costs 1
//  2. Stop when the end cell is dequeued.
//  3. Walk predecessors back and collect the walls on the route.
//
// Every cell of a non-empty grid is reachable when walls may be broken, so
// ErrNoPath only surfaces for a grid whose markers are inconsistent.
//
// Complexity: O(W·H), Memory: O(W·H).
func (g *Grid) MinimalBreach() ([]Coord, error) {
	n := len(g.nodes)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = NoPrevious
	}

	// 0-1 BFS: deque processes cost-0 moves at the front, cost-1 at the back
	dq := list.New()
	dist[g.start] = 0
	dq.PushFront(g.start)
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == g.end {
			target = u
			break
		}
		for _, c := range g.Neighbors(g.Coordinate(u)) {
			v := g.Index(c)
			step := 0
			if g.nodes[v].IsWall {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, ErrNoPath
	}
	walls := make([]Coord, 0, dist[target])
	for at := target; at != NoPrevious; at = prev[at] {
		if g.nodes[at].IsWall {
			walls = append(walls, g.Coordinate(at))
		}
	}
	for i, j := 0, len(walls)-1; i < j; i, j = i+1, j-1 {
		walls[i], walls[j] = walls[j], walls[i]
	}
	return walls, nil
}
