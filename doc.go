// Package gridpath is an in-memory pathfinding playground on a walled,
// four-connected grid: paint walls, move the start and end markers, then
// watch Dijkstra, BFS or DFS explore it.
//
// What is inside?
//
//	• Grid model: row-major cells, walls, markers, layout text, mazes
//	• Traversals: BFS, DFS
//	• Shortest paths: Dijkstra (stable extract-min), Previous-chain reconstruction
//	• Extras: connected regions, fewest-walls breach, seeded wall scatter
//	• Replay: timed visit/path/status frames for terminal or HTTP clients
//
// Every search is deterministic: neighbors resolve up, down, left, right,
// and equal-distance ties keep row-major order.
//
// Layout:
//
//	gridgraph/  Grid, Node, Coord, edits, neighbors, path reconstruction
//	bfs/        FIFO breadth-first search
//	dfs/        LIFO depth-first search
//	dijkstra/   uniform-cost Dijkstra
//	pathfind/   algorithm selection and Result
//	internal/   config, session, replay, render, server
//	cmd/gridpath the CLI (run, serve, layout)
//
// Quick ASCII example:
//
//	S.#.
//	..#E
//	....
//
// is a 3×4 grid with two walls; BFS walks around them from S to E.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
