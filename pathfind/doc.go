// Package pathfind dispatches a search over a gridgraph.Grid to one of
// the interchangeable strategies and packages the outcome for a
// presentation layer.
//
// It provides:
//
//   - Algorithm: the Dijkstra, BFS and DFS identifiers, with ParseAlgorithm
//     for user input and ShortestPathGuaranteed to gate path reconstruction.
//   - Run: reset the grid, run the strategy between the grid's markers and
//     return a Result with the visited sequence, the shortest path (only
//     for BFS and Dijkstra) and Found.
//
// "No path" is data, not an error: Result.Found is false and Path is
// empty. Errors are reserved for invalid input and hook failures.
package pathfind
