// Package gridgraph treats a fixed-size rectangle of cells as an
// unweighted, orthogonally connected graph for the search strategies.
//
// What:
//
//   - Grid owns every Node and all traversal state (Distance, IsVisited, Previous).
//   - Exactly one start and one end marker exist at all times; neither is a wall.
//   - Edits (SetWall, MoveStart, MoveEnd) that would break that invariant are
//     silent no-ops and report false.
//   - Neighbors resolves up, down, left, right in that order; the order
//     decides BFS/DFS tie-breaking and is part of the contract.
//   - ShortestPath walks Previous indices back from the end marker.
//
// Extras:
//
//   - ParseLayout / Format: a '.', '#', 'S', 'E' text form of a grid.
//   - Region, Connected, OpenComponents: wall-aware flood fill.
//   - MinimalBreach: 0-1 BFS for the fewest walls separating start and end.
//   - ScatterWalls: seeded random walls.
//   - CarveMaze: randomized Kruskal maze over a room lattice.
//
// Complexity:
//
//   - Build, ResetForSearch:          O(W×H).
//   - Neighbors, SetWall, Move*:      O(1).
//   - Region, OpenComponents, Breach: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCell, ErrMarkerCount: bad layout input.
//   - ErrOutOfBounds, ErrMarkerOverlap: bad Build arguments.
//   - ErrNotVisited: PathTo on an unreached node.
//   - ErrNoPath: MinimalBreach on an inconsistent grid.
//
// Quick layout example:
//
//	S.#..
//	..#.E
//	.....
package gridgraph
