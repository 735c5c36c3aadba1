package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleDFS demonstrates the depth-first visit order on a 3×3 grid.
// The most recently pushed neighbor (right, then left, down, up) is
// explored first, so the walk snakes along the top row.
//
//	S..
//	...
//	..E
func ExampleDFS() {
	g, _ := gridgraph.Build(3, 3, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})

	visited, err := dfs.DFS(g, g.Start(), g.End())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(visited)

	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (1,1) (1,0) (2,0) (2,1) (2,2)]
}
