package gridgraph_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestNeighbors_Order checks the up, down, left, right order and the
// clipping at edges and corners of a 3×3 grid.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.Build(3, 3, gridgraph.Coord{}, gridgraph.Coord{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	c := func(r, col int) gridgraph.Coord { return gridgraph.Coord{Row: r, Col: col} }

	cases := []struct {
		at   gridgraph.Coord
		want []gridgraph.Coord
	}{
		{c(1, 1), []gridgraph.Coord{c(0, 1), c(2, 1), c(1, 0), c(1, 2)}},
		{c(0, 0), []gridgraph.Coord{c(1, 0), c(0, 1)}},
		{c(2, 2), []gridgraph.Coord{c(1, 2), c(2, 1)}},
		{c(0, 1), []gridgraph.Coord{c(1, 1), c(0, 0), c(0, 2)}},
	}
	for _, tc := range cases {
		if got := g.Neighbors(tc.at); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Neighbors(%v) = %v; want %v", tc.at, got, tc.want)
		}
	}
}

// TestNeighbors_IncludesWalls ensures walls are not filtered by the resolver.
func TestNeighbors_IncludesWalls(t *testing.T) {
	g, _ := gridgraph.Build(3, 3, gridgraph.Coord{}, gridgraph.Coord{Row: 2, Col: 2})
	g.SetWall(gridgraph.Coord{Row: 0, Col: 1}, true)
	if got := len(g.Neighbors(gridgraph.Coord{Row: 1, Col: 1})); got != 4 {
		t.Errorf("len(Neighbors) = %d; want 4", got)
	}
}

// TestUnvisitedNeighbors filters visited cells while keeping order.
func TestUnvisitedNeighbors(t *testing.T) {
	g, _ := gridgraph.Build(3, 3, gridgraph.Coord{}, gridgraph.Coord{Row: 2, Col: 2})
	g.Node(gridgraph.Coord{Row: 0, Col: 1}).IsVisited = true
	g.Node(gridgraph.Coord{Row: 1, Col: 2}).IsVisited = true

	got := g.UnvisitedNeighbors(gridgraph.Coord{Row: 1, Col: 1})
	want := []gridgraph.Coord{{Row: 2, Col: 1}, {Row: 1, Col: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnvisitedNeighbors = %v; want %v", got, want)
	}
}
