package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// chain links cells through Previous the way a strategy would.
func chain(g *gridgraph.Grid, cells ...gridgraph.Coord) {
	for i, c := range cells {
		n := g.Node(c)
		n.IsVisited = true
		if i > 0 {
			n.Previous = g.Index(cells[i-1])
		}
	}
}

// TestShortestPath rebuilds a hand-made chain on a 1×4 line.
func TestShortestPath(t *testing.T) {
	g, _ := gridgraph.Build(1, 4, gridgraph.Coord{}, gridgraph.Coord{Col: 3})
	cells := []gridgraph.Coord{{Col: 0}, {Col: 1}, {Col: 2}, {Col: 3}}
	chain(g, cells...)

	if got := g.ShortestPath(g.End()); !reflect.DeepEqual(got, cells) {
		t.Errorf("ShortestPath = %v; want %v", got, cells)
	}
	got, err := g.PathTo(g.End())
	if err != nil || !reflect.DeepEqual(got, cells) {
		t.Errorf("PathTo = %v, %v; want %v, nil", got, err, cells)
	}
}

// TestShortestPath_Unreached returns only the end cell and PathTo reports it.
func TestShortestPath_Unreached(t *testing.T) {
	g, _ := gridgraph.Build(1, 4, gridgraph.Coord{}, gridgraph.Coord{Col: 3})
	if got := g.ShortestPath(g.End()); len(got) != 1 || got[0] != g.End() {
		t.Errorf("ShortestPath = %v; want [%v]", got, g.End())
	}
	if _, err := g.PathTo(g.End()); !errors.Is(err, gridgraph.ErrNotVisited) {
		t.Errorf("PathTo error = %v; want ErrNotVisited", err)
	}
	if _, err := g.PathTo(gridgraph.Coord{Row: 5}); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("PathTo error = %v; want ErrOutOfBounds", err)
	}
	if got := g.ShortestPath(gridgraph.Coord{Row: 5}); got != nil {
		t.Errorf("ShortestPath out of bounds = %v; want nil", got)
	}
}

// TestShortestPath_Cycle terminates on a corrupted back-reference loop.
func TestShortestPath_Cycle(t *testing.T) {
	g, _ := gridgraph.Build(1, 2, gridgraph.Coord{}, gridgraph.Coord{Col: 1})
	g.NodeAt(0).Previous = 1
	g.NodeAt(1).Previous = 0
	if got := g.ShortestPath(g.End()); len(got) > g.Len()+1 {
		t.Errorf("ShortestPath length %d exceeds bound", len(got))
	}
}
