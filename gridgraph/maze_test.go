package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestCarveMaze_Perfect checks a 9×9 maze is a spanning tree over its
// 5×5 room lattice: 25 rooms plus 24 opened passages, no cycles.
func TestCarveMaze_Perfect(t *testing.T) {
	g, err := gridgraph.Build(9, 9, gridgraph.Coord{}, gridgraph.Coord{Row: 8, Col: 8})
	require.NoError(t, err)
	g.SetWall(gridgraph.Coord{Row: 0, Col: 0}, true) // marker, ignored

	walls := g.CarveMaze(rand.New(rand.NewSource(1)))
	assert.Equal(t, 32, walls)
	assert.Len(t, g.Region(g.Start()), 49)
	assert.True(t, g.Connected(g.Start(), g.End()))

	// a tree over open cells has exactly one fewer adjacency than cells
	links := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Node(gridgraph.Coord{Row: r, Col: c}).IsWall {
				continue
			}
			for _, d := range []gridgraph.Coord{{Row: r, Col: c + 1}, {Row: r + 1, Col: c}} {
				if n := g.Node(d); n != nil && !n.IsWall {
					links++
				}
			}
		}
	}
	assert.Equal(t, 48, links)
}

// TestCarveMaze_Seeded checks a fixed seed reproduces the layout and the
// default markers stay connected.
func TestCarveMaze_Seeded(t *testing.T) {
	a, b := gridgraph.Default(), gridgraph.Default()
	a.CarveMaze(rand.New(rand.NewSource(7)))
	b.CarveMaze(rand.New(rand.NewSource(7)))

	assert.Equal(t, a.Walls(), b.Walls())
	assert.Equal(t, gridgraph.DefaultStart, a.Start())
	assert.True(t, a.Connected(a.Start(), a.End()))
}

// TestCarveMaze_OffLatticeEnd checks an end marker between rooms is joined.
func TestCarveMaze_OffLatticeEnd(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, err := gridgraph.Build(5, 5, gridgraph.Coord{}, gridgraph.Coord{Row: 1, Col: 1})
		require.NoError(t, err)
		g.CarveMaze(rand.New(rand.NewSource(seed)))
		assert.True(t, g.Connected(g.Start(), g.End()), "seed %d", seed)
	}
}
