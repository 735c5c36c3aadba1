package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkOpenComponents measures OpenComponents on a 500×500 grid with
// 30% random walls.
// Complexity: O(W×H×4)
func BenchmarkOpenComponents(b *testing.B) {
	g, err := gridgraph.Build(500, 500, gridgraph.Coord{}, gridgraph.Coord{Row: 499, Col: 499})
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	g.ScatterWalls(rand.New(rand.NewSource(42)), 0.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.OpenComponents()
	}
}

// BenchmarkMinimalBreach measures MinimalBreach on the same grid shape.
// Complexity: O(W×H×4)
func BenchmarkMinimalBreach(b *testing.B) {
	g, err := gridgraph.Build(500, 500, gridgraph.Coord{}, gridgraph.Coord{Row: 499, Col: 499})
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	g.ScatterWalls(rand.New(rand.NewSource(42)), 0.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.MinimalBreach()
	}
}
