package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkBFS_Open200 measures BFS corner to corner on an open 200×200 grid.
func BenchmarkBFS_Open200(b *testing.B) {
	g, err := gridgraph.Build(200, 200, gridgraph.Coord{}, gridgraph.Coord{Row: 199, Col: 199})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(g.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g.ResetForSearch()
		b.StartTimer()
		if _, err := bfs.BFS(g, g.Start(), g.End()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBFS_Scattered runs BFS on the default grid with 30% random walls.
// A fixed seed keeps the layout identical across runs.
func BenchmarkBFS_Scattered(b *testing.B) {
	g := gridgraph.Default()
	g.ScatterWalls(rand.New(rand.NewSource(42)), 0.3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g.ResetForSearch()
		b.StartTimer()
		if _, err := bfs.BFS(g, g.Start(), g.End()); err != nil {
			b.Fatal(err)
		}
	}
}
