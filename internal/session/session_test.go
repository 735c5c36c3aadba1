package session

import (
	"errors"
	"io"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(nil, WithLogger(quietLogger()))
	require.NoError(t, err)
	return s
}

func TestNew_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(func() (*gridgraph.Grid, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

// TestPaintGesture paints along a drag and stops on pointer up.
func TestPaintGesture(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, PaintWalls, s.PointerDown(gridgraph.Coord{Row: 0, Col: 0}))
	assert.True(t, s.PointerEnter(gridgraph.Coord{Row: 0, Col: 1}))
	assert.False(t, s.PointerEnter(gridgraph.DefaultStart), "markers are never painted")
	s.PointerUp()
	assert.False(t, s.PointerEnter(gridgraph.Coord{Row: 0, Col: 2}))

	snap := s.Snapshot()
	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, snap.Walls)
	assert.Equal(t, "idle", snap.Mode)
}

// TestEraseGesture erases when the first cell pressed was a wall.
func TestEraseGesture(t *testing.T) {
	s := newSession(t)
	for col := 0; col < 3; col++ {
		s.SetWall(gridgraph.Coord{Row: 1, Col: col}, true)
	}
	assert.Equal(t, EraseWalls, s.PointerDown(gridgraph.Coord{Row: 1, Col: 0}))
	s.PointerEnter(gridgraph.Coord{Row: 1, Col: 1})
	s.PointerEnter(gridgraph.Coord{Row: 2, Col: 1}) // open cell stays open
	s.PointerUp()
	assert.Equal(t, []gridgraph.Coord{{Row: 1, Col: 2}}, s.Snapshot().Walls)
}

// TestDragMarkers drags start and end, refusing walls and the other marker.
func TestDragMarkers(t *testing.T) {
	s := newSession(t)
	s.SetWall(gridgraph.Coord{Row: 10, Col: 7}, true)

	assert.Equal(t, DragStart, s.PointerDown(gridgraph.DefaultStart))
	assert.True(t, s.PointerEnter(gridgraph.Coord{Row: 10, Col: 6}))
	assert.False(t, s.PointerEnter(gridgraph.Coord{Row: 10, Col: 7}))
	assert.False(t, s.PointerEnter(gridgraph.DefaultEnd))
	s.PointerUp()
	assert.Equal(t, gridgraph.Coord{Row: 10, Col: 6}, s.Snapshot().Start)

	assert.Equal(t, DragEnd, s.PointerDown(gridgraph.DefaultEnd))
	assert.True(t, s.PointerEnter(gridgraph.Coord{Row: 0, Col: 49}))
	s.PointerUp()
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 49}, s.Snapshot().End)
	assert.Equal(t, Idle, s.Mode())
}

// TestClear resets layout and bumps the generation.
func TestClear(t *testing.T) {
	s := newSession(t)
	s.SetWall(gridgraph.Coord{Row: 3, Col: 3}, true)
	s.MoveStart(gridgraph.Coord{Row: 0, Col: 0})
	s.PointerDown(gridgraph.Coord{Row: 5, Col: 5})

	require.NoError(t, s.Clear())
	snap := s.Snapshot()
	assert.Empty(t, snap.Walls)
	assert.Equal(t, gridgraph.DefaultStart, snap.Start)
	assert.Equal(t, uint64(1), snap.Generation)
	assert.Equal(t, Idle, s.Mode())
}

// TestMaze carves a connected maze and counts as a rebuild.
func TestMaze(t *testing.T) {
	s := newSession(t)
	walls, err := s.Maze(3)
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.Len(t, snap.Walls, walls)
	assert.Equal(t, uint64(1), snap.Generation)

	res, _, err := s.Search(pathfind.BFS)
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestSearch keeps walls across runs and reports no path when enclosed.
func TestSearch(t *testing.T) {
	s := newSession(t)
	res, gen, err := s.Search(pathfind.BFS)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, uint64(0), gen)

	for _, c := range []gridgraph.Coord{{Row: 9, Col: 45}, {Row: 11, Col: 45}, {Row: 10, Col: 44}, {Row: 10, Col: 46}} {
		s.SetWall(c, true)
	}
	res, _, err = s.Search(pathfind.Dijkstra)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, pathfind.StatusNoPath, res.Status())

	walls, err := s.Breach()
	require.NoError(t, err)
	assert.Len(t, walls, 1)

	_, _, err = s.Search(pathfind.Algorithm(7))
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}

// TestConcurrentUse hammers the session from several goroutines.
func TestConcurrentUse(t *testing.T) {
	s := newSession(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.SetWall(gridgraph.Coord{Row: i, Col: j}, j%2 == 0)
				_ = s.Snapshot()
			}
			_, _, _ = s.Search(pathfind.BFS)
		}(i)
	}
	wg.Wait()
	assert.NotEmpty(t, s.Snapshot().Walls)
}
