package replay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

func line(t *testing.T, alg pathfind.Algorithm) *pathfind.Result {
	t.Helper()
	g, err := gridgraph.Build(1, 4, gridgraph.Coord{}, gridgraph.Coord{Col: 3})
	require.NoError(t, err)
	res, err := pathfind.Run(g, alg)
	require.NoError(t, err)
	return res
}

func TestTimeline_Found(t *testing.T) {
	res := line(t, pathfind.BFS)
	frames := Timeline(res, DefaultTiming)

	// visited: (0,0) (0,1) (0,2) (0,3); path of 4 cells; markers skipped
	want := []Frame{
		{At: 10 * time.Millisecond, Kind: Visit, Cell: gridgraph.Coord{Col: 1}},
		{At: 20 * time.Millisecond, Kind: Visit, Cell: gridgraph.Coord{Col: 2}},
		{At: 90 * time.Millisecond, Kind: Path, Cell: gridgraph.Coord{Col: 1}},
		{At: 140 * time.Millisecond, Kind: Path, Cell: gridgraph.Coord{Col: 2}},
		{At: 190 * time.Millisecond, Kind: Status, Cell: gridgraph.Coord{Col: 3}, Message: pathfind.StatusFound},
	}
	assert.Equal(t, want, frames)
	assert.Equal(t, 190*time.Millisecond, Duration(frames))
}

func TestTimeline_NoPath(t *testing.T) {
	g, err := gridgraph.ParseLayoutString("S#E\n")
	require.NoError(t, err)
	res, err := pathfind.Run(g, pathfind.Dijkstra)
	require.NoError(t, err)

	frames := Timeline(res, DefaultTiming)
	require.Len(t, frames, 1)
	assert.Equal(t, Status, frames[0].Kind)
	assert.Equal(t, pathfind.StatusNoPath, frames[0].Message)
	assert.Equal(t, 10*time.Millisecond, frames[0].At)
}

func TestTimeline_DFS(t *testing.T) {
	frames := Timeline(line(t, pathfind.DFS), DefaultTiming)
	last := frames[len(frames)-1]
	assert.Equal(t, pathfind.StatusVisited, last.Message)
	assert.Equal(t, 40*time.Millisecond, last.At)
	for _, f := range frames {
		assert.NotEqual(t, Path, f.Kind)
	}
}

func TestPlay(t *testing.T) {
	frames := Timeline(line(t, pathfind.BFS), Timing{})
	var got []Frame
	require.NoError(t, Play(context.Background(), frames, func(f Frame) { got = append(got, f) }))
	assert.Equal(t, frames, got)
}

func TestPlay_Cancelled(t *testing.T) {
	frames := []Frame{
		{At: 0, Kind: Visit},
		{At: time.Hour, Kind: Visit},
	}
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	sink := func(Frame) {
		n++
		cancel()
	}
	err := Play(ctx, frames, sink)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, n)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "visit", Visit.String())
	assert.Equal(t, "path", Path.String())
	assert.Equal(t, "status", Status.String())
}
