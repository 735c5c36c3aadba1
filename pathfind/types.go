package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name or value.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
	// ErrGridNil is returned when Run receives a nil grid.
	ErrGridNil = errors.New("pathfind: grid is nil")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// Dijkstra is stable extract-min over all nodes.
	Dijkstra Algorithm = iota
	// BFS is FIFO breadth-first search.
	BFS
	// DFS is LIFO depth-first search; its path is not a shortest path.
	DFS
)

// Algorithms lists every strategy in menu order.
var Algorithms = []Algorithm{Dijkstra, BFS, DFS}

var names = map[Algorithm]string{
	Dijkstra: "dijkstra",
	BFS:      "bfs",
	DFS:      "dfs",
}

// String returns the lower-case name used on the command line and in URLs.
func (a Algorithm) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ShortestPathGuaranteed reports whether the strategy's Previous chain is a
// shortest path, i.e. whether Run reconstructs one.
func (a Algorithm) ShortestPathGuaranteed() bool {
	return a == Dijkstra || a == BFS
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := names[a]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlgorithm converts a case-insensitive name ("dijkstra", "bfs",
// "dfs") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for a, n := range names {
		if n == want {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Status strings surfaced to the user.
const (
	StatusFound   = "Path Found"
	StatusNoPath  = "No Path Found!"
	StatusVisited = "Target Reached"
)

// Result is the output of Run.
type Result struct {
	Algorithm Algorithm         `json:"algorithm"`
	Start     gridgraph.Coord   `json:"start"`
	End       gridgraph.Coord   `json:"end"`
	Visited   []gridgraph.Coord `json:"visited"`
	// Path is start→end inclusive for BFS/Dijkstra when Found; empty otherwise.
	Path []gridgraph.Coord `json:"path"`
	// Found mirrors the end node's IsVisited flag after the run.
	Found bool `json:"found"`
}

// Status returns the message a presentation layer shows after the replay.
// DFS reaching the target has no shortest path to show.
func (r *Result) Status() string {
	switch {
	case !r.Found:
		return StatusNoPath
	case len(r.Path) == 0:
		return StatusVisited
	default:
		return StatusFound
	}
}
