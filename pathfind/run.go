package pathfind

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Options configures Run.
type Options struct {
	// OnVisit is forwarded to the strategy's visit hook.
	OnVisit func(c gridgraph.Coord) error
	// EagerDFS enables dfs.WithEagerDedupe.
	EagerDFS bool
}

// Option is a functional option for Run.
type Option func(*Options)

// WithOnVisit forwards fn to the selected strategy.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithEagerDFS makes DFS skip pushing nodes already on its stack.
func WithEagerDFS() Option {
	return func(o *Options) { o.EagerDFS = true }
}

// Run resets g for a search, runs alg from g.Start() to g.End() and
// reports the visited sequence, the reconstructed path and whether the end
// was reached. Walls and markers are left untouched; node traversal state
// holds the strategy's output until the next Run or ResetForSearch.
func Run(g *gridgraph.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	start, end := g.Start(), g.End()
	g.ResetForSearch()

	var (
		visited []gridgraph.Coord
		err     error
	)
	switch alg {
	case Dijkstra:
		visited, err = dijkstra.Dijkstra(g, start, end, dijkstra.WithOnVisit(o.OnVisit))
	case BFS:
		visited, err = bfs.BFS(g, start, end, bfs.WithOnVisit(o.OnVisit))
	case DFS:
		dopts := []dfs.Option{dfs.WithOnVisit(o.OnVisit)}
		if o.EagerDFS {
			dopts = append(dopts, dfs.WithEagerDedupe())
		}
		visited, err = dfs.DFS(g, start, end, dopts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if err != nil {
		return nil, fmt.Errorf("pathfind: %s: %w", alg, err)
	}

	res := &Result{
		Algorithm: alg,
		Start:     start,
		End:       end,
		Visited:   visited,
		Path:      []gridgraph.Coord{},
		Found:     g.Node(end).IsVisited,
	}
	if res.Found && alg.ShortestPathGuaranteed() {
		res.Path = g.ShortestPath(end)
	}
	return res, nil
}
