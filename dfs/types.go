// Package dfs defines types and options for depth-first search traversal
// over a gridgraph.Grid, including a visit hook and eager stack dedupe.
package dfs

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to DFS.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrOutOfBounds indicates that start or end lies outside the grid.
	ErrOutOfBounds = errors.New("dfs: coordinate out of bounds")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, end, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a popped node is marked visited.
	// Returning an error aborts traversal with that error.
	OnVisit func(c gridgraph.Coord) error

	// EagerDedupe, if true, never pushes a node that is already waiting on
	// the stack. The default pushes every unvisited neighbor and filters at
	// pop time, which gives the classic visualizer visit order.
	EagerDedupe bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - No visit hook
//   - Lazy (pop-time) filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:     nil,
		EagerDedupe: false,
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithEagerDedupe returns an Option that skips pushing nodes already on the stack.
func WithEagerDedupe() Option {
	return func(o *DFSOptions) {
		o.EagerDedupe = true
	}
}
