// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("bfs: coordinate out of bounds")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds callbacks to customize BFS execution.
type BFSOptions struct {
	// OnEnqueue is called after a node is marked visited and enqueued.
	OnEnqueue func(c gridgraph.Coord)

	// OnVisit is called when a node is dequeued and appended to the
	// visited sequence. If it returns an error, BFS aborts and propagates it.
	OnVisit func(c gridgraph.Coord) error
}

// DefaultOptions returns a BFSOptions with no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnEnqueue: func(gridgraph.Coord) {},
		OnVisit:   func(gridgraph.Coord) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Coord)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
