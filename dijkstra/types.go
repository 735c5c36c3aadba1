// Package dijkstra defines errors and configuration options for
// Dijkstra's algorithm on a gridgraph.Grid with uniform edge weight 1.
//
// Options:
//
//	- WithOnVisit: hook invoked for every finalized node; an error aborts.
//
// Errors (sentinel):
//
//	- ErrNilGrid      if the provided grid pointer is nil.
//	- ErrOutOfBounds  if start or end is outside the grid.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates that start or end does not lie in the grid.
	ErrOutOfBounds = errors.New("dijkstra: coordinate out of bounds")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// OnVisit is called after a node is marked visited and appended to the result.
type Options struct {
	OnVisit func(c gridgraph.Coord) error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no hook installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
