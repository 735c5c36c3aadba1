package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrMarkerOverlap indicates start and end were placed on the same cell.
	ErrMarkerOverlap = errors.New("gridgraph: start and end must differ")
	// ErrMarkerCount indicates a layout without exactly one start and one end.
	ErrMarkerCount = errors.New("gridgraph: layout needs exactly one start and one end")
	// ErrBadCell indicates an unknown character in a layout.
	ErrBadCell = errors.New("gridgraph: unknown layout cell")
	// ErrNotVisited indicates the path target was never reached.
	ErrNotVisited = errors.New("gridgraph: target node was not visited")
	// ErrNoPath indicates no breach can connect start and end.
	ErrNoPath = errors.New("gridgraph: no path between start and end")
)
