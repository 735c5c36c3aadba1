// Package session owns the interactive state around one grid: the grid
// itself, the pointer gesture mode (painting walls, erasing walls,
// dragging a marker) and a generation counter that lets a presentation
// layer abandon a replay when the grid is rebuilt.
//
// A Session is safe for concurrent use; every method takes its lock.
package session

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Mode is the current pointer gesture.
type Mode int

// Pointer modes.
const (
	Idle Mode = iota
	PaintWalls
	EraseWalls
	DragStart
	DragEnd
)

func (m Mode) String() string {
	switch m {
	case PaintWalls:
		return "paint"
	case EraseWalls:
		return "erase"
	case DragStart:
		return "drag-start"
	case DragEnd:
		return "drag-end"
	default:
		return "idle"
	}
}

// Factory builds the grid used after a clear.
type Factory func() (*gridgraph.Grid, error)

// Session holds one grid plus its interaction state.
type Session struct {
	mu         sync.Mutex
	grid       *gridgraph.Grid
	factory    Factory
	mode       Mode
	generation uint64
	searchOpts []pathfind.Option
	logger     log.FieldLogger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; the default is the logrus standard logger.
func WithLogger(l log.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSearchOptions forwards opts to every pathfind.Run.
func WithSearchOptions(opts ...pathfind.Option) Option {
	return func(s *Session) { s.searchOpts = append(s.searchOpts, opts...) }
}

// New builds the first grid through factory and returns the session.
func New(factory Factory, opts ...Option) (*Session, error) {
	if factory == nil {
		factory = func() (*gridgraph.Grid, error) { return gridgraph.Default(), nil }
	}
	s := &Session{factory: factory, logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	g, err := factory()
	if err != nil {
		return nil, errors.Wrap(err, "build grid")
	}
	s.grid = g
	return s, nil
}

// Mode returns the current pointer mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Generation increases on every Clear and Replace.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// PointerDown starts a gesture on c: pressing a marker begins dragging
// it; pressing any other cell paints if it was open and erases if it was
// a wall, and applies that to c immediately. Out-of-bounds presses are ignored.
func (s *Session) PointerDown(c gridgraph.Coord) Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.grid.Node(c)
	switch {
	case n == nil:
		return s.mode
	case n.IsStart:
		s.mode = DragStart
	case n.IsEnd:
		s.mode = DragEnd
	case n.IsWall:
		s.mode = EraseWalls
		s.grid.SetWall(c, false)
	default:
		s.mode = PaintWalls
		s.grid.SetWall(c, true)
	}
	s.logger.WithFields(log.Fields{"cell": c, "mode": s.mode}).Debug("pointer down")
	return s.mode
}

// PointerEnter continues the gesture as the pointer moves over c.
// Reports whether the grid changed.
func (s *Session) PointerEnter(c gridgraph.Coord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.mode {
	case PaintWalls:
		return s.grid.SetWall(c, true)
	case EraseWalls:
		return s.grid.SetWall(c, false)
	case DragStart:
		return s.grid.MoveStart(c)
	case DragEnd:
		return s.grid.MoveEnd(c)
	default:
		return false
	}
}

// PointerUp ends any gesture.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = Idle
}

// SetWall sets the wall flag at c; see gridgraph.Grid.SetWall.
func (s *Session) SetWall(c gridgraph.Coord, wall bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.SetWall(c, wall)
}

// MoveStart moves the start marker; see gridgraph.Grid.MoveStart.
func (s *Session) MoveStart(c gridgraph.Coord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.MoveStart(c)
}

// MoveEnd moves the end marker; see gridgraph.Grid.MoveEnd.
func (s *Session) MoveEnd(c gridgraph.Coord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.MoveEnd(c)
}

// Clear rebuilds the grid from the factory, dropping all walls and
// returning the markers to their defaults.
func (s *Session) Clear() error {
	g, err := s.factory()
	if err != nil {
		return errors.Wrap(err, "rebuild grid")
	}
	s.Replace(g)
	return nil
}

// Maze rebuilds the grid from the factory and carves a maze seeded with
// seed. Returns the wall count of the new layout.
func (s *Session) Maze(seed int64) (int, error) {
	g, err := s.factory()
	if err != nil {
		return 0, errors.Wrap(err, "rebuild grid")
	}
	walls := g.CarveMaze(rand.New(rand.NewSource(seed)))
	s.Replace(g)
	return walls, nil
}

// Replace installs g as the session grid, e.g. after loading a layout.
func (s *Session) Replace(g *gridgraph.Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = g
	s.mode = Idle
	s.generation++
	s.logger.WithField("generation", s.generation).Info("grid rebuilt")
}

// Search runs alg on the session grid. The returned generation identifies
// the grid the result belongs to.
func (s *Session) Search(alg pathfind.Algorithm) (*pathfind.Result, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := pathfind.Run(s.grid, alg, s.searchOpts...)
	if err != nil {
		return nil, s.generation, errors.Wrap(err, "search")
	}
	entry := s.logger.WithFields(log.Fields{
		"algorithm": alg.String(),
		"visited":   len(res.Visited),
		"path":      len(res.Path),
		"found":     res.Found,
	})
	if res.Found {
		entry.Info("search finished")
	} else {
		entry.Warn(pathfind.StatusNoPath)
	}
	return res, s.generation, nil
}

// Snapshot is a JSON-friendly copy of the grid layout.
type Snapshot struct {
	Rows       int               `json:"rows"`
	Cols       int               `json:"cols"`
	Start      gridgraph.Coord   `json:"start"`
	End        gridgraph.Coord   `json:"end"`
	Walls      []gridgraph.Coord `json:"walls"`
	Mode       string            `json:"mode"`
	Generation uint64            `json:"generation"`
}

// Snapshot returns the current layout.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	walls := s.grid.Walls()
	if walls == nil {
		walls = []gridgraph.Coord{}
	}
	return Snapshot{
		Rows:       s.grid.Rows(),
		Cols:       s.grid.Cols(),
		Start:      s.grid.Start(),
		End:        s.grid.End(),
		Walls:      walls,
		Mode:       s.mode.String(),
		Generation: s.generation,
	}
}

// Grid returns a deep copy of the session grid, traversal state included.
func (s *Session) Grid() *gridgraph.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Breach returns the fewest walls separating the markers.
func (s *Session) Breach() ([]gridgraph.Coord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.MinimalBreach()
}
