package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/replay"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Input contains the flags of every command plus the loaded config.
type Input struct {
	configPath  string
	verbose     bool
	algorithm   string
	layoutPath  string
	randomWalls float64
	maze        bool
	seed        int64
	animate     bool
	noColor     bool
	breach      bool
	addr        string

	cfg config.Config
}

// Algorithm resolves --algorithm, falling back to the configured default.
func (i *Input) Algorithm() (pathfind.Algorithm, error) {
	name := i.algorithm
	if name == "" {
		name = i.cfg.Search.Algorithm
	}
	return pathfind.ParseAlgorithm(name)
}

// Timing returns the replay delays from the config.
func (i *Input) Timing() replay.Timing {
	return replay.Timing{
		VisitDelay: i.cfg.Replay.VisitDelay.Std(),
		PathDelay:  i.cfg.Replay.PathDelay.Std(),
	}
}

// ColorMode applies --no-color over the configured mode.
func (i *Input) ColorMode() config.ColorMode {
	if i.noColor {
		return config.ColorNever
	}
	return i.cfg.Color
}

// SearchOptions returns the pathfind options implied by the config.
func (i *Input) SearchOptions() []pathfind.Option {
	if i.cfg.Search.EagerDFS {
		return []pathfind.Option{pathfind.WithEagerDFS()}
	}
	return nil
}

// Addr resolves --addr, falling back to the configured address.
func (i *Input) Addr() string {
	if i.addr != "" {
		return i.addr
	}
	return i.cfg.Server.Addr
}

// NewGrid builds the starting grid: the --layout file when set, the
// configured dimensions otherwise, then carves a maze and scatters random
// walls if asked.
func (i *Input) NewGrid() (*gridgraph.Grid, error) {
	var (
		g   *gridgraph.Grid
		err error
	)
	if i.layoutPath != "" {
		g, err = readLayout(i.layoutPath)
	} else {
		g, err = i.cfg.NewGrid()
	}
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(i.Seed()))
	if i.maze {
		g.CarveMaze(rng)
	}
	if i.randomWalls > 0 {
		g.ScatterWalls(rng, i.randomWalls)
	}
	return g, nil
}

// Seed returns --seed, or a time-based seed when it is zero.
func (i *Input) Seed() int64 {
	if i.seed != 0 {
		return i.seed
	}
	return time.Now().UnixNano()
}

// Generated reports whether the starting grid differs from the configured empty one.
func (i *Input) Generated() bool {
	return i.layoutPath != "" || i.maze || i.randomWalls > 0
}

func readLayout(path string) (*gridgraph.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open layout")
	}
	defer f.Close()
	g, err := gridgraph.ParseLayout(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse layout %s", path)
	}
	return g, nil
}
