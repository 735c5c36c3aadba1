// Package config loads gridpath settings from defaults, an optional YAML
// file, a .env file and GRIDPATH_* environment variables, in that order.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRIDPATH_"

// Config holds the application's configuration values.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Replay   ReplayConfig   `yaml:"replay"`
	Server   ServerConfig   `yaml:"server"`
	LogLevel string         `yaml:"log_level"` // logrus level name
	Color    ColorMode      `yaml:"color"`
	Search   SearchDefaults `yaml:"search"`
}

// GridConfig holds the dimensions and marker positions used by a clear.
type GridConfig struct {
	Rows  int             `yaml:"rows"`
	Cols  int             `yaml:"cols"`
	Start gridgraph.Coord `yaml:"start"`
	End   gridgraph.Coord `yaml:"end"`
}

// ReplayConfig holds the per-frame delays of the animation.
type ReplayConfig struct {
	VisitDelay Duration `yaml:"visit_delay"`
	PathDelay  Duration `yaml:"path_delay"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SearchDefaults holds the algorithm picked when none is given.
type SearchDefaults struct {
	Algorithm string `yaml:"algorithm"`
	EagerDFS  bool   `yaml:"eager_dfs"`
}

// ColorMode selects ANSI output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Duration is a time.Duration that reads "10ms"-style strings from YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", s)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration: a 20×50 grid with start
// (10,5) and end (10,45), 10ms per visited frame and 50ms per path frame.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:  gridgraph.DefaultRows,
			Cols:  gridgraph.DefaultCols,
			Start: gridgraph.DefaultStart,
			End:   gridgraph.DefaultEnd,
		},
		Replay: ReplayConfig{
			VisitDelay: Duration(10 * time.Millisecond),
			PathDelay:  Duration(50 * time.Millisecond),
		},
		Server:   ServerConfig{Addr: "localhost:8080"},
		LogLevel: "info",
		Color:    ColorAuto,
		Search:   SearchDefaults{Algorithm: "dijkstra"},
	}
}

// Load builds a Config from defaults, then path (skipped when empty), then
// a .env file in the working directory if present, then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, errors.Wrap(err, "load .env")
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides fields from GRIDPATH_* variables using lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"ROWS":      &c.Grid.Rows,
		"COLS":      &c.Grid.Cols,
		"START_ROW": &c.Grid.Start.Row,
		"START_COL": &c.Grid.Start.Col,
		"END_ROW":   &c.Grid.End.Row,
		"END_COL":   &c.Grid.End.Col,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "environment variable %s%s must be an integer", EnvPrefix, key)
		}
		*dst = n
	}

	durations := map[string]*Duration{
		"VISIT_DELAY": &c.Replay.VisitDelay,
		"PATH_DELAY":  &c.Replay.PathDelay,
	}
	for key, dst := range durations {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "environment variable %s%s must be a duration", EnvPrefix, key)
		}
		*dst = Duration(d)
	}

	if v, ok := lookup(EnvPrefix + "ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "COLOR"); ok {
		c.Color = ColorMode(strings.ToLower(v))
	}
	if v, ok := lookup(EnvPrefix + "ALGORITHM"); ok {
		c.Search.Algorithm = v
	}
	if v, ok := lookup(EnvPrefix + "EAGER_DFS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "environment variable %sEAGER_DFS must be a boolean", EnvPrefix)
		}
		c.Search.EagerDFS = b
	}
	return nil
}

// Validate checks that the grid section can be built and the remaining
// fields hold known values.
func (c Config) Validate() error {
	if _, err := c.NewGrid(); err != nil {
		return errors.Wrap(err, "invalid grid config")
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("invalid color mode %q", c.Color)
	}
	if c.Replay.VisitDelay < 0 || c.Replay.PathDelay < 0 {
		return errors.New("replay delays must not be negative")
	}
	return nil
}

// NewGrid builds a fresh grid from the grid section.
func (c Config) NewGrid() (*gridgraph.Grid, error) {
	return gridgraph.Build(c.Grid.Rows, c.Grid.Cols, c.Grid.Start, c.Grid.End)
}
