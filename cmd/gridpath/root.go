package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/replay"
	"github.com/katalvlaran/gridpath/internal/server"
	"github.com/katalvlaran/gridpath/internal/session"
)

var exitFunc = os.Exit

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "gridpath",
		Short:             "Visualize Dijkstra, BFS and DFS on a walled grid.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup(input),
	}
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.layoutPath, "layout", "l", "", "read the grid from a layout file")
	rootCmd.PersistentFlags().Float64Var(&input.randomWalls, "random-walls", 0, "scatter walls with this density in [0,1]")
	rootCmd.PersistentFlags().BoolVar(&input.maze, "maze", false, "carve a random maze before searching")
	rootCmd.PersistentFlags().Int64Var(&input.seed, "seed", 0, "random seed for --maze and --random-walls (0 picks one)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search and draw the result",
		Args:  cobra.NoArgs,
		RunE:  newRunCommand(ctx, input),
	}
	runCmd.Flags().StringVarP(&input.algorithm, "algorithm", "a", "", "dijkstra, bfs or dfs")
	runCmd.Flags().BoolVar(&input.animate, "animate", false, "replay the search frame by frame")
	runCmd.Flags().BoolVar(&input.noColor, "no-color", false, "disable ANSI colors")
	runCmd.Flags().BoolVar(&input.breach, "breach", false, "when no path exists, list the fewest walls to remove")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the grid over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE:  newServeCommand(ctx, input),
	}
	serveCmd.Flags().StringVar(&input.addr, "addr", "", "listen address (default from config)")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the starting grid as layout text",
		Args:  cobra.NoArgs,
		RunE:  newLayoutCommand(input),
	}

	rootCmd.AddCommand(runCmd, serveCmd, layoutCmd)
	return rootCmd
}

func setup(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(input.configPath)
		if err != nil {
			return err
		}
		input.cfg = cfg

		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		if input.verbose {
			level = log.DebugLevel
		}
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	}
}

// newSession clears to the configured empty grid and starts from the
// --layout, --maze or --random-walls grid when one is asked for.
func newSession(input *Input) (*session.Session, error) {
	sess, err := session.New(input.cfg.NewGrid,
		session.WithLogger(log.StandardLogger()),
		session.WithSearchOptions(input.SearchOptions()...),
	)
	if err != nil {
		return nil, err
	}
	if !input.Generated() {
		return sess, nil
	}
	g, err := input.NewGrid()
	if err != nil {
		return nil, err
	}
	sess.Replace(g)
	return sess, nil
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		alg, err := input.Algorithm()
		if err != nil {
			return err
		}
		sess, err := newSession(input)
		if err != nil {
			return err
		}
		res, _, err := sess.Search(alg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		f, _ := out.(*os.File)
		board := render.NewBoard(sess.Grid(), render.ColorEnabled(input.ColorMode(), f))
		frames := replay.Timeline(res, input.Timing())

		if input.animate {
			if err := board.ClearScreen(out); err != nil {
				return err
			}
			err := replay.Play(ctx, frames, func(fr replay.Frame) {
				board.Apply(fr)
				if err := board.Redraw(out); err != nil {
					log.Debugf("redraw: %v", err)
				}
			})
			if err != nil {
				return err
			}
		} else {
			for _, fr := range frames {
				board.Apply(fr)
			}
			if err := board.Draw(out); err != nil {
				return err
			}
		}

		if input.breach && !res.Found {
			walls, err := sess.Breach()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "remove %d wall(s) to connect: %v\n", len(walls), walls)
		}
		return nil
	}
}

func newServeCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		sess, err := newSession(input)
		if err != nil {
			return err
		}
		logger := log.StandardLogger()
		h := server.NewHandler(sess, input.Timing(), logger)
		return server.Serve(ctx, input.Addr(), h, logger)
	}
}

func newLayoutCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		g, err := input.NewGrid()
		if err != nil {
			return err
		}
		return g.Format(cmd.OutOrStdout())
	}
}
