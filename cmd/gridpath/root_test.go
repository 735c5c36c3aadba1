package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := createRootCommand(context.Background(), &Input{}, "")
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeLayout(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, gridgraph.DefaultRows)
	assert.Equal(t, byte('S'), lines[10][5])
	assert.Equal(t, byte('E'), lines[10][45])
}

func TestLayoutCommand_SeededWalls(t *testing.T) {
	a, err := execute(t, "layout", "--random-walls", "0.3", "--seed", "42")
	require.NoError(t, err)
	b, err := execute(t, "layout", "--random-walls", "0.3", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "#")
}

func TestRunCommand_Found(t *testing.T) {
	path := writeLayout(t, "S..\n.#.\n..E\n")
	out, err := execute(t, "run", "--layout", path, "--algorithm", "dijkstra", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "status: "+pathfind.StatusFound)
	assert.Contains(t, out, "*")
}

func TestRunCommand_NoPathBreach(t *testing.T) {
	path := writeLayout(t, "S#E\n")
	out, err := execute(t, "run", "--layout", path, "-a", "bfs", "--no-color", "--breach")
	require.NoError(t, err)
	assert.Contains(t, out, "S#E\n")
	assert.Contains(t, out, "status: "+pathfind.StatusNoPath)
	assert.Contains(t, out, "remove 1 wall(s) to connect: [(0,1)]")
}

func TestRunCommand_UnknownAlgorithm(t *testing.T) {
	_, err := execute(t, "run", "--algorithm", "astar")
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}

func TestRunCommand_MissingLayout(t *testing.T) {
	_, err := execute(t, "run", "--layout", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// testMain runs Execute with args and reports the exit code.
func testMain(args []string) (exitCode int) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	defer func() { exitFunc = os.Exit }()

	exitFunc = func(code int) {
		exitCode = code
	}
	os.Args = args

	Execute(context.Background(), "")
	return exitCode
}

func TestMainHelp(t *testing.T) {
	assert.Equal(t, 0, testMain([]string{"gridpath", "--help"}))
}

func TestMainUnknownCommand(t *testing.T) {
	assert.Equal(t, 1, testMain([]string{"gridpath", "teleport"}))
}
