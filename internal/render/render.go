// Package render draws a grid and replay overlays as terminal text,
// with optional ANSI colors.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/replay"
)

// Cell glyphs in plain mode.
const (
	glyphOpen    = '.'
	glyphWall    = '#'
	glyphStart   = 'S'
	glyphEnd     = 'E'
	glyphVisited = 'o'
	glyphPath    = '*'
)

// ANSI sequences in color mode.
const (
	ansiReset   = "\x1b[0m"
	ansiWall    = "\x1b[40;90m"
	ansiStart   = "\x1b[42;30;1m"
	ansiEnd     = "\x1b[41;30;1m"
	ansiVisited = "\x1b[46;30m"
	ansiPath    = "\x1b[43;30;1m"
	ansiHome    = "\x1b[H"
	ansiClear   = "\x1b[2J"
)

type overlay uint8

const (
	none overlay = iota
	visited
	onPath
)

// Board is a drawable copy of a grid layout plus replay overlays.
type Board struct {
	grid    *gridgraph.Grid
	marks   []overlay
	color   bool
	status  string
	entries int
}

// NewBoard snapshots g for drawing. color selects ANSI output.
func NewBoard(g *gridgraph.Grid, color bool) *Board {
	return &Board{grid: g.Clone(), marks: make([]overlay, g.Len()), color: color}
}

// ColorEnabled resolves mode against whether f is a terminal. In auto
// mode a set NO_COLOR variable disables color.
func ColorEnabled(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	// https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Apply records one replay frame.
func (b *Board) Apply(f replay.Frame) {
	if f.Kind == replay.Status {
		b.status = f.Message
		return
	}
	if !b.grid.InBounds(f.Cell) {
		return
	}
	idx := b.grid.Index(f.Cell)
	switch f.Kind {
	case replay.Visit:
		if b.marks[idx] == none {
			b.marks[idx] = visited
			b.entries++
		}
	case replay.Path:
		b.marks[idx] = onPath
	}
}

// Reset drops all overlays and the status line.
func (b *Board) Reset() {
	for i := range b.marks {
		b.marks[i] = none
	}
	b.status = ""
	b.entries = 0
}

// Status returns the last status message applied.
func (b *Board) Status() string { return b.status }

// Draw writes the board followed by a status line.
func (b *Board) Draw(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < b.grid.Rows(); r++ {
		for c := 0; c < b.grid.Cols(); c++ {
			idx := r*b.grid.Cols() + c
			if err := b.cell(bw, idx); err != nil {
				return err
			}
		}
		if b.color {
			bw.WriteString(ansiReset)
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "visited: %d", b.entries)
	if b.status != "" {
		fmt.Fprintf(bw, "  status: %s", b.status)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// Redraw moves the cursor home before drawing, for in-place animation.
func (b *Board) Redraw(w io.Writer) error {
	if b.color {
		if _, err := io.WriteString(w, ansiHome); err != nil {
			return err
		}
	}
	return b.Draw(w)
}

// ClearScreen erases the terminal when color output is on.
func (b *Board) ClearScreen(w io.Writer) error {
	if !b.color {
		return nil
	}
	_, err := io.WriteString(w, ansiClear+ansiHome)
	return err
}

func (b *Board) cell(bw *bufio.Writer, idx int) error {
	n := b.grid.NodeAt(idx)
	glyph, style := byte(glyphOpen), ""
	switch {
	case n.IsStart:
		glyph, style = glyphStart, ansiStart
	case n.IsEnd:
		glyph, style = glyphEnd, ansiEnd
	case n.IsWall:
		glyph, style = glyphWall, ansiWall
	case b.marks[idx] == onPath:
		glyph, style = glyphPath, ansiPath
	case b.marks[idx] == visited:
		glyph, style = glyphVisited, ansiVisited
	}
	if !b.color {
		return bw.WriteByte(glyph)
	}
	if style == "" {
		_, err := bw.WriteString(ansiReset + string(glyph))
		return err
	}
	_, err := bw.WriteString(style + string(glyph))
	return err
}
