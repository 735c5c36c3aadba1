package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Layout cell characters.
const (
	CellOpen  = '.'
	CellWall  = '#'
	CellStart = 'S'
	CellEnd   = 'E'
)

// ParseLayout reads a text layout, one line per row, using CellOpen,
// CellWall, CellStart and CellEnd. Blank lines and lines starting with
// ';' are skipped; trailing whitespace is trimmed.
//
// Errors:
//   - ErrEmptyGrid if no rows are present.
//   - ErrNonRectangular if rows differ in length.
//   - ErrBadCell for any other character.
//   - ErrMarkerCount unless exactly one 'S' and one 'E' appear.
func ParseLayout(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	var starts, ends []Coord
	var walls []Coord
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			at := Coord{Row: r, Col: c}
			switch row[c] {
			case CellOpen:
			case CellWall:
				walls = append(walls, at)
			case CellStart:
				starts = append(starts, at)
			case CellEnd:
				ends = append(ends, at)
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrBadCell, row[c], at)
			}
		}
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, fmt.Errorf("%w: found %d start, %d end", ErrMarkerCount, len(starts), len(ends))
	}

	g, err := Build(len(rows), cols, starts[0], ends[0])
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		g.SetWall(w, true)
	}
	return g, nil
}

// ParseLayoutString is ParseLayout over an in-memory string.
func ParseLayoutString(s string) (*Grid, error) {
	return ParseLayout(strings.NewReader(s))
}

// Format writes the layout of g in the ParseLayout text form.
func (g *Grid) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if err := bw.WriteByte(g.nodes[r*g.cols+c].layoutCell()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String returns the layout text of g.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Format(&sb)
	return sb.String()
}

func (n *Node) layoutCell() byte {
	switch {
	case n.IsStart:
		return CellStart
	case n.IsEnd:
		return CellEnd
	case n.IsWall:
		return CellWall
	default:
		return CellOpen
	}
}
