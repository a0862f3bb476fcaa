// Package loader reads and writes the plain-text initial state format: one
// line per grid row, '.' for a dead cell and 'X' for a live one.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"colony/internal/core"
)

const (
	deadChar  = '.'
	aliveChar = 'X'
)

// ErrMalformedInitialState is wrapped by every parse failure.
var ErrMalformedInitialState = errors.New("malformed initial state")

// Parse reads exactly rows lines of exactly cols cells from r. Empty lines
// after the last row are ignored; anything else is an error and no grid is
// returned.
func Parse(r io.Reader, rows, cols int) (*core.Grid, error) {
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, cols+2), max(bufio.MaxScanTokenSize, cols+2))
	cells := g.Cells()
	row := 0
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if row == rows {
			if line == "" {
				continue
			}
			return nil, malformed("line %d: extra row beyond %d", row+1, rows)
		}
		if len(line) != cols {
			return nil, malformed("line %d: %d cells, want %d", row+1, len(line), cols)
		}
		for col := 0; col < cols; col++ {
			switch line[col] {
			case deadChar:
				cells[row*cols+col] = core.Dead
			case aliveChar:
				cells[row*cols+col] = core.Alive
			default:
				return nil, malformed("line %d col %d: invalid character %q", row+1, col+1, line[col])
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInitialState, err)
	}
	if row < rows {
		return nil, malformed("got %d rows, want %d", row, rows)
	}
	return g, nil
}

// Load parses the file at path.
func Load(path string, rows, cols int) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Encode writes g in the format Parse reads.
func Encode(w io.Writer, g *core.Grid) error {
	rows, cols := g.Dimensions()
	bw := bufio.NewWriter(w)
	line := make([]byte, cols+1)
	line[cols] = '\n'
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			line[x] = deadChar
			if g.Alive(y, x) {
				line[x] = aliveChar
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes g to path, replacing any existing file.
func Save(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInitialState, fmt.Sprintf(format, args...))
}
