package core

import "fmt"

// State is the value of a single cell.
type State uint8

const (
	// Dead marks an empty cell.
	Dead State = 0
	// Alive marks an occupied cell.
	Alive State = 1
)

// Grid stores a fixed-size 2D grid of cell states in row-major order.
type Grid struct {
	rows, cols int
	data       []State
}

// NewGrid allocates a grid with every cell dead.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: make([]State, rows*cols)}, nil
}

// Dimensions returns the row and column counts.
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// Size reports the dimensions in display terms.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Cells exposes the backing slice. Display code must treat it as read-only.
func (g *Grid) Cells() []State { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state at (row, col).
func (g *Grid) Get(row, col int) (State, error) {
	if !g.Contains(row, col) {
		return Dead, g.outOfBounds(row, col)
	}
	return g.data[g.Index(row, col)], nil
}

// Set stores state at (row, col).
func (g *Grid) Set(row, col int, state State) error {
	if !g.Contains(row, col) {
		return g.outOfBounds(row, col)
	}
	if state != Dead && state != Alive {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidState, state, row, col)
	}
	g.data[g.Index(row, col)] = state
	return nil
}

// Alive is an unchecked read for callers already iterating inside the bounds.
func (g *Grid) Alive(row, col int) bool { return g.data[row*g.cols+col] == Alive }

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// SameShape reports whether both grids have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return g != nil && o != nil && g.rows == o.rows && g.cols == o.cols
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameShape(o) {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, data: make([]State, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
}
