package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid.
	ErrOutOfBounds = errors.New("cell coordinate out of bounds")
	// ErrInvalidState is returned when a value other than Dead or Alive is stored.
	ErrInvalidState = errors.New("invalid cell state")
	// ErrDimensionMismatch is returned when two grids that must share a shape do not.
	ErrDimensionMismatch = errors.New("grid dimension mismatch")
)
