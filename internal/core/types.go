package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract display surfaces drive: one Step per tick, and a
// read-only view of the current generation between steps.
type Sim interface {
	Name() string
	Size() Size
	Step() error
	Cells() []State
}
