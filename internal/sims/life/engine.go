package life

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"colony/internal/core"
)

// ErrInvalidWorkers is returned when an engine is configured with fewer than
// one worker.
var ErrInvalidWorkers = errors.New("worker count must be at least 1")

// Config controls how an Engine partitions a step.
type Config struct {
	// Workers is the number of parallel units rows are split into per step.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Workers: 8}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// Engine derives generation N+1 from generation N under Conway's rules on a
// bounded grid.
type Engine struct {
	workers int
}

// NewEngine constructs an Engine from cfg.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{workers: cfg.Workers}, nil
}

// Workers returns the configured worker count.
func (e *Engine) Workers() int { return e.workers }

// Step writes the generation following current into scratch. Every scratch
// cell is written. current is only read. Step returns after all workers have
// finished; a nil error means the caller should exchange the two buffers'
// roles.
func (e *Engine) Step(current, scratch *core.Grid) error {
	if !current.SameShape(scratch) {
		return mismatch(current, scratch)
	}
	rows, _ := current.Dimensions()

	var eg errgroup.Group
	for _, b := range partition(rows, e.workers) {
		eg.Go(func() error {
			stepRows(current, scratch, b.start, b.end)
			return nil
		})
	}
	return eg.Wait()
}

// NeighborCount returns how many of the up to eight cells around (row, col)
// are alive. Cells beyond the edge do not exist and are not counted.
func NeighborCount(g *core.Grid, row, col int) int {
	rows, cols := g.Dimensions()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := row + dy
		if ny < 0 || ny >= rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := col + dx
			if nx < 0 || nx >= cols {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(ny, nx) {
				n++
			}
		}
	}
	return n
}

// nextState applies the survival (2 or 3) and birth (3) rule.
func nextState(alive bool, neighbors int) core.State {
	if neighbors == 3 || (alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}

// stepRows computes rows [start, end) of scratch.
func stepRows(current, scratch *core.Grid, start, end int) {
	_, cols := current.Dimensions()
	dst := scratch.Cells()
	for y := start; y < end; y++ {
		for x := 0; x < cols; x++ {
			dst[y*cols+x] = nextState(current.Alive(y, x), NeighborCount(current, y, x))
		}
	}
}

type rowBlock struct {
	start, end int
}

// partition splits rows into at most workers contiguous, disjoint blocks that
// together cover [0, rows).
func partition(rows, workers int) []rowBlock {
	if rows <= 0 {
		return nil
	}
	if workers > rows {
		workers = rows
	}
	per := (rows + workers - 1) / workers
	blocks := make([]rowBlock, 0, workers)
	for start := 0; start < rows; start += per {
		blocks = append(blocks, rowBlock{start: start, end: min(start+per, rows)})
	}
	return blocks
}

func mismatch(a, b *core.Grid) error {
	return fmt.Errorf("%w: current %s, scratch %s", core.ErrDimensionMismatch, describe(a), describe(b))
}

func describe(g *core.Grid) string {
	if g == nil {
		return "<nil>"
	}
	rows, cols := g.Dimensions()
	return fmt.Sprintf("%dx%d", rows, cols)
}
