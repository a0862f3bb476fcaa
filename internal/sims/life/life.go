package life

import (
	"time"

	"colony/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid. It owns both
// buffers and exchanges their roles after every completed step.
type Life struct {
	engine     *Engine
	bufs       [2]*core.Grid
	cur        int
	generation int
	lastStep   time.Duration
}

// New returns a Life whose current generation is initial. The scratch buffer
// is allocated with the same dimensions. Life takes ownership of initial.
func New(engine *Engine, initial *core.Grid) *Life {
	rows, cols := initial.Dimensions()
	scratch, _ := core.NewGrid(rows, cols)
	return &Life{engine: engine, bufs: [2]*core.Grid{initial, scratch}}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.Current().Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []core.State { return l.Current().Cells() }

// Current returns the buffer holding the latest generation. It must not be
// mutated and is only valid until the next Step.
func (l *Life) Current() *core.Grid { return l.bufs[l.cur] }

// Generation returns how many steps have completed.
func (l *Life) Generation() int { return l.generation }

// Step advances the simulation by one generation.
func (l *Life) Step() error {
	start := time.Now()
	if err := l.engine.Step(l.bufs[l.cur], l.bufs[1-l.cur]); err != nil {
		return err
	}
	l.cur = 1 - l.cur
	l.generation++
	l.lastStep = time.Since(start)
	return nil
}

// Stats reports the figures shown by display surfaces.
func (l *Life) Stats() core.Stats {
	return core.Stats{
		Generation: l.generation,
		Population: l.Current().Population(),
		Workers:    l.engine.Workers(),
		LastStep:   l.lastStep,
	}
}
