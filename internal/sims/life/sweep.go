package life

import (
	"errors"
	"fmt"
	"time"

	"colony/internal/core"
)

// SweepResult captures one run of a worker-count sweep.
type SweepResult struct {
	// Workers is the engine worker count used for the run.
	Workers int
	// Steps is the number of generations computed.
	Steps int
	// Elapsed is the wall time spent inside Step.
	Elapsed time.Duration
	// Final is the grid after the last generation.
	Final *core.Grid
}

// PerStep returns the mean time per generation.
func (r SweepResult) PerStep() time.Duration {
	if r.Steps <= 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Steps)
}

// Run advances a copy of initial by steps generations with the given worker
// count. initial is not modified.
func Run(initial *core.Grid, steps, workers int) (SweepResult, error) {
	engine, err := NewEngine(Config{Workers: workers})
	if err != nil {
		return SweepResult{}, err
	}
	sim := New(engine, initial.Clone())
	start := time.Now()
	for i := 0; i < steps; i++ {
		if err := sim.Step(); err != nil {
			return SweepResult{}, err
		}
	}
	return SweepResult{
		Workers: workers,
		Steps:   steps,
		Elapsed: time.Since(start),
		Final:   sim.Current(),
	}, nil
}

// ErrDiverged is returned by Sweep when two worker counts disagree on the
// final generation.
var ErrDiverged = errors.New("worker counts produced different generations")

// Sweep runs initial for steps generations once per worker count, in order,
// and checks every run ends on the same grid. The results are returned even
// when they diverge.
func Sweep(initial *core.Grid, steps int, workers []int) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(workers))
	for _, w := range workers {
		res, err := Run(initial, steps, w)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	if len(results) < 2 {
		return results, nil
	}
	for _, res := range results[1:] {
		if !res.Final.Equal(results[0].Final) {
			return results, fmt.Errorf("%w: workers=%d vs workers=%d", ErrDiverged, results[0].Workers, res.Workers)
		}
	}
	return results, nil
}
