package life

import (
	"errors"
	"testing"

	"colony/internal/core"
)

func TestSweepAgrees(t *testing.T) {
	seed, _ := core.NewGrid(40, 70)
	core.NewRNG(11).Fill(seed, 0.3)
	before := seed.Clone()

	results, err := Sweep(seed, 12, []int{1, 2, 4, 8})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i, res := range results {
		if res.Steps != 12 || res.Final == nil {
			t.Fatalf("result %d = %+v", i, res)
		}
	}
	if !seed.Equal(before) {
		t.Fatal("Sweep modified the initial grid")
	}
}

func TestSweepRejectsBadWorkers(t *testing.T) {
	seed, _ := core.NewGrid(5, 5)
	results, err := Sweep(seed, 1, []int{2, 0})
	if !errors.Is(err, ErrInvalidWorkers) {
		t.Fatalf("err = %v, want ErrInvalidWorkers", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d partial results, want 1", len(results))
	}
}

func TestPerStep(t *testing.T) {
	if (SweepResult{}).PerStep() != 0 {
		t.Fatal("zero steps should report zero per-step time")
	}
}
