package core

import (
	"errors"
	"testing"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	cases := []struct{ rows, cols int }{
		{0, 10}, {10, 0}, {-1, 5}, {5, -3}, {0, 0},
	}
	for _, tc := range cases {
		if _, err := NewGrid(tc.rows, tc.cols); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrInvalidDimensions", tc.rows, tc.cols, err)
		}
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	rows, cols := g.Dimensions()
	if rows != 3 || cols != 4 {
		t.Fatalf("Dimensions() = %d,%d, want 3,4", rows, cols)
	}
	if got := len(g.Cells()); got != 12 {
		t.Fatalf("len(Cells()) = %d, want 12", got)
	}
	if g.Population() != 0 {
		t.Fatalf("new grid has %d live cells", g.Population())
	}
	if s := g.Size(); s.W != 4 || s.H != 3 {
		t.Fatalf("Size() = %+v, want W=4 H=3", s)
	}
}

func TestGetSetBounds(t *testing.T) {
	g, _ := NewGrid(2, 3)
	if err := g.Set(1, 2, Alive); err != nil {
		t.Fatalf("Set in bounds: %v", err)
	}
	st, err := g.Get(1, 2)
	if err != nil || st != Alive {
		t.Fatalf("Get(1,2) = %v,%v want Alive,nil", st, err)
	}
	if g.Cells()[g.Index(1, 2)] != Alive {
		t.Fatal("Set did not write row-major slot")
	}

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if _, err := g.Get(rc[0], rc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get%v err = %v, want ErrOutOfBounds", rc, err)
		}
		if err := g.Set(rc[0], rc[1], Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set%v err = %v, want ErrOutOfBounds", rc, err)
		}
	}
	if g.Population() != 1 {
		t.Fatalf("out of bounds Set mutated the grid: population %d", g.Population())
	}
}

func TestSetRejectsUnknownState(t *testing.T) {
	g, _ := NewGrid(1, 1)
	if err := g.Set(0, 0, State(7)); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Set(State(7)) err = %v, want ErrInvalidState", err)
	}
	if st, _ := g.Get(0, 0); st != Dead {
		t.Fatalf("cell = %v after rejected Set, want Dead", st)
	}
}

func TestCloneEqualClear(t *testing.T) {
	g, _ := NewGrid(3, 3)
	_ = g.Set(0, 0, Alive)
	_ = g.Set(2, 1, Alive)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from source")
	}
	_ = c.Set(1, 1, Alive)
	if g.Equal(c) {
		t.Fatal("clone shares storage with source")
	}

	other, _ := NewGrid(3, 4)
	if g.Equal(other) || g.SameShape(other) {
		t.Fatal("grids with different shapes compared equal")
	}

	g.Clear()
	if g.Population() != 0 {
		t.Fatalf("Clear left %d live cells", g.Population())
	}
}

func TestRNGFillDeterministic(t *testing.T) {
	a, _ := NewGrid(20, 30)
	b, _ := NewGrid(20, 30)
	NewRNG(7).Fill(a, 0.3)
	NewRNG(7).Fill(b, 0.3)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	if a.Population() == 0 || a.Population() == 600 {
		t.Fatalf("density 0.3 produced population %d", a.Population())
	}

	NewRNG(7).Fill(b, 0)
	if b.Population() != 0 {
		t.Fatalf("density 0 left %d live cells", b.Population())
	}
}
