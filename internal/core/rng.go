package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Fill overwrites every cell of g, marking each alive with probability density.
func (r *RNG) Fill(g *Grid, density float64) {
	cells := g.Cells()
	for i := range cells {
		if r.r.Float64() < density {
			cells[i] = Alive
			continue
		}
		cells[i] = Dead
	}
}
