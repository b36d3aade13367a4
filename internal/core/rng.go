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

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillSoup marks each cell alive with the given density, replacing the
// previous contents.
func FillSoup(r *RNG, g *Grid, density float64) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = r.Chance(density)
	}
}
