package core

import (
	"math/rand/v2"

	"zgrid/pkg/zarray"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float32 returns a random value in [0, 1).
func (r *RNG) Float32() float32 { return r.r.Float32() }

// FillBinary sets every logical cell of g to 0 or 1.
func FillBinary(r *rand.Rand, g *zarray.Grid2D[uint8]) {
	g.Transform(func(_, _ int, _ uint8) uint8 {
		return uint8(r.IntN(2))
	})
}

// FillOneIn sets a cell to on with probability 1/n and to off otherwise.
func FillOneIn(r *rand.Rand, g *zarray.Grid2D[uint8], n int, on, off uint8) {
	if n <= 0 {
		n = 1
	}
	g.Transform(func(_, _ int, _ uint8) uint8 {
		if r.IntN(n) == 0 {
			return on
		}
		return off
	})
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
