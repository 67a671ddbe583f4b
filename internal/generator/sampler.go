package generator

import (
	"math/rand/v2"
)

// Sampler draws one of n symbols uniformly at random.
//
// IntN must return a value in [0, n) and may panic when n <= 0,
// matching the contract of math/rand/v2.
type Sampler interface {
	IntN(n int) int
}

// globalSampler uses the automatically seeded top-level math/rand/v2
// functions. It is safe for concurrent use.
type globalSampler struct{}

func (globalSampler) IntN(n int) int {
	return rand.IntN(n)
}

// NewSampler returns a non-deterministic Sampler.
func NewSampler() Sampler {
	return globalSampler{}
}

// NewSeededSampler returns a deterministic Sampler backed by a PCG source.
// Equal seeds produce equal sequences across runs and platforms.
func NewSeededSampler(seed uint64) Sampler {
	// The second PCG word is derived from the seed so a single uint64 is
	// enough to pin the whole stream.
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
