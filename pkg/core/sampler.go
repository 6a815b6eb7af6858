package core

import "math/rand"

// Sampler provides random sampling for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2

	// Fork returns an independent sampler stream derived from the given
	// seed. Forked streams must be statistically independent of the
	// source so that image tiles can be rendered in any order.
	Fork(seed int64) Sampler

	// NumSamples returns the per-pixel sample budget carried by this sampler
	NumSamples() int
	SetNumSamples(n int)
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random     *rand.Rand
	numSamples int
}

// NewRandomSampler creates a seeded pseudo-random sampler
func NewRandomSampler(seed int64, numSamples int) *RandomSampler {
	return &RandomSampler{
		random:     rand.New(rand.NewSource(seed)),
		numSamples: numSamples,
	}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Fork returns a new sampler seeded independently of this one
func (r *RandomSampler) Fork(seed int64) Sampler {
	// Mix the seed so that adjacent tile indices do not produce
	// correlated rand.Source streams
	mixed := seed*6364136223846793005 + 1442695040888963407
	return &RandomSampler{
		random:     rand.New(rand.NewSource(mixed)),
		numSamples: r.numSamples,
	}
}

// NumSamples returns the per-pixel sample budget
func (r *RandomSampler) NumSamples() int {
	return r.numSamples
}

// SetNumSamples updates the per-pixel sample budget
func (r *RandomSampler) SetNumSamples(n int) {
	r.numSamples = n
}
