package core

// SamplingConfig contains the shared integrator configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of paths traced per pixel
	MaxDepth        int // Maximum path length in bounces

	// Russian roulette starts after this many bounces; survival
	// probability is the max throughput channel clamped to
	// [RussianRouletteMin, RussianRouletteMax]
	RussianRouletteMinBounces int
	RussianRouletteMin        float64
	RussianRouletteMax        float64
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel:           64,
		MaxDepth:                  16,
		RussianRouletteMinBounces: 3,
		RussianRouletteMin:        0.05,
		RussianRouletteMax:        0.95,
	}
}
