package media

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// PhaseFunction describes the angular scattering distribution inside a
// participating medium, the volumetric analogue of a BSDF. Directions
// are world-space; phase functions are normalized so Evaluate == PDF.
type PhaseFunction interface {
	// Sample draws a scattered direction given the incoming direction wo
	// (pointing back along the ray)
	Sample(wo core.Vec3, sample core.Vec2) core.Vec3

	// PDF returns the density of sampling wi given wo
	PDF(wo, wi core.Vec3) float64
}

// DistanceSample is the outcome of free-flight sampling along a ray
// segment. Scattered reports whether an interaction happened before
// MaxDistance; Weight already folds the transmittance and pdf so the
// caller just multiplies it into the path throughput.
type DistanceSample struct {
	Scattered     bool
	T             float64   // Interaction distance (valid when Scattered)
	Weight        core.Vec3 // Throughput multiplier for this event
	Transmittance core.Vec3 // Transmittance up to T or MaxDistance
	PDF           float64
}

// Medium is a participating medium along a ray segment
type Medium interface {
	// Transmittance returns the fraction of light surviving the given distance
	Transmittance(distance float64) core.Vec3

	// SampleDistance samples a free-flight distance within [0, maxDistance]
	SampleDistance(maxDistance float64, sampler core.Sampler) DistanceSample

	// Phase returns the medium's phase function
	Phase() PhaseFunction
}
