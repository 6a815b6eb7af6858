package media

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// Homogeneous is a medium with constant absorption and scattering
// coefficients. Distances are sampled against the channel-averaged
// extinction; the per-channel correction lands in the sample weight.
type Homogeneous struct {
	SigmaA core.Vec3 // Absorption coefficient
	SigmaS core.Vec3 // Scattering coefficient
	sigmaT core.Vec3 // Extinction = SigmaA + SigmaS
	mean   float64   // Channel-averaged extinction used for sampling
	phase  PhaseFunction
}

// NewHomogeneous creates a homogeneous medium with the given
// coefficients and phase function
func NewHomogeneous(sigmaA, sigmaS core.Vec3, phase PhaseFunction) *Homogeneous {
	sigmaT := sigmaA.Add(sigmaS)
	return &Homogeneous{
		SigmaA: sigmaA,
		SigmaS: sigmaS,
		sigmaT: sigmaT,
		mean:   (sigmaT.X + sigmaT.Y + sigmaT.Z) / 3.0,
		phase:  phase,
	}
}

// Transmittance applies Beer-Lambert attenuation per channel
func (h *Homogeneous) Transmittance(distance float64) core.Vec3 {
	return core.NewVec3(
		math.Exp(-h.sigmaT.X*distance),
		math.Exp(-h.sigmaT.Y*distance),
		math.Exp(-h.sigmaT.Z*distance),
	)
}

// SampleDistance samples an exponential free-flight distance. An
// interaction before maxDistance is a scattering event weighted by
// sigmaS * Tr / pdf; otherwise the ray passes through weighted by
// Tr / P(pass).
func (h *Homogeneous) SampleDistance(maxDistance float64, sampler core.Sampler) DistanceSample {
	if h.mean <= 0 {
		return DistanceSample{
			Scattered:     false,
			Weight:        core.NewVec3(1, 1, 1),
			Transmittance: core.NewVec3(1, 1, 1),
			PDF:           1,
		}
	}

	t := -math.Log(1.0-sampler.Get1D()) / h.mean
	if t < maxDistance {
		tr := h.Transmittance(t)
		pdf := h.mean * math.Exp(-h.mean*t)
		return DistanceSample{
			Scattered:     true,
			T:             t,
			Weight:        h.SigmaS.MultiplyVec(tr).Divide(pdf),
			Transmittance: tr,
			PDF:           pdf,
		}
	}

	tr := h.Transmittance(maxDistance)
	pdf := math.Exp(-h.mean * maxDistance) // P(flight past maxDistance)
	return DistanceSample{
		Scattered:     false,
		Weight:        tr.Divide(pdf),
		Transmittance: tr,
		PDF:           pdf,
	}
}

// Phase returns the medium's phase function
func (h *Homogeneous) Phase() PhaseFunction { return h.phase }
