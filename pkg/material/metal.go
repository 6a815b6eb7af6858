package material

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// Metal represents a mirror-like material with optional fuzziness
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0 = perfect mirror, up to 1
}

// NewMetal creates a metal material
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Sample mirrors wo about the shading normal, perturbed by the fuzz
// radius. Returns false when the perturbed direction dips below the
// surface (treated as absorption).
func (m *Metal) Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sampler core.Sampler) (Sample, bool) {
	if wo.Z <= 0 {
		return Sample{}, false
	}
	// Mirror reflection in the local frame flips the tangential components
	wi := core.NewVec3(-wo.X, -wo.Y, wo.Z)

	if m.Fuzz > 0 {
		fuzzDir := core.SampleUniformSphere(sampler.Get2D()).Multiply(m.Fuzz)
		wi = wi.Add(fuzzDir).Normalize()
	}
	if wi.Z <= 0 {
		return Sample{}, false
	}
	return Sample{Wi: wi, Weight: m.Albedo}, true
}

// Evaluate returns zero: the mirror lobe is a delta distribution
func (m *Metal) Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// PDF returns zero: the mirror lobe is a delta distribution
func (m *Metal) PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64 {
	return 0
}

// HasDelta returns true: next-event estimation is skipped for mirrors
func (m *Metal) HasDelta() bool { return true }

// Emission returns zero
func (m *Metal) Emission(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// HasEmission returns false
func (m *Metal) HasEmission() bool { return false }
