package material

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource
}

// NewLambertian creates a lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material with a texture
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Sample draws a cosine-weighted continuation direction. The cosine and
// pdf cancel against the BRDF, so the weight is just the albedo.
func (l *Lambertian) Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sampler core.Sampler) (Sample, bool) {
	if wo.Z <= 0 {
		return Sample{}, false
	}
	wi := core.SampleCosineHemisphere(sampler.Get2D())
	if wi.Z <= 0 {
		return Sample{}, false
	}
	return Sample{
		Wi:     wi,
		Weight: l.Albedo.Evaluate(uv, p),
	}, true
}

// Evaluate returns the BRDF times cosine: albedo/π * cos(θi)
func (l *Lambertian) Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	if wo.Z <= 0 || wi.Z <= 0 {
		return core.Vec3{}
	}
	return l.Albedo.Evaluate(uv, p).Multiply(wi.Z / math.Pi)
}

// PDF returns the cosine-weighted hemisphere pdf: cos(θi)/π
func (l *Lambertian) PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64 {
	if wo.Z <= 0 || wi.Z <= 0 {
		return 0
	}
	return wi.Z / math.Pi
}

// HasDelta returns false: diffuse scattering is not specular
func (l *Lambertian) HasDelta() bool { return false }

// Emission returns zero: lambertian surfaces do not emit
func (l *Lambertian) Emission(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// HasEmission returns false
func (l *Lambertian) HasEmission() bool { return false }
