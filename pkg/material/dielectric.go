package material

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// Dielectric represents a clear refractive material such as glass or water
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given index of refraction
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Sample chooses between reflection and refraction using the Fresnel
// term. Directions are in the local frame; wo.Z < 0 means the ray is
// leaving the medium.
func (d *Dielectric) Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sampler core.Sampler) (Sample, bool) {
	cosTheta := wo.Z
	entering := cosTheta > 0

	etaRatio := 1.0 / d.RefractiveIndex
	n := core.NewVec3(0, 0, 1)
	if !entering {
		etaRatio = d.RefractiveIndex
		n = core.NewVec3(0, 0, -1)
		cosTheta = -cosTheta
	}

	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	cannotRefract := etaRatio*sinTheta > 1.0

	if cannotRefract || reflectance(cosTheta, etaRatio) > sampler.Get1D() {
		// Total internal reflection or Fresnel reflection
		wi := reflect(wo.Negate(), n)
		return Sample{Wi: wi, Weight: core.NewVec3(1, 1, 1)}, true
	}

	wi := refract(wo.Negate(), n, etaRatio)
	return Sample{Wi: wi, Weight: core.NewVec3(1, 1, 1)}, true
}

// reflect mirrors an incident direction v about normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract bends an incident direction v about normal n by Snell's law
func refract(v, n core.Vec3, etaRatio float64) core.Vec3 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	perpendicular := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	parallelLen := -math.Sqrt(math.Abs(1.0 - perpendicular.LengthSquared()))
	return perpendicular.Add(n.Multiply(parallelLen))
}

// reflectance uses Schlick's approximation for the Fresnel term
func reflectance(cosTheta, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// Evaluate returns zero: both lobes are delta distributions
func (d *Dielectric) Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// PDF returns zero: both lobes are delta distributions
func (d *Dielectric) PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64 {
	return 0
}

// HasDelta returns true
func (d *Dielectric) HasDelta() bool { return true }

// Emission returns zero
func (d *Dielectric) Emission(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// HasEmission returns false
func (d *Dielectric) HasEmission() bool { return false }
