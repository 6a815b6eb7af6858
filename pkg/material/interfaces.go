package material

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// Sample is the result of importance-sampling a material. Wi is the
// continuation direction in the local shading frame (z-axis = normal);
// Weight is the BSDF value times cosine divided by the sampling pdf.
type Sample struct {
	Wi     core.Vec3
	Weight core.Vec3
}

// Material describes how a surface scatters and emits light. All
// directions are expressed in the local shading frame with the z-axis
// along the shading normal, pointing away from the surface.
type Material interface {
	// Sample draws a continuation direction for the given outgoing
	// direction. Returns false when the path is absorbed.
	Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sampler core.Sampler) (Sample, bool)

	// Evaluate returns the BSDF value for a direction pair, including
	// the cosine term. Zero for delta materials.
	Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3

	// PDF returns the sampling density for a direction pair. Zero for
	// delta materials.
	PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64

	// HasDelta reports whether the material is perfectly specular.
	// Delta materials are skipped by next-event estimation.
	HasDelta() bool

	// Emission returns emitted radiance toward wo (zero for
	// non-emissive materials)
	Emission(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3

	// HasEmission reports whether Emission can be non-zero
	HasEmission() bool
}
