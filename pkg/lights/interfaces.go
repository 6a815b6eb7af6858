package lights

import "github.com/tiwylli/PBR-Engine-sub000/pkg/core"

// Light is an emitter that can be sampled for next-event estimation
type Light interface {
	// Sample picks a point on the light toward the given shading point.
	// The returned PDF is with respect to solid angle at the shading
	// point; a zero PDF means no contribution (edge-on or degenerate).
	Sample(point core.Vec3, sample core.Vec2) LightSample

	// PDF returns the solid-angle density of sampling the given
	// direction from the shading point, zero when the direction misses
	// the light
	PDF(point core.Vec3, direction core.Vec3) float64
}

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point     core.Vec3 // Point on the light source
	Normal    core.Vec3 // Normal at the light sample point
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to the light point
	Emission  core.Vec3 // Emitted radiance toward the shading point
	PDF       float64   // Solid-angle probability density of this sample
}
