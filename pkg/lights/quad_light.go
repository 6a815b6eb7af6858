package lights

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// QuadLight is a rectangular area light. It embeds the quad shape so
// the same object is also registered with the scene's BVH, letting
// BSDF-sampled paths find it.
type QuadLight struct {
	*geometry.Quad
	Radiance core.Vec3
	Area     float64
}

// NewQuadLight creates a quad light with constant radiance
func NewQuadLight(corner, u, v core.Vec3, radiance core.Vec3) *QuadLight {
	quad := geometry.NewQuad(corner, u, v, material.NewDiffuseLight(radiance))
	return &QuadLight{
		Quad:     quad,
		Radiance: radiance,
		Area:     u.Cross(v).Length(),
	}
}

// Sample picks a uniform point on the quad and converts the area pdf
// to solid angle at the shading point
func (ql *QuadLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	samplePoint := ql.Corner.Add(ql.U.Multiply(sample.X)).Add(ql.V.Multiply(sample.Y))

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-9 {
		return LightSample{Normal: ql.Normal}
	}
	direction := toLight.Multiply(1.0 / distance)

	// PDF_solid_angle = PDF_area * distance² / |cosθ| with θ measured
	// at the light surface
	cosTheta := math.Abs(ql.Normal.Dot(direction))
	if cosTheta < 1e-8 {
		// Edge-on, no contribution
		return LightSample{
			Point:     samplePoint,
			Normal:    ql.Normal,
			Direction: direction,
			Distance:  distance,
		}
	}
	solidAnglePDF := distance * distance / (cosTheta * ql.Area)

	// Only the front face emits
	var emission core.Vec3
	if direction.Dot(ql.Normal) < 0 {
		emission = ql.Radiance
	}

	return LightSample{
		Point:     samplePoint,
		Normal:    ql.Normal,
		Direction: direction,
		Distance:  distance,
		Emission:  emission,
		PDF:       solidAnglePDF,
	}
}

// PDF returns the solid-angle density for a direction from the shading
// point, zero when the direction misses the quad
func (ql *QuadLight) PDF(point core.Vec3, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	hit, ok := ql.Quad.Hit(ray)
	if !ok {
		return 0
	}

	cosTheta := math.Abs(ql.Normal.Dot(direction))
	if cosTheta < 1e-8 {
		return 0
	}
	return hit.T * hit.T / (cosTheta * ql.Area)
}
