package scene

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/sdf"
)

// Fallback for SDF objects registered without a material
var defaultMaterial = material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))

// SurfaceHit is the merged result of surface selection: exactly one of
// Analytic or Implicit is set
type SurfaceHit struct {
	Analytic *geometry.HitRecord
	Implicit *sdf.SurfaceHit
}

// T returns the hit distance along the ray
func (h SurfaceHit) T() float64 {
	if h.Analytic != nil {
		return h.Analytic.T
	}
	return h.Implicit.T
}

// IsImplicit reports whether the hit came from the raymarcher
func (h SurfaceHit) IsImplicit() bool {
	return h.Analytic == nil
}

// SurfaceContext normalizes both hit kinds into one shape-agnostic
// record for shading
type SurfaceContext struct {
	Point    core.Vec3
	Normal   core.Vec3
	UV       core.Vec2
	Material material.Material

	implicit    bool
	spawnOffset float64
}

// NewSurfaceContext builds a shading context from a merged hit. The
// spawn offset is the marcher's normal epsilon; analytic intersection
// points are exact and need no bias.
//
// The context carries the geometric OUTWARD normal: materials tell the
// two sides of a surface apart by the sign of the local wo.Z, so the
// shading frame must not use the face-flipped hit normal.
func NewSurfaceContext(hit SurfaceHit, spawnOffset float64) SurfaceContext {
	if hit.Analytic != nil {
		normal := hit.Analytic.Normal
		if !hit.Analytic.FrontFace {
			normal = normal.Negate()
		}
		return SurfaceContext{
			Point:    hit.Analytic.Point,
			Normal:   normal,
			UV:       hit.Analytic.UV,
			Material: hit.Analytic.Material,
		}
	}
	return SurfaceContext{
		Point:       hit.Implicit.Point,
		Normal:      hit.Implicit.Normal,
		Material:    hit.Implicit.Material,
		implicit:    true,
		spawnOffset: spawnOffset,
	}
}

// SpawnRay builds a continuation ray leaving the surface in the given
// direction. SDF-origin hits are nudged along the normal to avoid
// immediate self-re-intersection by marching error.
func (c SurfaceContext) SpawnRay(direction core.Vec3) core.Ray {
	origin := c.Point
	if c.implicit {
		offset := c.Normal.Multiply(c.spawnOffset)
		if direction.Dot(c.Normal) < 0 {
			offset = offset.Negate()
		}
		origin = origin.Add(offset)
	}
	return core.NewRay(origin, direction)
}
