package geometry

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// HitRecord contains information about a ray-object intersection. It
// borrows the material and shape references from the scene; records are
// only valid while the scene is alive.
type HitRecord struct {
	T         float64           // Parameter t along the ray
	Point     core.Vec3         // Point of intersection
	Normal    core.Vec3         // Surface normal at intersection (unit length)
	UV        core.Vec2         // Texture coordinate
	FrontFace bool              // Whether the ray hit the front face
	Material  material.Material // Material of the hit object
	Shape     Shape             // The shape that was hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Shape is the interface for analytic primitives that can be hit by
// rays. Hit only reports intersections within the ray's [TMin, TMax)
// interval.
type Shape interface {
	Hit(ray core.Ray) (*HitRecord, bool)
	BoundingBox() core.AABB
}
