package geometry

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// Quad represents a rectangular surface defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Normal vector (computed from U × V)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: ax + by + cz = d
	W        core.Vec3         // Cached cross product for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	normal := u.Cross(v).Normalize()

	// Plane equation constant: d = normal · corner
	d := normal.Dot(corner)

	// w vector for barycentric coordinate calculations:
	// w = normal / (normal · (u × v))
	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        d,
		W:        w,
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the quad plane: no contribution
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < ray.TMin || t > ray.TMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	// Barycentric coordinates within the quad
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
		Shape:    q,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the bounding box of the quad, padded slightly so
// axis-aligned quads do not produce a degenerate zero-thickness box
func (q *Quad) BoundingBox() core.AABB {
	c0 := q.Corner
	c1 := q.Corner.Add(q.U)
	c2 := q.Corner.Add(q.V)
	c3 := q.Corner.Add(q.U).Add(q.V)
	return core.NewAABBFromPoints(c0, c1, c2, c3).Expand(1e-4)
}
