package geometry

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material
	normal     core.Vec3 // Cached geometric normal
	bbox       core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	t.normal = edge1.Cross(edge2).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2).Expand(1e-6)

	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray) (*HitRecord, bool) {
	const epsilon = 1e-9

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Determinant near zero: ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	root := f * edge2.Dot(q)
	if root < ray.TMin || root > ray.TMax {
		return nil, false
	}

	hit := &HitRecord{
		T:        root,
		Point:    ray.At(root),
		UV:       core.NewVec2(u, v),
		Material: t.Material,
		Shape:    t,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}

// BoundingBox returns the cached bounding box
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
