package geometry

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Find the nearest intersection point within the valid range
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < ray.TMin || root > ray.TMax {
		root = (-halfB + sqrtD) / a
		if root < ray.TMin || root > ray.TMax {
			return nil, false
		}
	}

	hit := &HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
		Shape:    s,
	}

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)

	return hit, true
}

// sphereUV maps a unit direction to spherical texture coordinates
func sphereUV(n core.Vec3) core.Vec2 {
	theta := math.Acos(-n.Y)
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
