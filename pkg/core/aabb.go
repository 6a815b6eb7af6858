package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the empty box (+Inf/-Inf sentinels), the identity
// element for Union
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box.Min.X = math.Min(box.Min.X, point.X)
		box.Min.Y = math.Min(box.Min.Y, point.Y)
		box.Min.Z = math.Min(box.Min.Z, point.Z)

		box.Max.X = math.Max(box.Max.X, point.X)
		box.Max.Y = math.Max(box.Max.Y, point.Y)
		box.Max.Z = math.Max(box.Max.Z, point.Z)
	}
	return box
}

// Hit tests the ray against the box using the slab method.
// Returns the entry distance and true when the ray's [TMin, TMax)
// interval overlaps the box. The entry distance may be negative when
// the ray origin is inside the box.
func (aabb AABB) Hit(ray Ray) (float64, bool) {
	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)
		slabMin := aabb.Min.Axis(axis)
		slabMax := aabb.Max.Axis(axis)

		// Ray parallel to this slab: inside or a clean miss
		if math.Abs(direction) < 1e-12 {
			if origin < slabMin || origin > slabMax {
				return 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (slabMin - origin) * invDirection
		t2 := (slabMax - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tNear = math.Max(tNear, t1)
		tFar = math.Min(tFar, t2)
		if tNear > tFar {
			return 0, false
		}
	}

	// Reject intervals entirely outside the ray's valid range
	if tFar < ray.TMin || tNear > ray.TMax {
		return 0, false
	}
	return tNear, true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Diagonal returns the extent of the AABB along each axis
func (aabb AABB) Diagonal() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB, the cost proxy
// used by the SAH split strategy
func (aabb AABB) SurfaceArea() float64 {
	d := aabb.Diagonal()
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2.0 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	d := aabb.Diagonal()
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
