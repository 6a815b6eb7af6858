package core

import "math"

// Epsilon is the default minimum ray parameter, used to avoid
// self-intersection when spawning rays from a surface.
const Epsilon = 1e-4

// Ray represents a ray with an origin, a direction and a valid
// parametric interval [TMin, TMax). The interval narrows as closer
// hits are found during traversal.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray with the default interval [Epsilon, +Inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      Epsilon,
		TMax:      math.Inf(1),
	}
}

// NewRayInterval creates a ray with an explicit parametric interval
func NewRayInterval(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
