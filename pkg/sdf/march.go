package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// Settings controls the sphere-tracing loop
type Settings struct {
	HitEpsilon    float64 // Distance at which the surface counts as hit
	NormalEpsilon float64 // Finite-difference offset for normals
	StepClamp     float64 // Fraction of the SDF value to advance (< 1 avoids overshoot)
	MinStep       float64 // Minimum absolute advance, guarantees progress
	MaxSteps      int     // Step budget per march
	MaxTravel     float64 // Global cap on travel distance
}

// DefaultSettings returns marching settings that work for well-behaved fields
func DefaultSettings() Settings {
	return Settings{
		HitEpsilon:    1e-5,
		NormalEpsilon: 1e-4,
		StepClamp:     0.9,
		MinStep:       1e-6,
		MaxSteps:      256,
		MaxTravel:     1e4,
	}
}

// Status reports how a march ended
type Status int

const (
	// Miss: the ray left the travel interval without touching the surface
	Miss Status = iota
	// Hit: the ray converged onto the surface
	Hit
	// MaxStepsExceeded: the step budget ran out (or the field returned
	// a non-finite value)
	MaxStepsExceeded
	// EscapedBounds: the ray never entered the object's bounds
	EscapedBounds
)

// SurfaceHit carries the converged surface point of a successful march
type SurfaceHit struct {
	T        float64
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Material
	Steps    int
}

// Result is the outcome of one march: a status plus, for Hit, the surface point
type Result struct {
	Status Status
	Hit    SurfaceHit
}

// March sphere-traces the ray against one object. The travel interval
// is the ray's interval intersected with the object bounds and the
// settings' MaxTravel cap. Tally may be nil.
func March(ray core.Ray, obj Object, settings Settings, tally *core.Tally) Result {
	if tuner, ok := obj.(Tuner); ok {
		settings = tuner.Tune(settings)
	}
	if tally != nil {
		tally.SDFMarches++
	}

	// Clip the ray against the object's bounds to find the travel interval
	entry, ok := obj.Bounds().Hit(ray)
	if !ok {
		return Result{Status: EscapedBounds}
	}
	t := math.Max(entry, ray.TMin)
	exit := math.Min(ray.TMax, t+settings.MaxTravel)
	if t > exit {
		return Result{Status: EscapedBounds}
	}

	for steps := 1; steps <= settings.MaxSteps; steps++ {
		if tally != nil {
			tally.SDFSteps++
		}

		point := ray.At(t)
		distance := obj.SignedDistance(point)
		if math.IsNaN(distance) || math.IsInf(distance, 0) {
			return Result{Status: MaxStepsExceeded}
		}

		if math.Abs(distance) <= settings.HitEpsilon {
			return Result{
				Status: Hit,
				Hit: SurfaceHit{
					T:        t,
					Point:    point,
					Normal:   surfaceNormal(obj, point, settings.NormalEpsilon),
					Material: obj.Material(),
					Steps:    steps,
				},
			}
		}

		// Advance by a clamped fraction of the field value, never less
		// than the minimum step
		step := math.Max(math.Abs(distance)*settings.StepClamp, settings.MinStep)
		t += step
		if t > exit {
			return Result{Status: Miss}
		}
	}

	return Result{Status: MaxStepsExceeded}
}

// surfaceNormal estimates the outward unit normal, preferring an
// analytic gradient when the object provides one. Degenerate gradients
// fall back to the up vector.
func surfaceNormal(obj Object, p core.Vec3, eps float64) core.Vec3 {
	var gradient core.Vec3
	if g, ok := obj.(GradientObject); ok {
		gradient = g.Gradient(p)
	} else {
		gradient = core.NewVec3(
			obj.SignedDistance(core.NewVec3(p.X+eps, p.Y, p.Z))-obj.SignedDistance(core.NewVec3(p.X-eps, p.Y, p.Z)),
			obj.SignedDistance(core.NewVec3(p.X, p.Y+eps, p.Z))-obj.SignedDistance(core.NewVec3(p.X, p.Y-eps, p.Z)),
			obj.SignedDistance(core.NewVec3(p.X, p.Y, p.Z+eps))-obj.SignedDistance(core.NewVec3(p.X, p.Y, p.Z-eps)),
		)
	}

	if !gradient.IsFinite() || gradient.LengthSquared() < 1e-24 {
		return core.NewVec3(0, 1, 0)
	}
	return gradient.Normalize()
}
