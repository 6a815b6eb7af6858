package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// Mandelbulb is the classic power-8 3D fractal, rendered through its
// distance estimator. The estimate is only approximate, so the object
// tunes the marcher to a small step scale.
type Mandelbulb struct {
	Center     core.Vec3
	Scale      float64
	Power      float64
	Iterations int
	Mat        material.Material
}

// NewMandelbulb creates a power-8 Mandelbulb of the given world radius
func NewMandelbulb(center core.Vec3, scale float64, mat material.Material) *Mandelbulb {
	return &Mandelbulb{
		Center:     center,
		Scale:      scale,
		Power:      8,
		Iterations: 12,
		Mat:        mat,
	}
}

// SignedDistance evaluates the Mandelbulb distance estimator
// DE = 0.5 * log(r) * r / dr
func (m *Mandelbulb) SignedDistance(p core.Vec3) float64 {
	// The canonical bulb lives in a radius-1.2 ball; work in local space
	local := p.Subtract(m.Center).Divide(m.Scale)

	z := local
	dr := 1.0
	r := 0.0

	for i := 0; i < m.Iterations; i++ {
		r = z.Length()
		if r > 2.0 {
			break
		}

		// Convert to spherical coordinates
		theta := math.Acos(z.Z / r)
		phi := math.Atan2(z.Y, z.X)
		dr = math.Pow(r, m.Power-1)*m.Power*dr + 1.0

		// Scale and rotate the point
		zr := math.Pow(r, m.Power)
		theta *= m.Power
		phi *= m.Power

		z = core.NewVec3(
			math.Sin(theta)*math.Cos(phi),
			math.Sin(theta)*math.Sin(phi),
			math.Cos(theta),
		).Multiply(zr).Add(local)
	}

	if r == 0 {
		return 0
	}
	return 0.5 * math.Log(r) * r / dr * m.Scale
}

// Bounds covers the canonical radius-1.2 ball scaled to world space
func (m *Mandelbulb) Bounds() core.AABB {
	r := 1.2 * m.Scale
	e := core.NewVec3(r, r, r)
	return core.NewAABB(m.Center.Subtract(e), m.Center.Add(e))
}

// Material returns the fractal material
func (m *Mandelbulb) Material() material.Material { return m.Mat }

// Tune shrinks the step scale to respect the estimator's error
func (m *Mandelbulb) Tune(settings Settings) Settings {
	settings.StepClamp = math.Min(settings.StepClamp, 0.25)
	settings.MaxSteps = max(settings.MaxSteps, 512)
	return settings
}
