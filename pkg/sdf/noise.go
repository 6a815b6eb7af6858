package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// NoisySphere is a sphere displaced inward by fractal value noise. The
// displacement worsens the field's Lipschitz bound, so the object tunes
// the marcher to take smaller steps.
type NoisySphere struct {
	Center    core.Vec3
	Radius    float64
	Amplitude float64
	Frequency float64
	Mat       material.Material
}

// NewNoisySphere creates a noise-perturbed sphere
func NewNoisySphere(center core.Vec3, radius, amplitude, frequency float64, mat material.Material) *NoisySphere {
	return &NoisySphere{
		Center:    center,
		Radius:    radius,
		Amplitude: amplitude,
		Frequency: frequency,
		Mat:       mat,
	}
}

// SignedDistance returns the sphere distance displaced by fbm noise
func (n *NoisySphere) SignedDistance(p core.Vec3) float64 {
	local := p.Subtract(n.Center)
	displacement := -fbm(local.Multiply(n.Frequency).Multiply(3.4)) * n.Amplitude
	return local.Length() - (n.Radius + displacement)
}

// Bounds covers the sphere plus the maximum outward displacement
func (n *NoisySphere) Bounds() core.AABB {
	r := n.Radius + n.Amplitude
	e := core.NewVec3(r, r, r)
	return core.NewAABB(n.Center.Subtract(e), n.Center.Add(e)).Expand(1e-3)
}

// Material returns the sphere material
func (n *NoisySphere) Material() material.Material { return n.Mat }

// Tune shrinks the step scale: the displaced field is no longer a
// true distance bound
func (n *NoisySphere) Tune(settings Settings) Settings {
	settings.StepClamp = math.Min(settings.StepClamp, 0.35)
	settings.MaxSteps = max(settings.MaxSteps, 512)
	return settings
}

// hash maps a scalar to a repeatable pseudo-random value in [0, 1)
func hash(n float64) float64 {
	x := math.Sin(n) * 43758.5453
	return x - math.Floor(x)
}

// valueNoise is trilinear-interpolated lattice noise
func valueNoise(x core.Vec3) float64 {
	p := core.NewVec3(math.Floor(x.X), math.Floor(x.Y), math.Floor(x.Z))
	f := x.Subtract(p)
	f = f.Multiply(f.Dot(core.NewVec3(3, 3, 3).Subtract(f.Multiply(2))))
	n := p.Dot(core.NewVec3(1, 57, 113))

	return lerp(
		lerp(
			lerp(hash(n+0), hash(n+1), f.X),
			lerp(hash(n+57), hash(n+58), f.X), f.Y),
		lerp(
			lerp(hash(n+113), hash(n+114), f.X),
			lerp(hash(n+170), hash(n+171), f.X), f.Y),
		f.Z)
}

// rotations decorrelate the octaves of fbm
var (
	fbmRotX = core.NewVec3(0.00, 0.80, 0.60)
	fbmRotY = core.NewVec3(-0.80, 0.36, -0.48)
	fbmRotZ = core.NewVec3(-0.60, -0.48, 0.64)
)

// fbm sums four octaves of value noise
func fbm(x core.Vec3) float64 {
	p := core.NewVec3(x.Dot(fbmRotX), x.Dot(fbmRotY), x.Dot(fbmRotZ))

	f := 0.0
	f += 0.5000 * valueNoise(p)
	p = p.Multiply(2.32)
	f += 0.2500 * valueNoise(p)
	p = p.Multiply(3.03)
	f += 0.1250 * valueNoise(p)
	p = p.Multiply(2.61)
	f += 0.0625 * valueNoise(p)
	return f / 0.9375
}

// lerp interpolates with t clamped to [0, 1]
func lerp(v0, v1, t float64) float64 {
	return v0 + (v1-v0)*math.Max(0.0, math.Min(1.0, t))
}
