package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// Sphere is an exact signed-distance sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates an SDF sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// SignedDistance returns the exact distance to the sphere surface
func (s *Sphere) SignedDistance(p core.Vec3) float64 {
	return p.Subtract(s.Center).Length() - s.Radius
}

// Gradient returns the exact outward gradient
func (s *Sphere) Gradient(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center)
}

// Bounds returns the sphere's bounding box, slightly padded so the
// marcher can converge onto points exactly on the surface
func (s *Sphere) Bounds() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r)).Expand(1e-3)
}

// Material returns the sphere material
func (s *Sphere) Material() material.Material { return s.Mat }

// Plane is a signed-distance half-space with finite renderable extent
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
	Extent float64   // Half-size of the renderable region around Point
	Mat    material.Material
}

// NewPlane creates an SDF plane clipped to a finite extent
func NewPlane(point, normal core.Vec3, extent float64, mat material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Extent: extent, Mat: mat}
}

// SignedDistance returns the signed distance to the plane
func (p *Plane) SignedDistance(q core.Vec3) float64 {
	return q.Subtract(p.Point).Dot(p.Normal)
}

// Gradient returns the plane normal
func (p *Plane) Gradient(q core.Vec3) core.Vec3 { return p.Normal }

// Bounds returns a box covering the renderable extent
func (p *Plane) Bounds() core.AABB {
	e := core.NewVec3(p.Extent, p.Extent, p.Extent)
	return core.NewAABB(p.Point.Subtract(e), p.Point.Add(e))
}

// Material returns the plane material
func (p *Plane) Material() material.Material { return p.Mat }

// RoundedBox is a box with rounded edges
type RoundedBox struct {
	Center   core.Vec3
	HalfSize core.Vec3
	Round    float64
	Mat      material.Material
}

// NewRoundedBox creates an SDF box with the given corner radius
func NewRoundedBox(center, halfSize core.Vec3, round float64, mat material.Material) *RoundedBox {
	return &RoundedBox{Center: center, HalfSize: halfSize, Round: round, Mat: mat}
}

// SignedDistance returns the exact distance to the rounded box
func (b *RoundedBox) SignedDistance(p core.Vec3) float64 {
	q := p.Subtract(b.Center)
	d := core.NewVec3(
		math.Abs(q.X)-b.HalfSize.X+b.Round,
		math.Abs(q.Y)-b.HalfSize.Y+b.Round,
		math.Abs(q.Z)-b.HalfSize.Z+b.Round,
	)
	outside := core.NewVec3(math.Max(d.X, 0), math.Max(d.Y, 0), math.Max(d.Z, 0)).Length()
	inside := math.Min(math.Max(d.X, math.Max(d.Y, d.Z)), 0)
	return outside + inside - b.Round
}

// Bounds returns the box bounds padded by the rounding radius
func (b *RoundedBox) Bounds() core.AABB {
	return core.NewAABB(
		b.Center.Subtract(b.HalfSize),
		b.Center.Add(b.HalfSize),
	).Expand(1e-3)
}

// Material returns the box material
func (b *RoundedBox) Material() material.Material { return b.Mat }

// Translated shifts a child object in world space
type Translated struct {
	Object Object
	Offset core.Vec3
}

// NewTranslated wraps an object with a world-space offset
func NewTranslated(obj Object, offset core.Vec3) *Translated {
	return &Translated{Object: obj, Offset: offset}
}

// SignedDistance evaluates the child field in its own space
func (t *Translated) SignedDistance(p core.Vec3) float64 {
	return t.Object.SignedDistance(p.Subtract(t.Offset))
}

// Bounds shifts the child bounds
func (t *Translated) Bounds() core.AABB {
	b := t.Object.Bounds()
	return core.NewAABB(b.Min.Add(t.Offset), b.Max.Add(t.Offset))
}

// Material returns the child material
func (t *Translated) Material() material.Material { return t.Object.Material() }

// Tune forwards per-object overrides from the child
func (t *Translated) Tune(settings Settings) Settings {
	if tuner, ok := t.Object.(Tuner); ok {
		return tuner.Tune(settings)
	}
	return settings
}

// Scaled uniformly scales a child object about the origin of its local
// space. Uniform scaling preserves the distance property of the field.
type Scaled struct {
	Object Object
	Factor float64
}

// NewScaled wraps an object with a uniform scale factor
func NewScaled(obj Object, factor float64) *Scaled {
	return &Scaled{Object: obj, Factor: factor}
}

// SignedDistance evaluates the child field in local space and rescales
// the distance back to world units
func (s *Scaled) SignedDistance(p core.Vec3) float64 {
	return s.Object.SignedDistance(p.Divide(s.Factor)) * s.Factor
}

// Bounds scales the child bounds
func (s *Scaled) Bounds() core.AABB {
	b := s.Object.Bounds()
	return core.NewAABB(b.Min.Multiply(s.Factor), b.Max.Multiply(s.Factor))
}

// Material returns the child material
func (s *Scaled) Material() material.Material { return s.Object.Material() }

// Tune forwards per-object overrides from the child
func (s *Scaled) Tune(settings Settings) Settings {
	if tuner, ok := s.Object.(Tuner); ok {
		return tuner.Tune(settings)
	}
	return settings
}
