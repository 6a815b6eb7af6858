package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// Union combines child objects with the min of their fields. The
// optional material override takes precedence; otherwise the material
// of the child nearest to the query point is used.
type Union struct {
	Children []Object
	Override material.Material
}

// NewUnion creates a union of the given objects
func NewUnion(children ...Object) *Union {
	return &Union{Children: children}
}

// SignedDistance returns the minimum child distance
func (u *Union) SignedDistance(p core.Vec3) float64 {
	d := math.Inf(1)
	for _, child := range u.Children {
		d = math.Min(d, child.SignedDistance(p))
	}
	return d
}

// Bounds merges all child bounds
func (u *Union) Bounds() core.AABB {
	box := core.EmptyAABB()
	for _, child := range u.Children {
		box = box.Union(child.Bounds())
	}
	return box
}

// Material returns the override, or the material of the first child
func (u *Union) Material() material.Material {
	if u.Override != nil {
		return u.Override
	}
	if len(u.Children) > 0 {
		return u.Children[0].Material()
	}
	return nil
}

// Tune applies the most conservative child override
func (u *Union) Tune(settings Settings) Settings {
	return tuneChildren(u.Children, settings)
}

// Intersection combines child objects with the max of their fields.
// The result is only a lower bound on the true distance, which sphere
// tracing tolerates (steps are never too long).
type Intersection struct {
	Children []Object
	Override material.Material
}

// NewIntersection creates an intersection of the given objects
func NewIntersection(children ...Object) *Intersection {
	return &Intersection{Children: children}
}

// SignedDistance returns the maximum child distance
func (n *Intersection) SignedDistance(p core.Vec3) float64 {
	d := math.Inf(-1)
	for _, child := range n.Children {
		d = math.Max(d, child.SignedDistance(p))
	}
	return d
}

// Bounds returns the overlap of the child bounds (conservatively the
// smallest child box when they do not all overlap)
func (n *Intersection) Bounds() core.AABB {
	if len(n.Children) == 0 {
		return core.EmptyAABB()
	}
	box := n.Children[0].Bounds()
	for _, child := range n.Children[1:] {
		other := child.Bounds()
		box = core.NewAABB(
			core.NewVec3(
				math.Max(box.Min.X, other.Min.X),
				math.Max(box.Min.Y, other.Min.Y),
				math.Max(box.Min.Z, other.Min.Z),
			),
			core.NewVec3(
				math.Min(box.Max.X, other.Max.X),
				math.Min(box.Max.Y, other.Max.Y),
				math.Min(box.Max.Z, other.Max.Z),
			),
		)
	}
	return box
}

// Material returns the override, or the material of the first child
func (n *Intersection) Material() material.Material {
	if n.Override != nil {
		return n.Override
	}
	if len(n.Children) > 0 {
		return n.Children[0].Material()
	}
	return nil
}

// Tune applies the most conservative child override
func (n *Intersection) Tune(settings Settings) Settings {
	return tuneChildren(n.Children, settings)
}

// Difference subtracts B from A: max(a, -b)
type Difference struct {
	A, B     Object
	Override material.Material
}

// NewDifference creates the difference A minus B
func NewDifference(a, b Object) *Difference {
	return &Difference{A: a, B: b}
}

// SignedDistance returns max(dA, -dB)
func (d *Difference) SignedDistance(p core.Vec3) float64 {
	return math.Max(d.A.SignedDistance(p), -d.B.SignedDistance(p))
}

// Bounds returns the bounds of A: carving can only remove volume
func (d *Difference) Bounds() core.AABB {
	return d.A.Bounds()
}

// Material returns the override, or A's material
func (d *Difference) Material() material.Material {
	if d.Override != nil {
		return d.Override
	}
	return d.A.Material()
}

// Tune applies the most conservative child override
func (d *Difference) Tune(settings Settings) Settings {
	return tuneChildren([]Object{d.A, d.B}, settings)
}

// tuneChildren folds all child setting overrides, keeping the smallest
// step scale and travel cap so no child is overstepped
func tuneChildren(children []Object, settings Settings) Settings {
	for _, child := range children {
		if tuner, ok := child.(Tuner); ok {
			tuned := tuner.Tune(settings)
			settings.StepClamp = math.Min(settings.StepClamp, tuned.StepClamp)
			settings.MaxTravel = math.Min(settings.MaxTravel, tuned.MaxTravel)
			settings.MaxSteps = max(settings.MaxSteps, tuned.MaxSteps)
		}
	}
	return settings
}
