package sdf

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// Object is an implicit surface defined by a signed distance function.
// The zero level-set is the surface; negative values are inside.
type Object interface {
	// SignedDistance evaluates the field at a world-space point. For
	// sphere tracing to converge the field must not overestimate the
	// true distance; surfaces with a worse local Lipschitz bound should
	// also implement Tuner to shrink the step size.
	SignedDistance(p core.Vec3) float64

	// Bounds returns conservative world-space bounds of the surface
	Bounds() core.AABB

	// Material returns the surface material
	Material() material.Material
}

// GradientObject is implemented by objects with an analytic gradient.
// The raymarcher uses it instead of finite differences when available.
type GradientObject interface {
	Gradient(p core.Vec3) core.Vec3
}

// Tuner lets an object override the marching settings used for it,
// typically to shrink the step scale or cap the travel distance
type Tuner interface {
	Tune(settings Settings) Settings
}
