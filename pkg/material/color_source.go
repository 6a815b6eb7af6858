package material

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// ColorSource provides a color at a surface location, either solid or
// procedurally textured
type ColorSource interface {
	Evaluate(uv core.Vec2, p core.Vec3) core.Vec3
}

// SolidColor is a constant color source
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a constant color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the constant color
func (s *SolidColor) Evaluate(uv core.Vec2, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two colors in a 3D checker pattern
type CheckerTexture struct {
	Odd, Even core.Vec3
	Scale     float64
}

// NewCheckerTexture creates a checker pattern with the given cell scale
func NewCheckerTexture(odd, even core.Vec3, scale float64) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Scale: scale}
}

// Evaluate returns the checker color at the given point
func (c *CheckerTexture) Evaluate(uv core.Vec2, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd
	}
	return c.Even
}
