package media

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// HenyeyGreenstein is the standard single-parameter phase function.
// G in (-1, 1) controls anisotropy: negative is back-scattering,
// zero is isotropic, positive is forward-scattering.
type HenyeyGreenstein struct {
	G float64
}

// NewHenyeyGreenstein creates a Henyey-Greenstein phase function
func NewHenyeyGreenstein(g float64) *HenyeyGreenstein {
	return &HenyeyGreenstein{G: g}
}

// NewIsotropic creates a uniform phase function (g = 0)
func NewIsotropic() *HenyeyGreenstein {
	return &HenyeyGreenstein{G: 0}
}

// Sample draws a scattered direction. wo points back along the
// incoming ray; the sampled angle is measured from -wo (the direction
// of propagation).
func (hg *HenyeyGreenstein) Sample(wo core.Vec3, sample core.Vec2) core.Vec3 {
	var cosTheta float64
	if math.Abs(hg.G) < 1e-3 {
		cosTheta = 1.0 - 2.0*sample.X
	} else {
		sqr := (1.0 - hg.G*hg.G) / (1.0 - hg.G + 2.0*hg.G*sample.X)
		cosTheta = (1.0 + hg.G*hg.G - sqr*sqr) / (2.0 * hg.G)
	}

	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	frame := core.NewFrame(wo.Negate())
	local := core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return frame.ToWorld(local)
}

// PDF evaluates the Henyey-Greenstein density for the angle between
// the propagation direction and wi
func (hg *HenyeyGreenstein) PDF(wo, wi core.Vec3) float64 {
	cosTheta := wo.Negate().Dot(wi)
	denom := 1.0 + hg.G*hg.G + 2.0*hg.G*cosTheta
	if denom <= 0 {
		return 0
	}
	return (1.0 - hg.G*hg.G) / (4.0 * math.Pi * denom * math.Sqrt(denom))
}
