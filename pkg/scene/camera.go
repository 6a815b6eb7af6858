package scene

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// Camera generates primary rays through a virtual image plane
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a perspective camera. vfov is the vertical field of
// view in degrees; aspect is width/height.
func NewCamera(lookFrom, lookAt, up core.Vec3, vfov, aspect float64) *Camera {
	theta := vfov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeft := lookFrom.
		Subtract(u.Multiply(halfWidth)).
		Subtract(v.Multiply(halfHeight)).
		Subtract(w)

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeft,
		horizontal:      u.Multiply(2 * halfWidth),
		vertical:        v.Multiply(2 * halfHeight),
	}
}

// GetRay generates a ray through image-plane coordinates (s, t) in
// [0, 1]²; t = 0 is the bottom of the image
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}
