package core

import "math"

// Frame is an orthonormal shading frame with W aligned to the surface
// normal. Material sampling and evaluation happen in this local space
// (z-axis = shading normal).
type Frame struct {
	U, V, W Vec3
}

// NewFrame builds an orthonormal basis around the given (unit) normal
func NewFrame(normal Vec3) Frame {
	w := normal
	var nt Vec3
	if math.Abs(w.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}
	u := nt.Cross(w).Normalize()
	v := w.Cross(u)
	return Frame{U: u, V: v, W: w}
}

// ToLocal transforms a world-space direction into the frame
func (f Frame) ToLocal(d Vec3) Vec3 {
	return NewVec3(d.Dot(f.U), d.Dot(f.V), d.Dot(f.W))
}

// ToWorld transforms a frame-local direction back to world space
func (f Frame) ToWorld(d Vec3) Vec3 {
	return f.U.Multiply(d.X).Add(f.V.Multiply(d.Y)).Add(f.W.Multiply(d.Z))
}

// CosTheta returns the cosine of the angle between a local direction
// and the frame normal
func CosTheta(local Vec3) float64 {
	return local.Z
}
