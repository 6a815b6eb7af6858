package core

import "math"

// SampleCosineHemisphere generates a cosine-weighted direction in the
// local shading frame (z-axis up). PDF is cos(θ)/π.
func SampleCosineHemisphere(sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(math.Max(0, 1.0-z))

	return NewVec3(x, y, zCoord)
}

// CosineHemispherePDF returns the pdf of SampleCosineHemisphere for a
// local direction
func CosineHemispherePDF(local Vec3) float64 {
	if local.Z <= 0 {
		return 0
	}
	return local.Z / math.Pi
}

// SampleUniformHemisphere generates a uniform direction in the local
// shading frame (z-axis up). PDF is 1/(2π).
func SampleUniformHemisphere(sample Vec2) Vec3 {
	z := sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// UniformHemispherePDF returns the pdf of SampleUniformHemisphere
func UniformHemispherePDF() float64 {
	return 1.0 / (2.0 * math.Pi)
}

// SampleUniformSphere generates a uniform random direction on the unit sphere
func SampleUniformSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// UniformSpherePDF returns the pdf of SampleUniformSphere
func UniformSpherePDF() float64 {
	return 1.0 / (4.0 * math.Pi)
}

// SampleCone samples a direction uniformly within a cone around the
// given direction. Used for solid-angle sampling of sphere lights.
func SampleCone(direction Vec3, cosTotalWidth float64, sample Vec2) Vec3 {
	frame := NewFrame(direction)

	cosTheta := 1.0 - sample.X*(1.0-cosTotalWidth)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	local := NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return frame.ToWorld(local)
}

// SamplePointInUnitDisk generates a random point in a unit disk using
// concentric mapping. Avoids rejection sampling by mapping a square
// uniformly to a disk.
func SamplePointInUnitDisk(sample Vec2) Vec2 {
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec2(0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}
