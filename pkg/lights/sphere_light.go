package lights

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

// SphereLight is a spherical area light. Like QuadLight it embeds the
// shape so the scene's BVH can hit it directly.
type SphereLight struct {
	*geometry.Sphere
	Radiance core.Vec3
}

// NewSphereLight creates a spherical light with constant radiance
func NewSphereLight(center core.Vec3, radius float64, radiance core.Vec3) *SphereLight {
	return &SphereLight{
		Sphere:   geometry.NewSphere(center, radius, material.NewDiffuseLight(radiance)),
		Radiance: radiance,
	}
}

// Sample draws a direction toward the sphere. Points outside the
// sphere sample the subtended cone uniformly; points inside fall back
// to uniform area sampling.
func (sl *SphereLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()

	if distanceToCenter <= sl.Radius*1.0001 {
		return sl.sampleUniform(point, sample)
	}

	// Uniform cone sampling toward the visible cap
	w := toCenter.Normalize()
	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))

	direction := core.SampleCone(w, cosThetaMax, sample)

	ray := core.NewRay(point, direction)
	hit, ok := sl.Sphere.Hit(ray)
	if !ok {
		// Cone edge grazing the silhouette can numerically miss
		return LightSample{Direction: direction}
	}

	// Uniform cone pdf over solid angle
	pdf := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	return LightSample{
		Point:     hit.Point,
		Normal:    hit.Normal,
		Direction: direction,
		Distance:  hit.T,
		Emission:  sl.Radiance,
		PDF:       pdf,
	}
}

// sampleUniform samples the whole sphere area, for shading points
// inside the light
func (sl *SphereLight) sampleUniform(point core.Vec3, sample core.Vec2) LightSample {
	localDir := core.SampleUniformSphere(sample)
	samplePoint := sl.Center.Add(localDir.Multiply(sl.Radius))

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	if distance < 1e-9 {
		return LightSample{Normal: localDir}
	}
	direction := toLight.Multiply(1.0 / distance)

	// Convert the uniform area pdf to solid angle
	areaPDF := 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)
	cosTheta := math.Abs(localDir.Dot(direction))
	if cosTheta < 1e-8 {
		return LightSample{
			Point: samplePoint, Normal: localDir,
			Direction: direction, Distance: distance,
		}
	}

	return LightSample{
		Point:     samplePoint,
		Normal:    localDir,
		Direction: direction,
		Distance:  distance,
		Emission:  sl.Radiance,
		PDF:       areaPDF * distance * distance / cosTheta,
	}
}

// PDF returns the cone pdf when the direction hits the sphere from
// outside, or the area-derived pdf from inside
func (sl *SphereLight) PDF(point core.Vec3, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	hit, ok := sl.Sphere.Hit(ray)
	if !ok {
		return 0
	}

	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()
	if distanceToCenter <= sl.Radius*1.0001 {
		areaPDF := 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)
		cosTheta := math.Abs(hit.Normal.Dot(direction))
		if cosTheta < 1e-8 {
			return 0
		}
		return areaPDF * hit.T * hit.T / cosTheta
	}

	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))
	return 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
}
