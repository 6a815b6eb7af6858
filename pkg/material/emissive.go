package material

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
)

// DiffuseLight is a pure emitter: it radiates uniformly from its front
// face and absorbs all incident light
type DiffuseLight struct {
	Emit ColorSource
}

// NewDiffuseLight creates an emissive material with constant radiance
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// Sample returns false: pure emitters terminate paths
func (d *DiffuseLight) Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sampler core.Sampler) (Sample, bool) {
	return Sample{}, false
}

// Evaluate returns zero: emitters do not scatter
func (d *DiffuseLight) Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// PDF returns zero
func (d *DiffuseLight) PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64 {
	return 0
}

// HasDelta returns false
func (d *DiffuseLight) HasDelta() bool { return false }

// Emission returns the emitted radiance for front-face directions
func (d *DiffuseLight) Emission(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	if wo.Z <= 0 {
		return core.Vec3{}
	}
	return d.Emit.Evaluate(uv, p)
}

// HasEmission returns true
func (d *DiffuseLight) HasEmission() bool { return true }
