package lights

import "github.com/tiwylli/PBR-Engine-sub000/pkg/core"

// UniformSampler picks among the scene's lights with equal probability
// and folds the selection probability into the returned pdf
type UniformSampler struct {
	lights []Light
}

// NewUniformSampler creates a uniform light sampler
func NewUniformSampler(lights []Light) *UniformSampler {
	return &UniformSampler{lights: lights}
}

// Count returns the number of lights
func (s *UniformSampler) Count() int {
	return len(s.lights)
}

// Sample selects a light uniformly and samples it toward the shading
// point. Returns false for a scene with no emitters.
func (s *UniformSampler) Sample(point core.Vec3, u float64, sample core.Vec2) (LightSample, bool) {
	n := len(s.lights)
	if n == 0 {
		return LightSample{}, false
	}

	idx := int(u * float64(n))
	if idx >= n {
		idx = n - 1
	}

	ls := s.lights[idx].Sample(point, sample)
	if ls.PDF <= 0 {
		return LightSample{}, false
	}

	// Fold the 1/n selection probability into the solid-angle pdf
	ls.PDF /= float64(n)
	return ls, true
}

// PDF returns the combined solid-angle density of sampling the given
// direction from the shading point under uniform light selection
func (s *UniformSampler) PDF(point core.Vec3, direction core.Vec3) float64 {
	n := len(s.lights)
	if n == 0 {
		return 0
	}

	total := 0.0
	for _, light := range s.lights {
		total += light.PDF(point, direction)
	}
	return total / float64(n)
}
