package integrator

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
)

// Integrator estimates the radiance arriving along a primary ray.
// Implementations must be safe for concurrent use: all per-path state
// lives on the stack, and per-worker counters go through the tally.
type Integrator interface {
	RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, tally *core.Tally) core.Vec3
}

// rrTerminate applies Russian roulette from the configured minimum
// bounce. Returns the updated throughput and false when the path is
// killed. Surviving paths are reweighted by the survival probability,
// keeping the estimator unbiased.
func rrTerminate(config core.SamplingConfig, depth int, throughput core.Vec3, sampler core.Sampler) (core.Vec3, bool) {
	if depth < config.RussianRouletteMinBounces {
		return throughput, true
	}

	survival := throughput.MaxComponent()
	if survival < config.RussianRouletteMin {
		survival = config.RussianRouletteMin
	}
	if survival > config.RussianRouletteMax {
		survival = config.RussianRouletteMax
	}

	if sampler.Get1D() > survival {
		return throughput, false
	}
	return throughput.Divide(survival), true
}
