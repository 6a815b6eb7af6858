package integrator

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
)

// NaivePathTracer samples continuation directions uniformly over the
// hemisphere instead of importance-sampling the BSDF. High variance;
// kept as the simplest possible reference estimator. Delta materials
// still go through their own sampling since a hemisphere sample can
// never hit a delta lobe.
type NaivePathTracer struct {
	config core.SamplingConfig
}

// NewNaivePathTracer creates a uniform-hemisphere path tracer
func NewNaivePathTracer(config core.SamplingConfig) *NaivePathTracer {
	return &NaivePathTracer{config: config}
}

// RayColor traces one path with uniform-hemisphere continuation
func (pt *NaivePathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, tally *core.Tally) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; ; depth++ {
		hit, ok := s.Hit(ray, tally)
		if !ok {
			radiance = radiance.Add(throughput.MultiplyVec(s.Background(ray.Direction)))
			break
		}

		ctx := s.Context(hit)
		frame := core.NewFrame(ctx.Normal)
		wo := frame.ToLocal(ray.Direction.Negate())
		mat := ctx.Material

		if mat.HasEmission() {
			emitted := mat.Emission(wo, ctx.UV, ctx.Point)
			radiance = radiance.Add(throughput.MultiplyVec(emitted))
		}

		var wi core.Vec3
		if mat.HasDelta() {
			ms, ok := mat.Sample(wo, ctx.UV, ctx.Point, sampler)
			if !ok {
				break
			}
			wi = ms.Wi
			throughput = throughput.MultiplyVec(ms.Weight)
		} else {
			wi = core.SampleUniformHemisphere(sampler.Get2D())
			f := mat.Evaluate(wo, wi, ctx.UV, ctx.Point)
			if f.IsZero() {
				break
			}
			// Estimator: f (includes cosine) / uniform pdf
			throughput = throughput.MultiplyVec(f).Divide(core.UniformHemispherePDF())
		}
		ray = ctx.SpawnRay(frame.ToWorld(wi))

		var alive bool
		throughput, alive = rrTerminate(pt.config, depth+1, throughput, sampler)
		if !alive {
			break
		}
		if depth+1 >= pt.config.MaxDepth {
			break
		}
	}

	return radiance
}
