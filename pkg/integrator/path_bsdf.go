package integrator

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
)

// BSDFPathTracer is the plain variant: BSDF importance sampling only,
// no explicit light sampling. Slower to converge on small lights but
// useful as an unbiased reference for the MIS tracer.
type BSDFPathTracer struct {
	config core.SamplingConfig
}

// NewBSDFPathTracer creates a BSDF-sampling-only path tracer
func NewBSDFPathTracer(config core.SamplingConfig) *BSDFPathTracer {
	return &BSDFPathTracer{config: config}
}

// RayColor traces one path, accumulating emission wherever the
// BSDF-sampled walk lands
func (pt *BSDFPathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, tally *core.Tally) core.Vec3 {
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

		ms, ok := mat.Sample(wo, ctx.UV, ctx.Point, sampler)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(ms.Weight)
		ray = ctx.SpawnRay(frame.ToWorld(ms.Wi))

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
