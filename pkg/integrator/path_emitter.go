package integrator

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
)

// EmitterPathTracer gathers direct light exclusively through explicit
// emitter sampling. Emitter hits found by the BSDF walk are skipped
// (except through delta chains, which light sampling cannot reach),
// so light is never counted twice.
type EmitterPathTracer struct {
	config core.SamplingConfig
}

// NewEmitterPathTracer creates an explicit-emitter-sampling path tracer
func NewEmitterPathTracer(config core.SamplingConfig) *EmitterPathTracer {
	return &EmitterPathTracer{config: config}
}

// RayColor traces one path with light sampling only
func (pt *EmitterPathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, tally *core.Tally) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	// Emission already gathered by the previous vertex's light sample
	// must not be added again
	skipEmission := false

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

		if mat.HasEmission() && !skipEmission {
			emitted := mat.Emission(wo, ctx.UV, ctx.Point)
			radiance = radiance.Add(throughput.MultiplyVec(emitted))
		}

		if !mat.HasDelta() && s.HasEmitters() {
			if ls, ok := s.SampleDirect(ctx.Point, sampler.Get1D(), sampler.Get2D()); ok {
				wiLight := frame.ToLocal(ls.Direction)
				f := mat.Evaluate(wo, wiLight, ctx.UV, ctx.Point)
				if !f.IsZero() && !ls.Emission.IsZero() && s.Visible(ctx.Point, ls.Point, tally) {
					contribution := throughput.
						MultiplyVec(f).
						MultiplyVec(ls.Emission).
						Divide(ls.PDF)
					radiance = radiance.Add(contribution)
				}
			}
		}

		ms, ok := mat.Sample(wo, ctx.UV, ctx.Point, sampler)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(ms.Weight)
		skipEmission = !mat.HasDelta()
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
