package integrator

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
)

// PathTracer implements unidirectional path tracing with next-event
// estimation and balance-heuristic multiple importance sampling. It
// handles hybrid analytic/SDF scenes.
type PathTracer struct {
	config core.SamplingConfig
}

// NewPathTracer creates a full MIS path tracer
func NewPathTracer(config core.SamplingConfig) *PathTracer {
	return &PathTracer{config: config}
}

// RayColor traces one path with an iterative loop and explicit depth
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, tally *core.Tally) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	// Camera rays and delta bounces count emitter hits at full weight;
	// after a diffuse bounce the emitter contribution is MIS-weighted
	// against the light sample already taken at the previous vertex
	specularBounce := true
	var prevBSDFPDF float64
	var prevPoint core.Vec3

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
			weight := 1.0
			if !specularBounce {
				lightPDF := s.PDFDirect(prevPoint, ray.Direction)
				weight = core.BalanceHeuristic(prevBSDFPDF, lightPDF)
			}
			emitted := mat.Emission(wo, ctx.UV, ctx.Point)
			radiance = radiance.Add(throughput.MultiplyVec(emitted).Multiply(weight))
		}

		// Next-event estimation, skipped for delta materials: their
		// BSDF is zero for any sampled light direction
		if !mat.HasDelta() && s.HasEmitters() {
			if ls, ok := s.SampleDirect(ctx.Point, sampler.Get1D(), sampler.Get2D()); ok {
				wiLight := frame.ToLocal(ls.Direction)
				f := mat.Evaluate(wo, wiLight, ctx.UV, ctx.Point)
				if !f.IsZero() && !ls.Emission.IsZero() && s.Visible(ctx.Point, ls.Point, tally) {
					bsdfPDF := mat.PDF(wo, wiLight, ctx.UV, ctx.Point)
					weight := core.BalanceHeuristic(ls.PDF, bsdfPDF)
					contribution := throughput.
						MultiplyVec(f).
						MultiplyVec(ls.Emission).
						Multiply(weight / ls.PDF)
					radiance = radiance.Add(contribution)
				}
			}
		}

		// Importance-sample the BSDF for the continuation direction;
		// a failed sample is absorption
		ms, ok := mat.Sample(wo, ctx.UV, ctx.Point, sampler)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(ms.Weight)

		prevBSDFPDF = mat.PDF(wo, ms.Wi, ctx.UV, ctx.Point)
		specularBounce = mat.HasDelta()
		prevPoint = ctx.Point
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
