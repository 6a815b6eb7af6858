package integrator

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
)

// VolumetricPathTracer extends the MIS path tracer with transport
// through a scene-wide participating medium: free-flight distances are
// sampled along every segment, scattering either inside the medium via
// the phase function or passing through to the surface with
// transmittance-attenuated throughput.
type VolumetricPathTracer struct {
	config core.SamplingConfig
}

// NewVolumetricPathTracer creates a volumetric path tracer
func NewVolumetricPathTracer(config core.SamplingConfig) *VolumetricPathTracer {
	return &VolumetricPathTracer{config: config}
}

// RayColor traces one path through surfaces and the medium
func (pt *VolumetricPathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, tally *core.Tally) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	specularBounce := true
	var prevPDF float64
	var prevPoint core.Vec3

	medium := s.Medium()

	for depth := 0; ; depth++ {
		hit, ok := s.Hit(ray, tally)

		if medium != nil {
			segment := math.Inf(1)
			if ok {
				segment = hit.T()
			}

			ds := medium.SampleDistance(segment, sampler)
			throughput = throughput.MultiplyVec(ds.Weight)

			if ds.Scattered {
				// Medium interaction: shade with the phase function
				// and keep walking from inside the volume
				point := ray.At(ds.T)
				phase := medium.Phase()
				wo := ray.Direction.Negate().Normalize()

				if s.HasEmitters() {
					if ls, ok := s.SampleDirect(point, sampler.Get1D(), sampler.Get2D()); ok {
						if !ls.Emission.IsZero() && s.Visible(point, ls.Point, tally) {
							phaseVal := phase.PDF(wo, ls.Direction)
							tr := medium.Transmittance(ls.Distance)
							weight := core.BalanceHeuristic(ls.PDF, phaseVal)
							contribution := throughput.
								MultiplyVec(ls.Emission).
								MultiplyVec(tr).
								Multiply(phaseVal * weight / ls.PDF)
							radiance = radiance.Add(contribution)
						}
					}
				}

				wi := phase.Sample(wo, sampler.Get2D())
				prevPDF = phase.PDF(wo, wi)
				prevPoint = point
				specularBounce = false
				ray = core.NewRay(point, wi)

				var alive bool
				throughput, alive = rrTerminate(pt.config, depth+1, throughput, sampler)
				if !alive {
					break
				}
				if depth+1 >= pt.config.MaxDepth {
					break
				}
				continue
			}
			// Passed through: throughput already carries the
			// transmittance weight, fall through to the surface
		}

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
				weight = core.BalanceHeuristic(prevPDF, lightPDF)
			}
			emitted := mat.Emission(wo, ctx.UV, ctx.Point)
			radiance = radiance.Add(throughput.MultiplyVec(emitted).Multiply(weight))
		}

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
					if medium != nil {
						contribution = contribution.MultiplyVec(medium.Transmittance(ls.Distance))
					}
					radiance = radiance.Add(contribution)
				}
			}
		}

		ms, ok := mat.Sample(wo, ctx.UV, ctx.Point, sampler)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(ms.Weight)

		prevPDF = mat.PDF(wo, ms.Wi, ctx.UV, ctx.Point)
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
