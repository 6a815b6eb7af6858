package scene

import (
	"time"

	"github.com/tiwylli/PBR-Engine-sub000/log"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/lights"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/media"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/sdf"
)

// Shadow rays are shortened by this amount at both ends so visibility
// tests do not re-hit the surfaces they connect
const shadowEpsilon = 1e-3

// Scene owns the primitive tree, the SDF object list, the lights, an
// optional participating medium, the camera and the background. Built
// once, then read-only and shared across render workers.
type Scene struct {
	Camera *Camera

	shapes       []geometry.Shape
	root         *geometry.BVH
	sdfObjects   []sdf.Object
	sdfSettings  sdf.Settings
	lightSampler *lights.UniformSampler
	lightList    []lights.Light
	medium       media.Medium
	background   Background
	config       core.SamplingConfig

	built  bool
	logger log.Logger
}

// NewScene creates an empty scene with the given camera
func NewScene(camera *Camera) *Scene {
	return &Scene{
		Camera:      camera,
		sdfSettings: sdf.DefaultSettings(),
		background:  NewUniformBackground(core.Vec3{}),
		config:      core.DefaultSamplingConfig(),
		logger:      log.New("scene"),
	}
}

// AddShape registers an analytic primitive
func (s *Scene) AddShape(shape geometry.Shape) {
	s.shapes = append(s.shapes, shape)
}

// AddSDF registers an implicit surface
func (s *Scene) AddSDF(obj sdf.Object) {
	s.sdfObjects = append(s.sdfObjects, obj)
}

// AddLight registers a light for next-event estimation. Lights that
// are also shapes (area lights) are added to the primitive tree so
// BSDF-sampled paths can hit them.
func (s *Scene) AddLight(light lights.Light) {
	s.lightList = append(s.lightList, light)
	if shape, ok := light.(geometry.Shape); ok {
		s.AddShape(shape)
	}
}

// SetMedium installs a participating medium filling the whole scene
func (s *Scene) SetMedium(m media.Medium) {
	s.medium = m
}

// SetBackground replaces the environment
func (s *Scene) SetBackground(b Background) {
	s.background = b
}

// SetSDFSettings overrides the global marching settings
func (s *Scene) SetSDFSettings(settings sdf.Settings) {
	s.sdfSettings = settings
}

// SetSamplingConfig overrides the integrator configuration
func (s *Scene) SetSamplingConfig(config core.SamplingConfig) {
	s.config = config
}

// Build constructs the acceleration structure. Must be called once
// before rendering; the scene is immutable afterwards.
func (s *Scene) Build(strategy geometry.SplitStrategy) {
	start := time.Now()
	s.root = geometry.NewBVH(s.shapes, strategy)
	s.lightSampler = lights.NewUniformSampler(s.lightList)
	s.built = true

	stats := s.root.Stats()
	s.logger.Debugf("BVH built in %s: %d nodes, %d leaves, max depth %d, %d shapes, %d SDF objects",
		time.Since(start), stats.Nodes, stats.Leaves, stats.MaxDepth, stats.Shapes, len(s.sdfObjects))
}

// Hit resolves the nearest surface along the ray, arbitrating between
// the analytic primitive tree and the implicit surfaces. Ties go to
// the analytic hit. Tally may be nil.
func (s *Scene) Hit(ray core.Ray, tally *core.Tally) (SurfaceHit, bool) {
	if tally != nil {
		tally.SceneRays++
	}

	var merged SurfaceHit
	if hit, ok := s.root.Hit(ray); ok {
		merged.Analytic = hit
		ray.TMax = hit.T
	}

	for _, obj := range s.sdfObjects {
		// Bounds prune before paying for a march
		if entry, ok := obj.Bounds().Hit(ray); !ok || entry > ray.TMax {
			continue
		}
		result := sdf.March(ray, obj, s.sdfSettings, tally)
		if result.Status != sdf.Hit {
			// Miss, MaxStepsExceeded and EscapedBounds all mean
			// "no implicit hit" here
			continue
		}
		// The marcher converges up to HitEpsilon short of the true
		// surface; require it to beat the current best by more than
		// that so coincident surfaces resolve to the exact analytic hit
		if result.Hit.T < ray.TMax-s.sdfSettings.HitEpsilon {
			hit := result.Hit
			merged.Analytic = nil
			merged.Implicit = &hit
			ray.TMax = hit.T
		}
	}

	return merged, merged.Analytic != nil || merged.Implicit != nil
}

// Context builds a shading context for a merged hit. SDF objects
// without a material shade as neutral gray.
func (s *Scene) Context(hit SurfaceHit) SurfaceContext {
	ctx := NewSurfaceContext(hit, s.sdfSettings.NormalEpsilon)
	if ctx.Material == nil {
		ctx.Material = defaultMaterial
	}
	return ctx
}

// Visible reports whether the segment between two points is
// unoccluded. Both ends are shortened by a small epsilon.
func (s *Scene) Visible(p0, p1 core.Vec3, tally *core.Tally) bool {
	if tally != nil {
		tally.ShadowRays++
	}

	toP1 := p1.Subtract(p0)
	distance := toP1.Length()
	if distance < 2*shadowEpsilon {
		return true
	}

	ray := core.NewRayInterval(p0, toP1.Divide(distance), shadowEpsilon, distance-shadowEpsilon)
	_, blocked := s.Hit(ray, nil)
	return !blocked
}

// HasEmitters reports whether any light sources are registered
func (s *Scene) HasEmitters() bool {
	return s.lightSampler != nil && s.lightSampler.Count() > 0
}

// SampleDirect samples a point on a light toward p for next-event
// estimation. The returned pdf is per solid angle and already accounts
// for the emitter-selection probability.
func (s *Scene) SampleDirect(p core.Vec3, u float64, sample core.Vec2) (lights.LightSample, bool) {
	if s.lightSampler == nil {
		return lights.LightSample{}, false
	}
	return s.lightSampler.Sample(p, u, sample)
}

// PDFDirect returns the solid-angle density that SampleDirect would
// have produced the given direction from p
func (s *Scene) PDFDirect(p core.Vec3, direction core.Vec3) float64 {
	if s.lightSampler == nil {
		return 0
	}
	return s.lightSampler.PDF(p, direction)
}

// Background returns escaping-ray radiance for a direction
func (s *Scene) Background(direction core.Vec3) core.Vec3 {
	return s.background.Evaluate(direction)
}

// Medium returns the scene-wide participating medium, or nil
func (s *Scene) Medium() media.Medium {
	return s.medium
}

// SDFSettings returns the global marching settings
func (s *Scene) SDFSettings() sdf.Settings {
	return s.sdfSettings
}

// SamplingConfig returns the integrator configuration
func (s *Scene) SamplingConfig() core.SamplingConfig {
	return s.config
}
