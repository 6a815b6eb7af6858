package integrator

import (
	"math"
	"testing"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/lights"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/media"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/scene"
)

func testConfig() core.SamplingConfig {
	config := core.DefaultSamplingConfig()
	config.MaxDepth = 4
	// Disable roulette so estimates depend only on the sampling scheme
	config.RussianRouletteMinBounces = 100
	return config
}

func emptyCamera() *scene.Camera {
	return scene.NewCamera(
		core.NewVec3(0, 1, -5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		45.0,
		1.0,
	)
}

// directLightScene is a lambertian floor under a downward-facing quad
// light, with nothing else to bounce off: every estimator should agree
// on the reflected radiance
func directLightScene() *scene.Scene {
	s := scene.NewScene(emptyCamera())
	s.SetBackground(scene.NewUniformBackground(core.Vec3{}))

	floor := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddShape(geometry.NewQuad(
		core.NewVec3(-50, 0, -50),
		core.NewVec3(0, 0, 100),
		core.NewVec3(100, 0, 0),
		floor,
	))
	s.AddLight(lights.NewQuadLight(
		core.NewVec3(-1, 2, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(5, 5, 5),
	))

	s.Build(geometry.SplitSAH)
	return s
}

// estimate averages RayColor over n sampler streams
func estimate(integ Integrator, s *scene.Scene, ray core.Ray, seed int64, n int) core.Vec3 {
	base := core.NewRandomSampler(seed, n)
	sum := core.Vec3{}
	for i := 0; i < n; i++ {
		sampler := base.Fork(int64(i))
		sum = sum.Add(integ.RayColor(ray, s, sampler, nil))
	}
	return sum.Multiply(1.0 / float64(n))
}

func TestIntegrators_BackgroundOnly(t *testing.T) {
	s := scene.NewScene(emptyCamera())
	bg := core.NewVec3(0.2, 0.4, 0.8)
	s.SetBackground(scene.NewUniformBackground(bg))
	s.Build(geometry.SplitSAH)

	config := testConfig()
	integrators := []struct {
		name  string
		integ Integrator
	}{
		{"path", NewPathTracer(config)},
		{"path-bsdf", NewBSDFPathTracer(config)},
		{"path-naive", NewNaivePathTracer(config)},
		{"path-emitter", NewEmitterPathTracer(config)},
		{"volumetric", NewVolumetricPathTracer(config)},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	sampler := core.NewRandomSampler(1, 1)

	for _, tt := range integrators {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.integ.RayColor(ray, s, sampler, nil)
			if got.Subtract(bg).Length() > 1e-12 {
				t.Errorf("Expected exact background %v, got %v", bg, got)
			}
		})
	}
}

func TestIntegrators_DirectLightConsistency(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical comparison")
	}

	s := directLightScene()
	config := testConfig()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	reference := estimate(NewPathTracer(config), s, ray, 42, 20000)
	if reference.Luminance() <= 0 {
		t.Fatal("Reference estimate is black")
	}

	others := []struct {
		name      string
		integ     Integrator
		tolerance float64
	}{
		{"path-emitter", NewEmitterPathTracer(config), 0.05},
		{"path-bsdf", NewBSDFPathTracer(config), 0.10},
		{"path-naive", NewNaivePathTracer(config), 0.10},
	}

	for _, tt := range others {
		t.Run(tt.name, func(t *testing.T) {
			got := estimate(tt.integ, s, ray, 7, 20000)
			rel := math.Abs(got.Luminance()-reference.Luminance()) / reference.Luminance()
			if rel > tt.tolerance {
				t.Errorf("Estimate %f deviates %.1f%% from reference %f",
					got.Luminance(), rel*100, reference.Luminance())
			}
		})
	}
}

func TestPathTracer_EmitterHitAtFullWeight(t *testing.T) {
	s := scene.NewScene(emptyCamera())
	s.SetBackground(scene.NewUniformBackground(core.Vec3{}))
	radiance := core.NewVec3(3, 3, 3)
	s.AddLight(lights.NewQuadLight(
		core.NewVec3(-1, 2, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		radiance,
	))
	s.Build(geometry.SplitSAH)

	// Camera ray straight into the emitting face
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	sampler := core.NewRandomSampler(1, 1)

	got := NewPathTracer(testConfig()).RayColor(ray, s, sampler, nil)
	if got.Subtract(radiance).Length() > 1e-12 {
		t.Errorf("Expected full emission %v on a camera hit, got %v", radiance, got)
	}

	// The back face must be dark
	back := core.NewRay(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0))
	got = NewPathTracer(testConfig()).RayColor(back, s, sampler, nil)
	if !got.IsZero() {
		t.Errorf("Expected no emission from the back face, got %v", got)
	}
}

func TestVolumetric_VacuumMatchesSurfaceTracer(t *testing.T) {
	s := directLightScene()
	s.SetMedium(media.NewHomogeneous(core.Vec3{}, core.Vec3{}, media.NewIsotropic()))

	config := testConfig()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// A zero-density medium consumes no samples, so both integrators
	// walk the same random stream and must agree exactly
	for i := int64(0); i < 20; i++ {
		a := NewPathTracer(config).RayColor(ray, s, core.NewRandomSampler(i, 1), nil)
		b := NewVolumetricPathTracer(config).RayColor(ray, s, core.NewRandomSampler(i, 1), nil)
		if a.Subtract(b).Length() > 1e-12 {
			t.Fatalf("Seed %d: vacuum volumetric %v differs from surface tracer %v", i, b, a)
		}
	}
}

func TestVolumetric_FogAttenuatesAndScatters(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical comparison")
	}

	clear := directLightScene()
	foggy := directLightScene()
	foggy.SetMedium(media.NewHomogeneous(
		core.NewVec3(0.2, 0.2, 0.2),
		core.Vec3{},
		media.NewIsotropic(),
	))

	config := testConfig()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	clearL := estimate(NewPathTracer(config), clear, ray, 11, 5000).Luminance()
	foggyL := estimate(NewVolumetricPathTracer(config), foggy, ray, 11, 5000).Luminance()

	// A purely absorbing medium can only darken the image
	if foggyL >= clearL {
		t.Errorf("Expected absorption to darken: clear %f vs foggy %f", clearL, foggyL)
	}
	if foggyL <= 0 {
		t.Error("Expected some light to survive the fog")
	}
}

func TestRRTerminate(t *testing.T) {
	config := core.DefaultSamplingConfig()
	config.RussianRouletteMinBounces = 3
	sampler := core.NewRandomSampler(5, 1)
	throughput := core.NewVec3(0.4, 0.4, 0.4)

	// Below the minimum bounce the path always survives unchanged
	for depth := 0; depth < 3; depth++ {
		got, alive := rrTerminate(config, depth, throughput, sampler)
		if !alive || got != throughput {
			t.Fatalf("Depth %d: expected unchanged survival, got %v alive=%t", depth, got, alive)
		}
	}

	// Past the minimum bounce the reweighting keeps the estimator
	// unbiased: E[throughput'] == throughput
	n := 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		got, alive := rrTerminate(config, 5, throughput, sampler)
		if alive {
			sum += got.X
		}
	}
	mean := sum / float64(n)
	if math.Abs(mean-throughput.X) > 0.005 {
		t.Errorf("Expected unbiased mean %f, got %f", throughput.X, mean)
	}
}

func TestRRTerminate_SurvivalClamped(t *testing.T) {
	config := core.DefaultSamplingConfig()
	config.RussianRouletteMinBounces = 0
	sampler := core.NewRandomSampler(9, 1)

	// Bright throughput is clamped to the max survival probability, so
	// survivors are boosted by at least 1/max
	bright := core.NewVec3(10, 10, 10)
	got, alive := rrTerminate(config, 1, bright, sampler)
	if alive {
		expected := bright.Divide(config.RussianRouletteMax)
		if got.Subtract(expected).Length() > 1e-9 {
			t.Errorf("Expected clamped boost %v, got %v", expected, got)
		}
	}

	// Near-black throughput still survives at least RussianRouletteMin
	// of the time
	dim := core.NewVec3(1e-9, 1e-9, 1e-9)
	survived := 0
	n := 100000
	for i := 0; i < n; i++ {
		if _, alive := rrTerminate(config, 1, dim, sampler); alive {
			survived++
		}
	}
	rate := float64(survived) / float64(n)
	if math.Abs(rate-config.RussianRouletteMin) > 0.01 {
		t.Errorf("Expected survival rate %f, got %f", config.RussianRouletteMin, rate)
	}
}
