package scene

import (
	"math"
	"testing"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/lights"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/sdf"
)

func testCamera() *Camera {
	return NewCamera(
		core.NewVec3(0, 0, -5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		45.0,
		1.0,
	)
}

var gray = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func TestScene_Hit_NearestOfBothKinds(t *testing.T) {
	tests := []struct {
		name          string
		analyticX     float64
		implicitX     float64
		wantImplicit  bool
		wantHitAround float64
	}{
		{"analytic closer", 2.0, 6.0, false, 3.0},
		{"implicit closer", 6.0, 2.0, true, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(testCamera())
			s.AddShape(geometry.NewSphere(core.NewVec3(tt.analyticX, 0, 0), 1.0, gray))
			s.AddSDF(sdf.NewSphere(core.NewVec3(tt.implicitX, 0, 0), 1.0, gray))
			s.Build(geometry.SplitSAH)

			ray := core.NewRay(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0))
			hit, ok := s.Hit(ray, nil)
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if hit.IsImplicit() != tt.wantImplicit {
				t.Errorf("Expected implicit=%t, got %t", tt.wantImplicit, hit.IsImplicit())
			}
			if math.Abs(hit.T()-tt.wantHitAround) > 1e-2 {
				t.Errorf("Expected t≈%f, got %f", tt.wantHitAround, hit.T())
			}
		})
	}
}

func TestScene_Hit_CoincidentSurfacesPreferAnalytic(t *testing.T) {
	s := NewScene(testCamera())
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, gray))
	s.AddSDF(sdf.NewSphere(core.NewVec3(0, 0, 0), 1.0, gray))
	s.Build(geometry.SplitSAH)

	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	hit, ok := s.Hit(ray, nil)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	// The analytic solver resolves the surface exactly at t=4 while the
	// marcher stops an epsilon early; the exact hit must win
	if hit.IsImplicit() {
		t.Error("Expected the analytic hit to win on coincident surfaces")
	}
}

func TestScene_Hit_Tally(t *testing.T) {
	s := NewScene(testCamera())
	s.AddSDF(sdf.NewSphere(core.NewVec3(0, 0, 0), 1.0, gray))
	s.Build(geometry.SplitSAH)

	var tally core.Tally
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	s.Hit(ray, &tally)

	if tally.SceneRays != 1 {
		t.Errorf("Expected 1 scene ray, got %d", tally.SceneRays)
	}
	if tally.SDFMarches != 1 {
		t.Errorf("Expected 1 march, got %d", tally.SDFMarches)
	}
}

func TestScene_Visible(t *testing.T) {
	s := NewScene(testCamera())
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, gray))
	s.Build(geometry.SplitSAH)

	var tally core.Tally

	// Blocked by the sphere between the endpoints
	if s.Visible(core.NewVec3(-5, 0, 0), core.NewVec3(5, 0, 0), &tally) {
		t.Error("Expected occlusion through the sphere")
	}
	// Clear segment above the sphere
	if !s.Visible(core.NewVec3(-5, 3, 0), core.NewVec3(5, 3, 0), &tally) {
		t.Error("Expected clear visibility above the sphere")
	}
	// Degenerate segment
	if !s.Visible(core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1), &tally) {
		t.Error("Expected visibility for coincident endpoints")
	}

	if tally.ShadowRays != 3 {
		t.Errorf("Expected 3 shadow rays, got %d", tally.ShadowRays)
	}
}

func TestScene_Visible_EndpointOnSurface(t *testing.T) {
	// Surface endpoint within the shadow epsilon must not self-occlude
	s := NewScene(testCamera())
	s.AddShape(geometry.NewQuad(
		core.NewVec3(-1, 0, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		gray,
	))
	s.Build(geometry.SplitSAH)

	if !s.Visible(core.NewVec3(0, 0, 0), core.NewVec3(0, 5, 0), nil) {
		t.Error("Expected the quad's own surface point to see the light")
	}
}

func TestScene_Context_DefaultMaterial(t *testing.T) {
	s := NewScene(testCamera())
	s.AddSDF(sdf.NewSphere(core.NewVec3(0, 0, 0), 1.0, nil))
	s.Build(geometry.SplitSAH)

	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	hit, ok := s.Hit(ray, nil)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	ctx := s.Context(hit)
	if ctx.Material == nil {
		t.Fatal("Expected a fallback material")
	}
	if ctx.Material != defaultMaterial {
		t.Error("Expected the shared default material")
	}
}

func TestSurfaceContext_SpawnRayOffset(t *testing.T) {
	implicitHit := SurfaceHit{Implicit: &sdf.SurfaceHit{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}}
	ctx := NewSurfaceContext(implicitHit, 1e-4)

	up := ctx.SpawnRay(core.NewVec3(0, 1, 0))
	if up.Origin.Y <= 0 {
		t.Errorf("Expected origin nudged along the normal, got %v", up.Origin)
	}
	down := ctx.SpawnRay(core.NewVec3(0, -1, 0))
	if down.Origin.Y >= 0 {
		t.Errorf("Expected origin nudged against the normal, got %v", down.Origin)
	}

	// Analytic hits are exact: no nudge
	analyticHit := SurfaceHit{Analytic: &geometry.HitRecord{
		Point:     core.NewVec3(1, 2, 3),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}}
	actx := NewSurfaceContext(analyticHit, 1e-4)
	ray := actx.SpawnRay(core.NewVec3(0, 1, 0))
	if ray.Origin != core.NewVec3(1, 2, 3) {
		t.Errorf("Expected exact origin, got %v", ray.Origin)
	}
}

func TestScene_LightsAreShapes(t *testing.T) {
	s := NewScene(testCamera())
	s.AddLight(lights.NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(10, 10, 10),
	))
	s.Build(geometry.SplitSAH)

	if !s.HasEmitters() {
		t.Fatal("Expected emitters to be registered")
	}

	// A ray straight up must hit the light's quad through the BVH
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	hit, ok := s.Hit(ray, nil)
	if !ok {
		t.Fatal("Expected the light shape to be hittable")
	}
	ctx := s.Context(hit)
	if !ctx.Material.HasEmission() {
		t.Error("Expected an emissive material on the light shape")
	}
}

func TestBackgrounds(t *testing.T) {
	uniform := NewUniformBackground(core.NewVec3(0.25, 0.5, 0.75))
	if got := uniform.Evaluate(core.NewVec3(0, 1, 0)); got != core.NewVec3(0.25, 0.5, 0.75) {
		t.Errorf("Uniform background gave %v", got)
	}

	gradient := NewGradientBackground(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))
	top := gradient.Evaluate(core.NewVec3(0, 1, 0))
	bottom := gradient.Evaluate(core.NewVec3(0, -1, 0))
	if top == bottom {
		t.Error("Expected the gradient to vary with direction")
	}
	if top.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected the top color straight up, got %v", top)
	}
}

func TestEquirectBackground_Lookup(t *testing.T) {
	// 2x1 map: left half red, right half green
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	}
	bg := NewEquirectBackground(2, 1, pixels)

	a := bg.Evaluate(core.NewVec3(0, 0, -1))
	b := bg.Evaluate(core.NewVec3(0, 0, 1))
	if a == b {
		t.Error("Expected opposite directions to map to different texels")
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := testCamera()

	center := camera.GetRay(0.5, 0.5)
	if math.Abs(center.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("Expected normalized direction, got length %f", center.Direction.Length())
	}
	// Center of the image looks straight at the target
	expected := core.NewVec3(0, 0, 1)
	if center.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray %v, got %v", expected, center.Direction)
	}

	// Horizontal sweep changes x monotonically
	left := camera.GetRay(0.0, 0.5)
	right := camera.GetRay(1.0, 0.5)
	if left.Direction.X >= right.Direction.X {
		t.Error("Expected the image x axis to increase with s")
	}
}
