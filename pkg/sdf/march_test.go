package sdf

import (
	"math"
	"testing"

	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
)

var testMat = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func TestMarch_UnitSphereConvergence(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMat)
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	settings := DefaultSettings()

	result := March(ray, sphere, settings, nil)
	if result.Status != Hit {
		t.Fatalf("Expected Hit, got status %d", result.Status)
	}
	// Entry point of the unit sphere is at t=4
	if math.Abs(result.Hit.T-4.0) > 1e-3 {
		t.Errorf("Expected t≈4, got t=%f", result.Hit.T)
	}

	expectedNormal := core.NewVec3(-1, 0, 0)
	if result.Hit.Normal.Subtract(expectedNormal).Length() > 1e-3 {
		t.Errorf("Expected normal %v, got %v", expectedNormal, result.Hit.Normal)
	}
	if result.Hit.Material != testMat {
		t.Error("Expected the object's material on the hit")
	}
	if result.Hit.Steps <= 0 || result.Hit.Steps > settings.MaxSteps {
		t.Errorf("Implausible step count %d", result.Hit.Steps)
	}
}

func TestMarch_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMat)

	// Passes through the corner of the bounds but misses the surface
	ray := core.NewRay(core.NewVec3(-5, 0.99, 0.99), core.NewVec3(1, 0, 0))
	result := March(ray, sphere, DefaultSettings(), nil)
	if result.Status == Hit {
		t.Errorf("Expected a non-hit status, got Hit at t=%f", result.Hit.T)
	}
}

func TestMarch_EscapedBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMat)
	ray := core.NewRay(core.NewVec3(-5, 3, 0), core.NewVec3(1, 0, 0))

	result := March(ray, sphere, DefaultSettings(), nil)
	if result.Status != EscapedBounds {
		t.Errorf("Expected EscapedBounds, got status %d", result.Status)
	}
}

func TestMarch_MaxStepsExceeded(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMat)
	settings := DefaultSettings()
	settings.MaxSteps = 2

	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	result := March(ray, sphere, settings, nil)
	if result.Status != MaxStepsExceeded {
		t.Errorf("Expected MaxStepsExceeded with a 2-step budget, got status %d", result.Status)
	}
}

type nanField struct{ inner *Sphere }

func (f *nanField) SignedDistance(p core.Vec3) float64 { return math.NaN() }
func (f *nanField) Bounds() core.AABB                  { return f.inner.Bounds() }
func (f *nanField) Material() material.Material        { return f.inner.Material() }

func TestMarch_NonFiniteField(t *testing.T) {
	obj := &nanField{inner: NewSphere(core.NewVec3(0, 0, 0), 1.0, testMat)}
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))

	result := March(ray, obj, DefaultSettings(), nil)
	if result.Status != MaxStepsExceeded {
		t.Errorf("Expected MaxStepsExceeded for NaN field, got status %d", result.Status)
	}
}

func TestMarch_TallyCounts(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMat)
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))

	var tally core.Tally
	March(ray, sphere, DefaultSettings(), &tally)

	if tally.SDFMarches != 1 {
		t.Errorf("Expected 1 march, got %d", tally.SDFMarches)
	}
	if tally.SDFSteps == 0 {
		t.Error("Expected step counts to be recorded")
	}
}

func TestSphere_AnalyticGradient(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, testMat)

	p := core.NewVec3(3.5, 2, 3)
	d := sphere.SignedDistance(p)
	if math.Abs(d-0.5) > 1e-12 {
		t.Errorf("Expected distance 0.5, got %f", d)
	}

	g := sphere.Gradient(p)
	expected := core.NewVec3(1, 0, 0)
	if g.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected gradient %v, got %v", expected, g)
	}
}

func TestCombinators_SignedDistance(t *testing.T) {
	a := NewSphere(core.NewVec3(-0.5, 0, 0), 1.0, testMat)
	b := NewSphere(core.NewVec3(0.5, 0, 0), 1.0, testMat)

	p := core.NewVec3(-1.8, 0, 0)
	da := a.SignedDistance(p)
	db := b.SignedDistance(p)

	if got := NewUnion(a, b).SignedDistance(p); got != math.Min(da, db) {
		t.Errorf("Union: expected %f, got %f", math.Min(da, db), got)
	}
	if got := NewIntersection(a, b).SignedDistance(p); got != math.Max(da, db) {
		t.Errorf("Intersection: expected %f, got %f", math.Max(da, db), got)
	}
	if got := NewDifference(a, b).SignedDistance(p); got != math.Max(da, -db) {
		t.Errorf("Difference: expected %f, got %f", math.Max(da, -db), got)
	}
}

func TestDifference_CarvesSurface(t *testing.T) {
	// Sphere with its right half carved away by a bigger sphere
	body := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMat)
	cutter := NewSphere(core.NewVec3(1.5, 0, 0), 1.0, testMat)
	carved := NewDifference(body, cutter)

	// From the left the surface is intact
	left := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	result := March(left, carved, DefaultSettings(), nil)
	if result.Status != Hit {
		t.Fatalf("Expected Hit from the left, got status %d", result.Status)
	}
	if math.Abs(result.Hit.T-4.0) > 1e-3 {
		t.Errorf("Expected t≈4, got t=%f", result.Hit.T)
	}

	// From the right the original surface at x=1 is removed; the march
	// converges on the carved cavity at x=0.5 instead
	right := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))
	result = March(right, carved, DefaultSettings(), nil)
	if result.Status != Hit {
		t.Fatalf("Expected Hit on the cavity, got status %d", result.Status)
	}
	hitX := result.Hit.Point.X
	if math.Abs(hitX-0.5) > 1e-3 {
		t.Errorf("Expected cavity surface at x≈0.5, got x=%f", hitX)
	}
}

func TestUnion_BoundsAndTune(t *testing.T) {
	a := NewSphere(core.NewVec3(-2, 0, 0), 1.0, testMat)
	noisy := NewNoisySphere(core.NewVec3(2, 0, 0), 1.0, 0.2, 3.0, testMat)
	u := NewUnion(a, noisy)

	bounds := u.Bounds()
	if bounds.Min.X > -3.0+1e-9 || bounds.Max.X < 3.0-1e-9 {
		t.Errorf("Union bounds too small: %+v", bounds)
	}

	// The noisy child lowers the step clamp for the whole union
	tuned := u.Tune(DefaultSettings())
	if tuned.StepClamp >= DefaultSettings().StepClamp {
		t.Errorf("Expected a tightened step clamp, got %f", tuned.StepClamp)
	}
}

func TestTranslatedScaled_March(t *testing.T) {
	base := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMat)
	moved := NewTranslated(base, core.NewVec3(0, 3, 0))

	ray := core.NewRay(core.NewVec3(-5, 3, 0), core.NewVec3(1, 0, 0))
	result := March(ray, moved, DefaultSettings(), nil)
	if result.Status != Hit {
		t.Fatalf("Expected Hit on translated sphere, got status %d", result.Status)
	}
	if math.Abs(result.Hit.T-4.0) > 1e-3 {
		t.Errorf("Expected t≈4, got t=%f", result.Hit.T)
	}

	big := NewScaled(base, 2.0)
	ray = core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	result = March(ray, big, DefaultSettings(), nil)
	if result.Status != Hit {
		t.Fatalf("Expected Hit on scaled sphere, got status %d", result.Status)
	}
	if math.Abs(result.Hit.T-3.0) > 1e-3 {
		t.Errorf("Expected t≈3 for radius-2 sphere, got t=%f", result.Hit.T)
	}
}

func TestMandelbulb_BoundedField(t *testing.T) {
	bulb := NewMandelbulb(core.NewVec3(0, 0, 0), 1.0, testMat)

	// A point well outside must have a positive finite distance
	d := bulb.SignedDistance(core.NewVec3(3, 0, 0))
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		t.Errorf("Expected positive finite exterior distance, got %f", d)
	}

	// The march should find the fractal surface on an axis ray
	ray := core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0))
	result := March(ray, bulb, DefaultSettings(), nil)
	if result.Status != Hit {
		t.Fatalf("Expected Hit on mandelbulb, got status %d", result.Status)
	}
	if result.Hit.T <= 0 || result.Hit.T >= 3.0 {
		t.Errorf("Implausible hit distance %f", result.Hit.T)
	}
}
