package core

import (
	"math"
	"testing"
)

func TestAABB_Hit_EntryDistance(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name          string
		origin        Vec3
		direction     Vec3
		expectHit     bool
		expectedEntry float64
	}{
		{
			name:          "hit from outside",
			origin:        NewVec3(-5, 0, 0),
			direction:     NewVec3(1, 0, 0),
			expectHit:     true,
			expectedEntry: 4.0,
		},
		{
			name:      "origin inside gives non-positive entry",
			origin:    NewVec3(0, 0, 0),
			direction: NewVec3(1, 0, 0),
			expectHit: true,
			// entry == -1 here: the near slab plane is behind the origin
			expectedEntry: -1.0,
		},
		{
			name:      "pointing away",
			origin:    NewVec3(-5, 0, 0),
			direction: NewVec3(-1, 0, 0),
			expectHit: false,
		},
		{
			name:      "parallel miss",
			origin:    NewVec3(-5, 2, 0),
			direction: NewVec3(1, 0, 0),
			expectHit: false,
		},
		{
			name:          "parallel inside slab",
			origin:        NewVec3(-5, 0.5, 0.5),
			direction:     NewVec3(1, 0, 0),
			expectHit:     true,
			expectedEntry: 4.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, tt.direction)
			entry, ok := box.Hit(ray)

			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if ok && math.Abs(entry-tt.expectedEntry) > 1e-9 {
				t.Errorf("Expected entry=%f, got %f", tt.expectedEntry, entry)
			}
		})
	}
}

func TestAABB_Hit_RespectsInterval(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	// Box entirely beyond TMax
	ray := NewRayInterval(NewVec3(-5, 0, 0), NewVec3(1, 0, 0), 0.001, 2.0)
	if _, ok := box.Hit(ray); ok {
		t.Error("Expected miss when box lies beyond TMax")
	}

	// Box entirely behind TMin
	ray = NewRayInterval(NewVec3(-5, 0, 0), NewVec3(1, 0, 0), 7.0, 100.0)
	if _, ok := box.Hit(ray); ok {
		t.Error("Expected miss when box lies before TMin")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(2, -1, 0), NewVec3(3, 0.5, 2))

	u := a.Union(b)
	expectedMin := NewVec3(0, -1, 0)
	expectedMax := NewVec3(3, 1, 2)
	if u.Min != expectedMin || u.Max != expectedMax {
		t.Errorf("Expected union [%v, %v], got [%v, %v]", expectedMin, expectedMax, u.Min, u.Max)
	}

	// Empty box is the identity for Union
	if got := EmptyAABB().Union(a); got != a {
		t.Errorf("Expected union with empty box to return %v, got %v", a, got)
	}
}

func TestAABB_SurfaceAreaAndLongestAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 1, 4))

	expectedArea := 2.0 * (2*1 + 1*4 + 4*2)
	if math.Abs(box.SurfaceArea()-expectedArea) > 1e-9 {
		t.Errorf("Expected area %f, got %f", expectedArea, box.SurfaceArea())
	}
	if axis := box.LongestAxis(); axis != 2 {
		t.Errorf("Expected longest axis 2, got %d", axis)
	}
	if EmptyAABB().SurfaceArea() != 0 {
		t.Errorf("Expected zero area for empty box, got %f", EmptyAABB().SurfaceArea())
	}
}
