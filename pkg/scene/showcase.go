package scene

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/lights"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/sdf"
)

// NewSDFShowcaseScene mixes analytic and implicit surfaces: a fractal,
// a displaced sphere and a boolean carving over a checkered ground
// plane, lit by a sphere light and a sky gradient
func NewSDFShowcaseScene(aspect float64) *Scene {
	camera := NewCamera(
		core.NewVec3(0, 2.2, -7),
		core.NewVec3(0, 0.8, 0),
		core.NewVec3(0, 1, 0),
		45.0,
		aspect,
	)

	s := NewScene(camera)
	s.SetBackground(NewGradientBackground(
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	))

	// Checkered ground (analytic)
	checker := material.NewTexturedLambertian(
		material.NewCheckerTexture(
			core.NewVec3(0.2, 0.3, 0.1),
			core.NewVec3(0.9, 0.9, 0.9),
			2.0,
		),
	)
	s.AddShape(geometry.NewQuad(
		core.NewVec3(-20, 0, -20),
		core.NewVec3(0, 0, 40),
		core.NewVec3(40, 0, 0),
		checker,
	))

	gold := material.NewMetal(core.NewVec3(0.9, 0.7, 0.3), 0.1)
	clay := material.NewLambertian(core.NewVec3(0.7, 0.35, 0.25))
	slate := material.NewLambertian(core.NewVec3(0.35, 0.4, 0.5))

	// Power-8 Mandelbulb in the center
	s.AddSDF(sdf.NewMandelbulb(core.NewVec3(0, 1.2, 0), 1.0, gold))

	// Displaced sphere to the left
	s.AddSDF(sdf.NewNoisySphere(core.NewVec3(-2.6, 1.0, 0.5), 1.0, 0.25, 3.4, clay))

	// Rounded box with a sphere carved out to the right
	s.AddSDF(sdf.NewDifference(
		sdf.NewRoundedBox(core.NewVec3(2.6, 0.9, 0.5), core.NewVec3(0.9, 0.9, 0.9), 0.08, slate),
		sdf.NewSphere(core.NewVec3(2.6, 1.6, -0.4), 1.0, slate),
	))

	s.AddLight(lights.NewSphereLight(
		core.NewVec3(-3, 6, -4), 1.0,
		core.NewVec3(24, 22, 18),
	))

	return s
}
