package scene

import (
	"github.com/tiwylli/PBR-Engine-sub000/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/lights"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub000/pkg/media"
)

// NewCornellScene creates a classic Cornell box with quad walls, a
// metal and a glass sphere, and a ceiling area light
func NewCornellScene(aspect float64) *Scene {
	camera := NewCamera(
		core.NewVec3(278, 278, -800), // Camera outside the box looking in
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40.0,
		aspect,
	)

	s := NewScene(camera)
	s.SetBackground(NewUniformBackground(core.Vec3{}))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	boxSize := 555.0

	// Floor, ceiling and back wall (white), wound so the geometric
	// normals face into the box
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		white,
	))
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	))
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		white,
	))

	// Left wall (red), right wall (green)
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		red,
	))
	s.AddShape(geometry.NewQuad(
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		green,
	))

	// Mirror and glass spheres on the floor
	s.AddShape(geometry.NewSphere(
		core.NewVec3(185, 90, 350), 90,
		material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.0),
	))
	s.AddShape(geometry.NewSphere(
		core.NewVec3(390, 90, 170), 90,
		material.NewDielectric(1.5),
	))

	// Ceiling light, slightly below the ceiling so its front face
	// points down into the box
	s.AddLight(lights.NewQuadLight(
		core.NewVec3(213, boxSize-1, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		core.NewVec3(15, 15, 15),
	))

	return s
}

// NewFoggyCornellScene is the Cornell box filled with a thin
// isotropic scattering medium
func NewFoggyCornellScene(aspect float64) *Scene {
	s := NewCornellScene(aspect)
	s.SetMedium(media.NewHomogeneous(
		core.NewVec3(0.0002, 0.0002, 0.0002), // absorption
		core.NewVec3(0.0010, 0.0010, 0.0010), // scattering
		media.NewIsotropic(),
	))
	return s
}
