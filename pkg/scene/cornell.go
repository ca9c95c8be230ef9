package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewCornellScene creates the classic Cornell box with a tall rotated box,
// a glass sphere and a ceiling light
func NewCornellScene() *Scene {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 1.0
	config.ImageWidth = 600
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	config.Background = core.NewVec3(0, 0, 0)
	config.VFov = 40
	config.LookFrom = core.NewVec3(278, 278, -800) // Outside the box looking in
	config.LookAt = core.NewVec3(278, 278, 0)
	config.VUp = core.NewVec3(0, 1, 0)
	config.DefocusAngle = 0

	s := NewScene("cornell", config)

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	s.AddShape(
		// Right wall (green) at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)

	// Ceiling light, facing down, slightly below the ceiling
	s.AddQuadLight(
		core.NewVec3(343, boxSize-1, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		core.NewVec3(15, 15, 15),
	)

	// Tall box
	box := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.AddShape(geometry.NewTranslate(geometry.NewRotateY(box, 15), core.NewVec3(265, 0, 295)))

	// Glass sphere, also sampled as a light so caustics converge
	glass := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	s.AddShape(glass)
	s.AddLight(geometry.NewSphere(core.NewVec3(190, 90, 190), 90, nil))

	s.Preprocess()
	return s
}
