package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewQuadLightScene creates a single square light hanging over a diffuse floor
func NewQuadLightScene() *Scene {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 16.0 / 9.0
	config.ImageWidth = 400
	config.SamplesPerPixel = 64
	config.MaxDepth = 10
	config.VFov = 50
	config.LookFrom = core.NewVec3(0, 2.5, 6)
	config.LookAt = core.NewVec3(0, 0.5, 0)
	config.VUp = core.NewVec3(0, 1, 0)

	s := NewScene("quad-light", config)

	floor := NewGroundQuad(core.NewVec3(0, 0, 0), 10, material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6)))
	s.AddShape(floor)

	// (2,0,0) × (0,0,2) points down toward the floor
	s.AddQuadLight(
		core.NewVec3(-1, 2, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(8, 8, 8),
	)

	s.Preprocess()
	return s
}
