package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSpheresScene creates spheres and a pyramid on a checkered ground under
// a small spherical light, with depth of field
func NewSpheresScene() *Scene {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 16.0 / 9.0
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 20
	config.Background = core.NewVec3(0.35, 0.45, 0.6)
	config.VFov = 20
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0.6, 0)
	config.VUp = core.NewVec3(0, 1, 0)
	config.DefocusAngle = 0.6
	config.FocusDist = 10

	s := NewScene("spheres", config)

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	s.AddShape(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.05)),
	)

	// Small spheres on a grid between the large ones
	for a := -3; a <= 3; a++ {
		for b := -2; b <= 2; b++ {
			center := core.NewVec3(float64(a)*1.2+0.3, 0.2, float64(b)*1.2+0.4)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() < 1.3 ||
				center.Subtract(core.NewVec3(-4, 0.2, 0)).Length() < 1.3 ||
				center.Subtract(core.NewVec3(0, 0.2, 0)).Length() < 1.3 {
				continue
			}

			var mat core.Material
			switch (a + b + 6) % 3 {
			case 0:
				mat = material.NewLambertian(core.NewVec3(0.8, 0.3+0.1*float64(b+2), 0.3))
			case 1:
				mat = material.NewMetal(core.NewVec3(0.7, 0.7, 0.8), 0.1*float64(a+3))
			default:
				mat = material.NewDielectric(1.5)
			}
			s.AddShape(geometry.NewSphere(center, 0.2, mat))
		}
	}

	// Gold pyramid behind the glass sphere
	s.AddShape(geometry.NewPyramid(core.NewVec3(0, 0, -3.2), 1.2, 1.0, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2)))

	s.AddSphereLight(core.NewVec3(0, 5, 2), 0.75, core.NewVec3(20, 18, 15))

	s.Preprocess()
	return s
}
