package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera renderer.CameraConfig
	Shapes []core.Hittable         // Objects in the scene
	Lights *geometry.HittableList // Surfaces importance sampled as lights
	World  core.Hittable          // Acceleration structure over Shapes, built by Preprocess
}

// NewScene creates an empty scene with the given camera
func NewScene(name string, camera renderer.CameraConfig) *Scene {
	return &Scene{
		Name:   name,
		Camera: camera,
		Lights: geometry.NewHittableList(),
	}
}

// AddShape adds renderable objects to the scene
func (s *Scene) AddShape(shapes ...core.Hittable) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight registers a surface for light sampling without rendering it.
// Sampling targets do not need a material.
func (s *Scene) AddLight(light core.Hittable) {
	s.Lights.Add(light)
}

// AddQuadLight adds a rectangular area light emitting from the side U × V points to
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Vec3) *geometry.Quad {
	quad := geometry.NewQuad(corner, u, v, material.NewDiffuseLight(emission))
	s.AddShape(quad)
	s.AddLight(quad)
	return quad
}

// AddSphereLight adds a spherical light to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, material.NewDiffuseLight(emission))
	s.AddShape(sphere)
	s.AddLight(sphere)
	return sphere
}

// NewGroundQuad creates a horizontal quad centered at center with its normal pointing up
func NewGroundQuad(center core.Vec3, size float64, material core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// (0,0,size) × (size,0,0) points along +Y
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}

// Preprocess builds the acceleration structure over the scene's shapes
func (s *Scene) Preprocess() {
	s.World = geometry.NewBVH(s.Shapes)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitives(shape)
	}
	return count
}

// countPrimitives counts primitives in a single shape, looking through wrappers
func countPrimitives(shape core.Hittable) int {
	switch obj := shape.(type) {
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Objects {
			count += countPrimitives(child)
		}
		return count
	case *geometry.TriangleMesh:
		return obj.GetTriangleCount()
	case *geometry.Translate:
		return countPrimitives(obj.Object)
	case *geometry.RotateY:
		return countPrimitives(obj.Object)
	default:
		return 1
	}
}
