package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. lights may be nil
	// when the scene has no surfaces to importance sample.
	RayColor(ray core.Ray, depth int, world, lights core.Hittable, sampler core.Sampler) core.Vec3
}
