package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// ShadowAcneEpsilon is the smallest accepted hit distance along a ray
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with
// one-sample multiple importance sampling between lights and materials
type PathTracingIntegrator struct {
	Background core.Vec3 // Radiance returned for rays that escape the scene
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: background}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world, lights core.Hittable, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return pt.Background
	}

	colorEmitted := hit.Material.Emitted(ray, hit, hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	if scatter.SkipPDF {
		return colorEmitted.Add(scatter.Attenuation.MultiplyVec(
			pt.RayColor(scatter.SkipPDFRay, depth-1, world, lights, sampler)))
	}

	return colorEmitted.Add(pt.calculateScatteredColor(ray, hit, scatter, depth, world, lights, sampler))
}

// calculateScatteredColor samples the continuation from the light/material
// mixture and weights it by the material's scattering pdf over the mixture density
func (pt *PathTracingIntegrator) calculateScatteredColor(ray core.Ray, hit *core.HitRecord, scatter core.ScatterRecord, depth int, world, lights core.Hittable, sampler core.Sampler) core.Vec3 {
	density := scatter.PDF
	if hasLights(lights) {
		density = pdf.NewMixturePDF(pdf.NewHittablePDF(lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRay(hit.Point, density.Generate(sampler))
	pdfValue := density.Value(scattered.Direction)
	if !(pdfValue > 0) {
		return core.Vec3{}
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	sampleColor := pt.RayColor(scattered, depth-1, world, lights, sampler)

	return scatter.Attenuation.Multiply(scatteringPDF / pdfValue).MultiplyVec(sampleColor)
}

// hasLights reports whether lights has anything to sample
func hasLights(lights core.Hittable) bool {
	if lights == nil {
		return false
	}
	if list, ok := lights.(interface{ Len() int }); ok {
		return list.Len() > 0
	}
	return true
}
