package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SpherePDF is uniform over all directions
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere density
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

// Value returns 1/(4π) for every direction
func (p *SpherePDF) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate returns a uniform unit vector
func (p *SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.RandomUnitVector(sampler)
}

// CosinePDF is cosine-weighted over the hemisphere around a normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine density around normal
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(normal)}
}

// Value returns max(0, cos θ)/π
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	return math.Max(0, cosine/math.Pi)
}

// Generate returns a cosine-weighted direction around the normal
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Transform(core.RandomCosineDirection(sampler))
}

// HittablePDF samples directions toward a surface, as seen from a fixed origin
type HittablePDF struct {
	objects core.Hittable
	origin  core.Vec3
}

// NewHittablePDF creates a density over directions from origin toward objects
func NewHittablePDF(objects core.Hittable, origin core.Vec3) *HittablePDF {
	return &HittablePDF{objects: objects, origin: origin}
}

// Value delegates to the surface's PDFValue
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.objects.PDFValue(p.origin, direction)
}

// Generate delegates to the surface's Random
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.objects.Random(p.origin, sampler)
}

// MixturePDF is an equal-weight mixture of two densities
type MixturePDF struct {
	p [2]core.PDF
}

// NewMixturePDF creates the 50/50 mixture of p0 and p1
func NewMixturePDF(p0, p1 core.PDF) *MixturePDF {
	return &MixturePDF{p: [2]core.PDF{p0, p1}}
}

// Value returns the mean of both densities
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate samples from one of the two densities, chosen with equal probability
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
