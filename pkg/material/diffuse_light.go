package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emitter that radiates from the front face of its surface
type DiffuseLight struct {
	Emission ColorSource
}

// NewDiffuseLight creates a light with a uniform emitted color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Emitted returns the emission for front-face hits and black for the back face
func (l *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return l.Emission.Evaluate(core.NewVec2(u, v), point)
}

// Scatter always absorbs; lights only emit
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPDF is zero
func (l *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
