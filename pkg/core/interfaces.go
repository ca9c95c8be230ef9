package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is implemented by every renderable surface.
//
// PDFValue and Random make a surface usable as a light for importance
// sampling. Surfaces that cannot act as lights return 0 and an arbitrary
// direction; see NotALight.
type Hittable interface {
	// Hit returns the closest intersection with a parameter inside rayT
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
	// BoundingBox encloses every point Hit can ever return
	BoundingBox() AABB
	// PDFValue is the solid-angle density of sampling direction from origin toward the surface
	PDFValue(origin, direction Vec3) float64
	// Random samples a direction from origin toward the surface
	Random(origin Vec3, sampler Sampler) Vec3
}

// NotALight can be embedded in surfaces that are never sampled as lights
type NotALight struct{}

// PDFValue always returns zero
func (NotALight) PDFValue(origin, direction Vec3) float64 {
	return 0
}

// Random returns a fixed direction
func (NotALight) Random(origin Vec3, sampler Sampler) Vec3 {
	return NewVec3(1, 0, 0)
}

// PDF is a probability density over directions
type PDF interface {
	// Value returns the density of direction; never negative
	Value(direction Vec3) float64
	// Generate draws a direction from the distribution
	Generate(sampler Sampler) Vec3
}

// Material describes how a surface emits and scatters light
type Material interface {
	// Emitted returns light emitted at the hit point
	Emitted(rayIn Ray, hit *HitRecord, u, v float64, point Vec3) Vec3
	// Scatter returns the scatter event, or false if the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterRecord, bool)
	// ScatteringPDF evaluates the material's scattering density for scattered.
	// It must describe the same distribution Scatter samples from.
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit normal, always facing against the incoming ray
	Material  Material // Material of the hit object
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface coordinates
	FrontFace bool     // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord contains the result of material scattering.
//
// Either PDF is set and the integrator samples the next direction from it,
// or SkipPDF is true and SkipPDFRay is the continuation chosen by the material.
type ScatterRecord struct {
	Attenuation Vec3
	PDF         PDF
	SkipPDF     bool
	SkipPDFRay  Ray
}
