package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Translate moves a child surface by a fixed offset
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}
}

// Hit moves the ray into the child's frame, then moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	offsetRay := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction)

	hit, isHit := t.Object.Hit(offsetRay, rayT)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the child's box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// PDFValue delegates to the child with origin expressed in the child's frame
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return t.Object.PDFValue(origin.Subtract(t.Offset), direction)
}

// Random delegates to the child with origin expressed in the child's frame
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.Object.Random(origin.Subtract(t.Offset), sampler)
}

// RotateY rotates a child surface about the Y axis
type RotateY struct {
	Object  core.Hittable
	Angle   float64 // degrees
	toWorld mgl64.Mat3
	toLocal mgl64.Mat3
	bbox    core.AABB
}

// NewRotateY wraps object so it appears rotated by angle degrees about +Y.
// The box is the axis-aligned extent of the child's rotated corners, which
// encloses the rotated child but is generally not the tightest such box.
func NewRotateY(object core.Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:  object,
		Angle:   angle,
		toWorld: mgl64.Rotate3DY(radians),
		toLocal: mgl64.Rotate3DY(-radians),
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, corner := range object.BoundingBox().Corners() {
		rotated := rotate(r.toWorld, corner)
		min = core.NewVec3(math.Min(min.X, rotated.X), math.Min(min.Y, rotated.Y), math.Min(min.Z, rotated.Z))
		max = core.NewVec3(math.Max(max.X, rotated.X), math.Max(max.Y, rotated.Y), math.Max(max.Z, rotated.Z))
	}
	r.bbox = core.NewAABBFromPoints(min, max)

	return r
}

// Hit rotates the ray into the child's frame, then rotates the hit point
// and normal back into world space
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	localRay := core.NewRay(rotate(r.toLocal, ray.Origin), rotate(r.toLocal, ray.Direction))

	hit, isHit := r.Object.Hit(localRay, rayT)
	if !isHit {
		return nil, false
	}

	hit.Point = rotate(r.toWorld, hit.Point)
	hit.Normal = rotate(r.toWorld, hit.Normal)
	return hit, true
}

// BoundingBox returns the box computed at construction
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

// PDFValue delegates to the child with origin and direction in the child's frame
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return r.Object.PDFValue(rotate(r.toLocal, origin), rotate(r.toLocal, direction))
}

// Random samples in the child's frame and rotates the direction into world space
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return rotate(r.toWorld, r.Object.Random(rotate(r.toLocal, origin), sampler))
}

func rotate(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	rotated := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(rotated.X(), rotated.Y(), rotated.Z())
}
