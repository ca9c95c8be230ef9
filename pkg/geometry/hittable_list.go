package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// HittableList is a composite of surfaces. As a light it samples one member
// uniformly and averages the members' densities.
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
}

// NewHittableList creates a list containing objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the bounding box
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = core.NewAABBUnion(l.bbox, object.BoundingBox())
}

// Len returns the number of members; a nil list has none
func (l *HittableList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Objects)
}

// Hit returns the closest hit among all members
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of the members' boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue returns the mean of the members' densities
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if l.Len() == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// Random samples a direction toward a uniformly chosen member
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if l.Len() == 0 {
		return core.NewVec3(1, 0, 0)
	}

	index := int(sampler.Get1D() * float64(len(l.Objects)))
	if index >= len(l.Objects) {
		index = len(l.Objects) - 1
	}
	return l.Objects[index].Random(origin, sampler)
}
