package core

import "math"

// minAxisExtent is the thickness given to an axis whose extent would otherwise be
// (nearly) zero, so planar primitives still have a box that rays can hit.
const minAxisExtent = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB encloses nothing
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from three per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return NewAABB(
		NewInterval(min.X, max.X),
		NewInterval(min.Y, max.Y),
		NewInterval(min.Z, max.Z),
	)
}

// NewAABBUnion returns an AABB that bounds both boxes
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: NewIntervalUnion(a.X, b.X),
		Y: NewIntervalUnion(a.Y, b.Y),
		Z: NewIntervalUnion(a.Z, b.Z),
	}
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Contains reports whether p lies inside the box (boundary included)
func (aabb AABB) Contains(p Vec3) bool {
	return aabb.X.Contains(p.X) && aabb.Y.Contains(p.Y) && aabb.Z.Contains(p.Z)
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel to this slab: either always inside it or never
		if math.Abs(direction) < 1e-12 {
			if origin < slab.Min || origin > slab.Max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Offset returns the box translated by offset
func (aabb AABB) Offset(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(offset.X),
		Y: aabb.Y.Offset(offset.Y),
		Z: aabb.Z.Offset(offset.Z),
	}
}

// Expand grows every axis of the box by delta
func (aabb AABB) Expand(delta float64) AABB {
	return AABB{
		X: aabb.X.Expand(delta),
		Y: aabb.Y.Expand(delta),
		Z: aabb.Z.Expand(delta),
	}
}

// Centroid returns the center point of the box
func (aabb AABB) Centroid() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	n := 0
	for _, x := range [2]float64{aabb.X.Min, aabb.X.Max} {
		for _, y := range [2]float64{aabb.Y.Min, aabb.Y.Max} {
			for _, z := range [2]float64{aabb.Z.Min, aabb.Z.Max} {
				corners[n] = NewVec3(x, y, z)
				n++
			}
		}
	}
	return corners
}

func (aabb AABB) padToMinimums() AABB {
	if aabb.X.Size() < minAxisExtent {
		aabb.X = aabb.X.Expand(minAxisExtent)
	}
	if aabb.Y.Size() < minAxisExtent {
		aabb.Y = aabb.Y.Expand(minAxisExtent)
	}
	if aabb.Z.Size() < minAxisExtent {
		aabb.Z = aabb.Z.Expand(minAxisExtent)
	}
	return aabb
}
