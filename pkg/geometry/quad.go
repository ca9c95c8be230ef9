package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PlanarShape selects which region of a quad's plane counts as the surface.
// All shapes share the same plane intersection; only the interior test,
// the area and the area sampling differ.
type PlanarShape int

const (
	// Parallelogram covers (a, b) ∈ [0,1]²
	Parallelogram PlanarShape = iota
	// Triangle covers a, b ≥ 0 with a + b ≤ 1
	Triangle
	// Ellipse is centered on the corner, with U and V as its semi-axes
	Ellipse
)

// Quad represents a planar primitive defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner (or the center, for ellipses)
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (U × V normalized)
	Material core.Material // Material of the quad
	Shape    PlanarShape   // Interior test
	D        float64       // Plane equation constant: normal · p = D
	W        core.Vec3     // n / (n·n) with n = U × V, for plane coordinates
	Area     float64       // Surface area, used for light sampling
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	return newPlanar(corner, u, v, material, Parallelogram)
}

// NewTriangle creates the triangle with vertices corner, corner+u and corner+v
func NewTriangle(corner, u, v core.Vec3, material core.Material) *Quad {
	return newPlanar(corner, u, v, material, Triangle)
}

// NewEllipse creates an ellipse centered at center with semi-axes u and v
func NewEllipse(center, u, v core.Vec3, material core.Material) *Quad {
	return newPlanar(center, u, v, material, Ellipse)
}

// NewDisc creates a disc of the given radius centered at center, facing normal
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) *Quad {
	basis := core.NewONB(normal)
	// V × U points along W
	return NewEllipse(center, basis.V.Multiply(radius), basis.U.Multiply(radius), material)
}

func newPlanar(corner, u, v core.Vec3, material core.Material, shape PlanarShape) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	q := &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		Shape:    shape,
		D:        normal.Dot(corner),
		W:        n.Divide(n.Dot(n)),
	}

	switch shape {
	case Triangle:
		q.Area = n.Length() / 2
		q.bbox = core.NewAABBFromPoints(corner, corner.Add(u), corner.Add(v))
	case Ellipse:
		q.Area = math.Pi * n.Length()
		q.bbox = core.NewAABBFromPoints(
			corner.Subtract(u).Subtract(v), corner.Add(u).Add(v),
			corner.Add(u).Subtract(v), corner.Subtract(u).Add(v),
		)
	default:
		q.Area = n.Length()
		q.bbox = core.NewAABBFromPoints(corner, corner.Add(u).Add(v), corner.Add(u), corner.Add(v))
	}

	return q
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	u, v, inside := q.interior(alpha, beta)
	if !inside {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
		U:        u,
		V:        v,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// interior reports whether plane coordinates (a, b) lie on the shape and
// returns the surface coordinates for that point
func (q *Quad) interior(a, b float64) (u, v float64, inside bool) {
	unit := core.NewInterval(0, 1)
	switch q.Shape {
	case Triangle:
		if a <= 0 || b <= 0 || a+b >= 1 {
			return 0, 0, false
		}
		return a, b, true
	case Ellipse:
		if math.Sqrt(a*a+b*b) >= 1 {
			return 0, 0, false
		}
		return a/2 + 0.5, b/2 + 0.5, true
	default:
		if !unit.Contains(a) || !unit.Contains(b) {
			return 0, 0, false
		}
		return a, b, true
	}
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDFValue treats the quad as a uniformly emitting area light and converts
// its area density to solid angle as seen from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	hit, isHit := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())
	if cosine == 0 || q.Area == 0 {
		return 0
	}

	return distanceSquared / (cosine * q.Area)
}

// Random returns the direction from origin to a uniformly chosen point on the shape
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return q.samplePoint(sampler).Subtract(origin)
}

func (q *Quad) samplePoint(sampler core.Sampler) core.Vec3 {
	switch q.Shape {
	case Triangle:
		s := sampler.Get2D()
		a, b := s.X, s.Y
		if a+b > 1 {
			a, b = 1-a, 1-b
		}
		return q.Corner.Add(q.U.Multiply(a)).Add(q.V.Multiply(b))
	case Ellipse:
		p := core.RandomInUnitDisk(sampler)
		return q.Corner.Add(q.U.Multiply(p.X)).Add(q.V.Multiply(p.Y))
	default:
		s := sampler.Get2D()
		return q.Corner.Add(q.U.Multiply(s.X)).Add(q.V.Multiply(s.Y))
	}
}
