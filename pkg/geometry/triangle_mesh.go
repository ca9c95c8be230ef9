package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TriangleMesh represents a collection of triangles with efficient ray intersection.
// It uses an internal BVH for fast intersection tests.
type TriangleMesh struct {
	triangles *HittableList // Individual triangles, also used for light sampling
	bvh       *BVHNode      // BVH for fast intersection
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// Each group of 3 indices forms a triangle whose front face follows the
// counter-clockwise winding of its vertices.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	triangles := NewHittableList()
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, index := range []int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i/3, index, len(vertices))
			}
		}

		v0 := vertices[i0]
		triangles.Add(NewTriangle(v0, vertices[i1].Subtract(v0), vertices[i2].Subtract(v0), material))
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVHFromList(triangles),
	}, nil
}

// Hit tests the ray against the mesh's BVH
func (tm *TriangleMesh) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return tm.bvh.Hit(ray, rayT)
}

// BoundingBox returns the bounding box of all triangles
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}

// PDFValue averages the densities of the triangles, matching Random
func (tm *TriangleMesh) PDFValue(origin, direction core.Vec3) float64 {
	return tm.triangles.PDFValue(origin, direction)
}

// Random samples a direction toward a uniformly chosen triangle
func (tm *TriangleMesh) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return tm.triangles.Random(origin, sampler)
}

// GetTriangleCount returns the number of triangles in the mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return tm.triangles.Len()
}

// NewPyramid creates a square-based pyramid standing on base center with the
// given base edge length and height
func NewPyramid(base core.Vec3, size, height float64, material core.Material) *TriangleMesh {
	h := size / 2
	vertices := []core.Vec3{
		base.Add(core.NewVec3(-h, 0, -h)),
		base.Add(core.NewVec3(h, 0, -h)),
		base.Add(core.NewVec3(h, 0, h)),
		base.Add(core.NewVec3(-h, 0, h)),
		base.Add(core.NewVec3(0, height, 0)),
	}
	faces := []int{
		0, 1, 2, 0, 2, 3, // base, facing down
		0, 4, 1,
		1, 4, 2,
		2, 4, 3,
		3, 4, 0,
	}

	mesh, err := NewTriangleMesh(vertices, faces, material)
	if err != nil {
		panic(err) // indices above are fixed
	}
	return mesh
}
