package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func sphereGrid(n int) []core.Hittable {
	var objects []core.Hittable
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			objects = append(objects, NewSphere(core.NewVec3(float64(i)*2, 0, float64(j)*2), 0.7, dummyMaterial{}))
		}
	}
	return objects
}

func TestBVH_MatchesLinearSearch(t *testing.T) {
	objects := sphereGrid(8)
	objects = append(objects, NewQuad(core.NewVec3(-5, -1, -5), core.NewVec3(30, 0, 0), core.NewVec3(0, 0, 30), dummyMaterial{}))

	bvh := NewBVH(objects)
	list := NewHittableList(objects...)
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(core.RandomRange(sampler, -5, 20), 10, core.RandomRange(sampler, -5, 20))
		target := core.NewVec3(core.RandomRange(sampler, 0, 15), 0, core.RandomRange(sampler, 0, 15))
		ray := core.NewRay(origin, target.Subtract(origin))

		bvhHit, bvhIsHit := bvh.Hit(ray, testInterval)
		listHit, listIsHit := list.Hit(ray, testInterval)

		if bvhIsHit != listIsHit {
			t.Fatalf("Ray %v: BVH hit=%t, list hit=%t", ray, bvhIsHit, listIsHit)
		}
		if bvhIsHit && math.Abs(bvhHit.T-listHit.T) > 1e-9 {
			t.Fatalf("Ray %v: BVH t=%f, list t=%f", ray, bvhHit.T, listHit.T)
		}
	}
}

func TestBVH_Structure(t *testing.T) {
	objects := sphereGrid(4)
	first := objects[0]

	bvh := NewBVH(objects)
	if objects[0] != first {
		t.Error("NewBVH must not reorder the caller's slice")
	}
	if depth := bvh.Depth(); depth < 2 {
		t.Errorf("Expected a split tree for 16 objects, got depth %d", depth)
	}

	bbox := bvh.BoundingBox()
	for _, object := range objects {
		if !bbox.Contains(object.BoundingBox().Min()) || !bbox.Contains(object.BoundingBox().Max()) {
			t.Errorf("Root box %v does not enclose %v", bbox, object.BoundingBox())
		}
	}

	if bvh.PDFValue(core.Vec3{}, core.NewVec3(1, 0, 0)) != 0 {
		t.Error("A BVH is not a light")
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	if _, isHit := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), testInterval); isHit {
		t.Error("Expected an empty BVH to miss")
	}
}

func TestHittableList_ClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 1, dummyMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -10), 1, dummyMaterial{})
	list := NewHittableList(far, near)

	hit, isHit := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), testInterval)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected closest hit at t=2, got %f", hit.T)
	}
}

func TestHittableList_LightSampling(t *testing.T) {
	a := NewQuad(core.NewVec3(-3, 4, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), dummyMaterial{})
	b := NewQuad(core.NewVec3(2, 4, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), dummyMaterial{})
	lights := NewHittableList(a, b)
	origin := core.Vec3{}

	direction := core.NewVec3(-2.5, 4, 0)
	expected := 0.5*a.PDFValue(origin, direction) + 0.5*b.PDFValue(origin, direction)
	if got := lights.PDFValue(origin, direction); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected averaged pdf %f, got %f", expected, got)
	}

	sampler := core.NewSeededSampler(42)
	towardA := 0
	const n = 4000
	for i := 0; i < n; i++ {
		d := lights.Random(origin, sampler)
		if d.X < 0 {
			towardA++
		}
	}
	if fraction := float64(towardA) / n; math.Abs(fraction-0.5) > 0.05 {
		t.Errorf("Expected members chosen uniformly, got %f toward the first", fraction)
	}

	empty := NewHittableList()
	if empty.PDFValue(origin, direction) != 0 {
		t.Error("Expected zero pdf for an empty list")
	}

	var missing *HittableList
	if missing.Len() != 0 || missing.PDFValue(origin, direction) != 0 {
		t.Error("Expected a nil list to behave as empty")
	}
	if d := missing.Random(origin, sampler); d != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected the fallback direction from a nil list, got %v", d)
	}
}
