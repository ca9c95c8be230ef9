package core

import (
	"math"
	"testing"
)

func TestONB_Orthonormal(t *testing.T) {
	sampler := NewSeededSampler(42)

	seeds := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
		NewVec3(-1, 0, 0),
		NewVec3(0.95, 0.1, 0.0),
		NewVec3(0.89, 0.2, 0.3),
		NewVec3(3, -4, 12),
	}
	for i := 0; i < 200; i++ {
		seeds = append(seeds, RandomUnitVector(sampler))
	}

	const tolerance = 1e-9
	for _, n := range seeds {
		basis := NewONB(n)

		if !vecApproxEqual(basis.W, n.Normalize(), tolerance) {
			t.Errorf("W should equal normalize(n) for %v, got %v", n, basis.W)
		}
		for name, axis := range map[string]Vec3{"U": basis.U, "V": basis.V, "W": basis.W} {
			if math.Abs(axis.Length()-1) > tolerance {
				t.Errorf("%s not unit length for n=%v: %f", name, n, axis.Length())
			}
		}
		if math.Abs(basis.U.Dot(basis.V)) > tolerance ||
			math.Abs(basis.V.Dot(basis.W)) > tolerance ||
			math.Abs(basis.W.Dot(basis.U)) > tolerance {
			t.Errorf("Axes not orthogonal for n=%v: %v", n, basis)
		}
	}
}

func TestONB_Transform(t *testing.T) {
	basis := NewONB(NewVec3(0, 2, 0))

	// Local +Z maps onto the seed direction
	got := basis.Transform(NewVec3(0, 0, 1))
	if !vecApproxEqual(got, NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected (0, 1, 0), got %v", got)
	}

	// Transform preserves length
	local := NewVec3(0.3, -0.4, 0.5)
	if math.Abs(basis.Transform(local).Length()-local.Length()) > 1e-12 {
		t.Errorf("Transform should preserve length")
	}
}
