package core

import (
	"math"
	"testing"
)

func vecApproxEqual(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecApproxEqual(tt.got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot 12, got %f", dot)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !vecApproxEqual(v, NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", v)
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)

	got := Reflect(v, n)
	if !vecApproxEqual(got, NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected (1, 1, 0), got %v", got)
	}
}

func TestRefract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("normal incidence passes straight through", func(t *testing.T) {
		got := Refract(NewVec3(0, -1, 0), n, 1.0/1.5)
		if !vecApproxEqual(got, NewVec3(0, -1, 0), 1e-12) {
			t.Errorf("Expected (0, -1, 0), got %v", got)
		}
	})

	t.Run("snell's law", func(t *testing.T) {
		theta := math.Pi / 6
		uv := NewVec3(math.Sin(theta), -math.Cos(theta), 0)
		ratio := 1.0 / 1.5

		got := Refract(uv, n, ratio)
		sinOut := got.X / got.Length()
		if math.Abs(sinOut-ratio*math.Sin(theta)) > 1e-9 {
			t.Errorf("Expected sin(out)=%f, got %f", ratio*math.Sin(theta), sinOut)
		}
		if math.Abs(got.Length()-1) > 1e-9 {
			t.Errorf("Expected unit length refraction, got %f", got.Length())
		}
	})
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	got := ray.At(1.5)
	if !vecApproxEqual(got, NewVec3(1, 2, 0), 1e-12) {
		t.Errorf("Expected (1, 2, 0), got %v", got)
	}
}

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	i := NewInterval(0, 1)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{-0.1, false, false},
		{0, true, false},
		{0.5, true, true},
		{1, true, false},
		{1.1, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f): expected %t, got %t", tt.x, tt.contains, got)
		}
		if got := i.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%f): expected %t, got %t", tt.x, tt.surrounds, got)
		}
	}

	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
	if !UniverseInterval.Contains(1e300) {
		t.Error("Universe interval should contain everything")
	}
	if got := i.Clamp(2); got != 1 {
		t.Errorf("Expected clamp to 1, got %f", got)
	}
}
