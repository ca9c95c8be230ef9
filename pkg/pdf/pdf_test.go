package pdf

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// constantPDF returns a fixed value and direction
type constantPDF struct {
	value     float64
	direction core.Vec3
}

func (c constantPDF) Value(direction core.Vec3) float64 {
	return c.value
}

func (c constantPDF) Generate(sampler core.Sampler) core.Vec3 {
	return c.direction
}

func TestMixturePDF_ValueIsMean(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	light := geometry.NewQuad(core.NewVec3(-1, 3, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), nil)

	densities := []struct {
		name string
		a, b core.PDF
	}{
		{"cosine and sphere", NewCosinePDF(core.NewVec3(0, 1, 0)), NewSpherePDF()},
		{"light and cosine", NewHittablePDF(light, core.Vec3{}), NewCosinePDF(core.NewVec3(0, 1, 0))},
		{"constants", constantPDF{value: 0.2}, constantPDF{value: 3}},
	}

	for _, tt := range densities {
		t.Run(tt.name, func(t *testing.T) {
			mixture := NewMixturePDF(tt.a, tt.b)
			for i := 0; i < 200; i++ {
				d := core.RandomUnitVector(sampler)
				expected := (tt.a.Value(d) + tt.b.Value(d)) / 2
				if got := mixture.Value(d); math.Abs(got-expected) > 1e-12 {
					t.Fatalf("Direction %v: expected %f, got %f", d, expected, got)
				}
			}
		})
	}
}

func TestMixturePDF_GenerateChoosesEvenly(t *testing.T) {
	left := constantPDF{value: 1, direction: core.NewVec3(-1, 0, 0)}
	right := constantPDF{value: 1, direction: core.NewVec3(1, 0, 0)}
	mixture := NewMixturePDF(left, right)
	sampler := core.NewSeededSampler(7)

	const n = 10000
	lefts := 0
	for i := 0; i < n; i++ {
		if mixture.Generate(sampler).X < 0 {
			lefts++
		}
	}
	if fraction := float64(lefts) / n; math.Abs(fraction-0.5) > 0.02 {
		t.Errorf("Expected half the samples from each component, got %f", fraction)
	}
}

// Sampling the mixture and histogramming cos θ must match the mixture's own density.
func TestMixturePDF_HistogramMatchesValue(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	mixture := NewMixturePDF(NewCosinePDF(normal), NewSpherePDF())
	sampler := core.NewSeededSampler(42)

	const bins = 10
	const n = 200000
	var counts [bins]int
	for i := 0; i < n; i++ {
		z := mixture.Generate(sampler).Normalize().Z
		// Map z ∈ [-1, 1] onto bins
		bin := int((z + 1) / 2 * bins)
		if bin == bins {
			bin--
		}
		counts[bin]++
	}

	for bin := 0; bin < bins; bin++ {
		a := -1 + 2*float64(bin)/bins
		b := -1 + 2*float64(bin+1)/bins

		// P(z ∈ [a,b]) for the uniform sphere is (b-a)/2; for the cosine
		// lobe it is b²-a² restricted to z ≥ 0
		sphere := (b - a) / 2
		cosine := 0.0
		if a >= 0 {
			cosine = b*b - a*a
		}
		expected := 0.5*sphere + 0.5*cosine

		got := float64(counts[bin]) / n
		if math.Abs(got-expected) > 0.005 {
			t.Errorf("Bin [%.1f, %.1f]: expected %f, got %f", a, b, expected, got)
		}
	}
}

// E[f(d)/p(d)] over samples of p estimates the integral of f. With f = cos θ
// over the upper hemisphere the integral is π.
func TestMixturePDF_ConsistentEstimator(t *testing.T) {
	light := geometry.NewQuad(core.NewVec3(-1, 3, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), nil)
	origin := core.Vec3{}
	mixture := NewMixturePDF(NewHittablePDF(light, origin), NewCosinePDF(core.NewVec3(0, 1, 0)))
	sampler := core.NewSeededSampler(42)

	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		d := mixture.Generate(sampler)
		v := mixture.Value(d)
		if v <= 0 {
			t.Fatalf("Sampled direction %v has zero density", d)
		}
		sum += math.Max(0, d.Normalize().Y) / v
	}

	if got := sum / n; math.Abs(got-math.Pi) > 0.02*math.Pi {
		t.Errorf("Expected π, got %f", got)
	}
}

func TestCosinePDF(t *testing.T) {
	p := NewCosinePDF(core.NewVec3(0, 1, 0))

	if got := p.Value(core.NewVec3(0, 2, 0)); math.Abs(got-1/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/π along the normal, got %f", got)
	}
	if got := p.Value(core.NewVec3(0, -1, 0)); got != 0 {
		t.Errorf("Expected 0 below the surface, got %f", got)
	}

	sampler := core.NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		if d := p.Generate(sampler); d.Y < 0 {
			t.Fatalf("Generated direction %v below the hemisphere", d)
		}
	}
}

func TestHittablePDF_Delegates(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	origin := core.NewVec3(0, 0, 0)
	p := NewHittablePDF(sphere, origin)

	d := core.NewVec3(0, 0, -1)
	if p.Value(d) != sphere.PDFValue(origin, d) {
		t.Error("Expected Value to delegate to PDFValue")
	}

	sampler := core.NewSeededSampler(1)
	for i := 0; i < 100; i++ {
		if p.Value(p.Generate(sampler)) <= 0 {
			t.Fatal("Expected generated directions to reach the sphere")
		}
	}
}
