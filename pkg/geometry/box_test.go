package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewBox_FacesPointOutward(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1), core.NewVec3(-1, -1, -1), dummyMaterial{})
	if box.Len() != 6 {
		t.Fatalf("Expected 6 faces, got %d", box.Len())
	}

	center := core.NewVec3(0, 0, 0)
	for i, object := range box.Objects {
		face := object.(*Quad)
		faceCenter := face.Corner.Add(face.U.Multiply(0.5)).Add(face.V.Multiply(0.5))
		outward := faceCenter.Subtract(center)
		if face.Normal.Dot(outward) <= 0 {
			t.Errorf("Face %d normal %v points into the box", i, face.Normal)
		}
	}
}

func TestNewBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 3, 4), dummyMaterial{})

	tests := []struct {
		name      string
		ray       core.Ray
		expectedT float64
		normal    core.Vec3
	}{
		{"from +z", core.NewRay(core.NewVec3(1, 1, 10), core.NewVec3(0, 0, -1)), 6, core.NewVec3(0, 0, 1)},
		{"from -x", core.NewRay(core.NewVec3(-5, 1, 1), core.NewVec3(1, 0, 0)), 5, core.NewVec3(-1, 0, 0)},
		{"from +y", core.NewRay(core.NewVec3(1, 8, 1), core.NewVec3(0, -1, 0)), 5, core.NewVec3(0, 1, 0)},
		{"from inside", core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, -1, 0)), 1, core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, testInterval)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if !vecNear(hit.Normal, tt.normal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.normal, hit.Normal)
			}
		})
	}

	bbox := box.BoundingBox()
	if !bbox.Contains(core.NewVec3(0, 0, 0)) || !bbox.Contains(core.NewVec3(2, 3, 4)) {
		t.Errorf("Bounding box %v should contain both corners", bbox)
	}
}
