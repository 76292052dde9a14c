package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

func TestNewAxisAlignedBox(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	size := core.NewVec3(1, 2, 0.5)
	triangles := NewAxisAlignedBox(center, size, grey(), nil)

	if len(triangles) != 12 {
		t.Fatalf("Expected 12 triangles, got %d", len(triangles))
	}

	totalArea := 0.0
	for i, tri := range triangles {
		totalArea += tri.Area()

		// Outward normal: moving from the face toward the center goes against it
		faceCenter := tri.V0.Add(tri.V1).Add(tri.V2).Multiply(1.0 / 3.0)
		if center.Subtract(faceCenter).Dot(tri.Normal()) >= 0 {
			t.Errorf("Triangle %d normal %v points inward", i, tri.Normal())
		}
	}

	// 2 * (2*4 + 2*1 + 4*1) for a 2x4x1 box
	expectedArea := 28.0
	if math.Abs(totalArea-expectedArea) > 1e-9 {
		t.Errorf("Expected surface area %f, got %f", expectedArea, totalArea)
	}
}

func TestAxisAlignedBox_RayFromInside(t *testing.T) {
	triangles := NewAxisAlignedBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), grey(), nil)
	directions := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0.3, 0.1, 1).Normalize(), core.NewVec3(0.2, -0.3, -1).Normalize(),
	}

	for _, dir := range directions {
		ray := core.NewRay(core.NewVec3(0.1, 0.2, -0.1), dir)
		hit := false
		for _, tri := range triangles {
			var rec HitRecord
			if tri.Hit(ray, 0, math.Inf(1), &rec) {
				hit = true
				if rec.Normal.Dot(dir) > 0 {
					t.Errorf("Normal should face the ray from inside")
				}
			}
		}
		if !hit {
			t.Errorf("Ray %v from inside the box escaped", dir)
		}
	}
}
