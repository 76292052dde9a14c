package core

import (
	"math"
	"math/rand/v2"
	"testing"
)

func randomBox(random *rand.Rand) AABB {
	a := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
	b := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
	return NewAABBFromPoints(a, b)
}

func TestAABB_SurroundingContainsBoth(t *testing.T) {
	random := rand.New(rand.NewPCG(42, 0))

	for i := 0; i < 200; i++ {
		a := randomBox(random)
		b := randomBox(random)
		union := Surrounding(a, b)

		for _, corner := range []Vec3{a.Min, a.Max, b.Min, b.Max} {
			if !union.Contains(corner) {
				t.Fatalf("Surrounding(%v, %v) = %v does not contain corner %v", a, b, union, corner)
			}
		}
	}
}

func TestAABB_EmptyIsUnionIdentity(t *testing.T) {
	box := NewAABB(NewVec3(-1, 0, 2), NewVec3(1, 3, 4))
	if got := Surrounding(EmptyAABB(), box); got != box {
		t.Errorf("Expected union with empty box to be %v, got %v", box, got)
	}
	if !EmptyAABB().IsEmpty() {
		t.Error("Expected default box to be empty")
	}
}

func TestAABB_EmptyNeverHit(t *testing.T) {
	random := rand.New(rand.NewPCG(7, 0))
	empty := EmptyAABB()

	rays := []Ray{
		NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)),
		NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1)), // axis parallel on two axes
	}
	for i := 0; i < 100; i++ {
		rays = append(rays, NewRay(
			NewVec3(random.Float64()*4-2, random.Float64()*4-2, random.Float64()*4-2),
			SampleOnUnitSphere(NewVec2(random.Float64(), random.Float64())),
		))
	}

	for _, ray := range rays {
		if _, _, ok := empty.Intersect(ray); ok {
			t.Fatalf("Ray %v intersected the empty box", ray)
		}
	}
}

func TestAABB_Intersect(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		expectHit bool
		tNear     float64
		tFar      float64
	}{
		{"through center", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), true, 4, 6},
		{"from inside", NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)), true, -1, 1},
		{"behind origin", NewRay(NewVec3(5, 0, 0), NewVec3(1, 0, 0)), true, -6, -4},
		{"parallel outside slab", NewRay(NewVec3(-5, 2, 0), NewVec3(1, 0, 0)), false, 0, 0},
		{"diagonal miss", NewRay(NewVec3(-5, 3, 0), NewVec3(1, 0.1, 0)), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tNear, tFar, ok := box.Intersect(tt.ray)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(tNear-tt.tNear) > 1e-9 || math.Abs(tFar-tt.tFar) > 1e-9 {
				t.Errorf("Expected interval [%f, %f], got [%f, %f]", tt.tNear, tt.tFar, tNear, tFar)
			}
		})
	}
}

func TestAABB_HitInterval(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))

	if !box.Hit(ray, 0, 100) {
		t.Error("Expected hit within [0, 100]")
	}
	if box.Hit(ray, 0, 3) {
		t.Error("Expected miss when tMax is before the box")
	}
	if box.Hit(ray, 7, 100) {
		t.Error("Expected miss when tMin is after the box")
	}
}

func TestAABB_PadFlatAxis(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	padded := flat.Pad(1e-4)

	if padded.Max.Y <= padded.Min.Y {
		t.Errorf("Expected flat Y axis to gain thickness, got %v", padded)
	}
	if padded.Max.X != 1 || padded.Max.Z != 1 {
		t.Errorf("Expected non-flat axes unchanged, got %v", padded)
	}
}
