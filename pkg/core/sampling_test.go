package core

import (
	"math"
	"testing"
)

func TestSampleUniformHemisphere_StaysAboveNormal(t *testing.T) {
	sampler := NewSeededSampler(42, 0)
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, -1, 0),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		meanCos := 0.0
		const n = 4000
		for i := 0; i < n; i++ {
			dir := SampleUniformHemisphere(normal, sampler.Get2D())
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %f", dir.Length())
			}
			cos := dir.Dot(normal)
			if cos < 0 {
				t.Fatalf("Direction %v is below normal %v", dir, normal)
			}
			meanCos += cos
		}
		// E[cosθ] for a uniform hemisphere is 1/2
		meanCos /= n
		if math.Abs(meanCos-0.5) > 0.03 {
			t.Errorf("Expected mean cosine near 0.5 for normal %v, got %f", normal, meanCos)
		}
	}
}

func TestSampleTriangleBarycentric_InsideTriangle(t *testing.T) {
	sampler := NewSeededSampler(1, 2)
	for i := 0; i < 1000; i++ {
		b1, b2 := SampleTriangleBarycentric(sampler.Get2D())
		if b1 < 0 || b2 < 0 || b1+b2 > 1 {
			t.Fatalf("Barycentric (%f, %f) outside triangle", b1, b2)
		}
	}
}

func TestPixelSampler_Deterministic(t *testing.T) {
	a := NewPixelSampler(99, 1234)
	b := NewPixelSampler(99, 1234)
	c := NewPixelSampler(99, 1235)

	same := true
	differs := false
	for i := 0; i < 16; i++ {
		va, vb, vc := a.Get1D(), b.Get1D(), c.Get1D()
		if va != vb {
			same = false
		}
		if va != vc {
			differs = true
		}
	}

	if !same {
		t.Error("Expected identical streams for the same seed and pixel")
	}
	if !differs {
		t.Error("Expected neighbouring pixels to use different streams")
	}
}
