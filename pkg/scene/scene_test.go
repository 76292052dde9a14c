package scene

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
)

func testCamera() *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
	})
}

func TestScene_AddTracksEmitters(t *testing.T) {
	s := New("test", testCamera())
	grey := core.NewSpectrum(0.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, grey, nil),
		geometry.NewEmissiveSphere(core.NewVec3(0, 5, -5), 1, core.NewSpectrum(2)),
	)
	tri := geometry.NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), grey, nil)
	s.Add(tri, geometry.NewEmissiveTriangle(tri, core.NewSpectrum(1)))

	emitters := s.Emitters()
	if len(emitters) != 2 {
		t.Fatalf("Expected 2 emitters, got %d", len(emitters))
	}
	if emitters[0] != s.Entities[1] || emitters[1] != s.Entities[3] {
		t.Errorf("Emitters should reference the emissive entities in insertion order")
	}
}

func TestScene_AddAfterBuildDropsBVH(t *testing.T) {
	s := New("test", testCamera())
	grey := core.NewSpectrum(0.5)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, grey, nil))

	stats := s.BuildBVH(1)
	if s.BVH == nil || stats.LeafNodes != 1 {
		t.Fatalf("Expected a one-leaf BVH, got %+v", stats)
	}

	// A closer sphere added later must still be found
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, grey, nil))
	if s.BVH != nil {
		t.Fatalf("Adding an entity should drop the stale BVH")
	}

	var rec geometry.HitRecord
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if !s.Hit(ray, 0, math.Inf(1), &rec) {
		t.Fatal("Expected a hit")
	}
	if math.Abs(rec.T-1.5) > 1e-9 {
		t.Errorf("Expected the new sphere at t=1.5, got %f", rec.T)
	}
}

func TestScene_BVHMatchesLinear(t *testing.T) {
	s := NewRoomScene()
	s.BuildBVH(7)
	sampler := core.NewSeededSampler(99, 0)

	for i := 0; i < 200; i++ {
		s2 := sampler.Get2D()
		origin := core.NewVec3(50+s2.X*455, 50+s2.Y*455, 50+sampler.Get1D()*455)
		dir := core.SampleOnUnitSphere(sampler.Get2D())
		ray := core.NewRay(origin, dir)

		var bvhRec, linRec geometry.HitRecord
		bvhHit := s.Hit(ray, 0, math.Inf(1), &bvhRec)
		linHit := s.HitLinear(ray, 0, math.Inf(1), &linRec)

		if bvhHit != linHit {
			t.Fatalf("Ray %d: BVH hit=%v, linear hit=%v", i, bvhHit, linHit)
		}
		if bvhHit && math.Abs(bvhRec.T-linRec.T) > 1e-9 {
			t.Errorf("Ray %d: BVH t=%f, linear t=%f", i, bvhRec.T, linRec.T)
		}
	}
}

func TestScene_Occluded(t *testing.T) {
	s := New("test", testCamera())
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.NewSpectrum(0.5), nil))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		maxT     float64
		occluded bool
	}{
		{"blocker before max", 10, true},
		{"blocker beyond max", 3.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Occluded(ray, tt.maxT); got != tt.occluded {
				t.Errorf("Occluded = %v, want %v", got, tt.occluded)
			}
		})
	}
}

func TestScene_AddAreaLight(t *testing.T) {
	s := New("test", testCamera())
	light := s.AddAreaLight(core.NewVec3(-1, 3, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), core.NewSpectrum(1))

	if len(s.Lights) != 1 || s.Lights[0] != light {
		t.Fatalf("Expected the area light to be registered")
	}
	if len(s.Emitters()) != 2 {
		t.Errorf("Expected the panel to add two emissive triangles, got %d", len(s.Emitters()))
	}
}

func TestNewRoomScene_Contents(t *testing.T) {
	s := NewRoomScene()

	// 5 walls x 2 + panel 2 + sphere 1 + box 12
	if s.PrimitiveCount() != 25 {
		t.Errorf("Expected 25 entities, got %d", s.PrimitiveCount())
	}
	if len(s.Emitters()) != 2 {
		t.Errorf("Expected 2 emissive panel triangles, got %d", len(s.Emitters()))
	}
	if len(s.Lights) != 0 {
		t.Errorf("Room is lit by emitters only, got %d lights", len(s.Lights))
	}
	bounds := s.Bounds()
	if !bounds.Contains(core.NewVec3(278, 278, 278)) {
		t.Errorf("Room bounds %v should contain the room center", bounds)
	}
}

func TestDemoOrbitCamera(t *testing.T) {
	for _, time := range []float64{0, 0.7, 2.5} {
		config := DemoOrbitCamera(time)
		offset := config.Center.Subtract(demoTarget)
		horizontal := math.Hypot(offset.X, offset.Z)
		if math.Abs(horizontal-demoOrbitRadius) > 1e-9 || config.Center.Y != 2 {
			t.Errorf("time %f: camera %v is off the orbit", time, config.Center)
		}
	}

	s := NewDemoScene()
	if len(s.Emitters()) != 0 || len(s.Lights) != 0 {
		t.Errorf("Demo scene should have no light sources")
	}
}
