package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

func TestCamera_Basis(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
	})

	expect := map[string][2]core.Vec3{
		"forward": {camera.Forward, core.NewVec3(0, 0, -1)},
		"right":   {camera.Right, core.NewVec3(1, 0, 0)},
		"up":      {camera.Up, core.NewVec3(0, 1, 0)},
	}
	for name, pair := range expect {
		if pair[0].Subtract(pair[1]).Length() > 1e-12 {
			t.Errorf("Expected %s %v, got %v", name, pair[1], pair[0])
		}
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
	})
	scale := math.Tan(math.Pi / 6)

	tests := []struct {
		name     string
		px, py   float64
		expected core.Vec3
	}{
		{"center", 100, 50, core.NewVec3(0, 0, -1)},
		{"top edge", 100, 0, core.NewVec3(0, scale, -1).Normalize()},
		{"right edge", 200, 50, core.NewVec3(2*scale, 0, -1).Normalize()},
		{"bottom left", 0, 100, core.NewVec3(-2*scale, -scale, -1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.px, tt.py, 200, 100, scale)
			if ray.Origin != camera.Position {
				t.Errorf("Ray should start at the camera position")
			}
			if ray.Direction.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}
