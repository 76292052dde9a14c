package scene

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
)

const demoOrbitRadius = 4.0

// demoTarget is the red sphere's center, which the orbit camera looks at
var demoTarget = core.NewVec3(0, 0, -5)

// DemoOrbitCamera returns the camera circling the demo scene at time seconds.
// The camera stays 2 units above the ground plane and looks at the sphere.
func DemoOrbitCamera(time float64) geometry.CameraConfig {
	return geometry.CameraConfig{
		Center: core.NewVec3(
			demoOrbitRadius*math.Cos(time),
			2,
			demoOrbitRadius*math.Sin(time)-5,
		),
		LookAt: demoTarget,
		Up:     core.NewVec3(0, 1, 0),
	}
}

// NewDemoScene creates the minimal scene: a red sphere resting above a green
// ground triangle. Neither surface has a BSDF and there are no lights, so the
// image is lit by the ambient term and hemisphere bounces alone.
func NewDemoScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := DemoOrbitCamera(0)
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	s := New("demo", geometry.NewCamera(cameraConfig))

	red := core.SpectrumFromRGB(core.NewVec3(1, 0, 0))
	green := core.SpectrumFromRGB(core.NewVec3(0, 1, 0))

	s.Add(
		geometry.NewSphere(demoTarget, 1.0, red, nil),
		geometry.NewTriangle(
			core.NewVec3(-2, -1, -4),
			core.NewVec3(2, -1, -4),
			core.NewVec3(0, -1, -8),
			green,
			nil,
		),
	)

	return s
}
