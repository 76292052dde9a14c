package scene

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// NewRoomScene creates a Cornell-style room built from triangles and lit by
// an emissive panel under the ceiling
func NewRoomScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(278, 278, -500), // Position camera outside the box looking in
		LookAt: core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:     core.NewVec3(0, 1, 0),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	s := New("room", geometry.NewCamera(cameraConfig))

	whiteRGB := core.NewVec3(0.73, 0.73, 0.73)
	redRGB := core.NewVec3(0.65, 0.05, 0.05)
	greenRGB := core.NewVec3(0.12, 0.45, 0.15)

	white := core.SpectrumFromRGB(whiteRGB)
	red := core.SpectrumFromRGB(redRGB)
	green := core.SpectrumFromRGB(greenRGB)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	walls := []struct {
		corner, u, v core.Vec3
		color        core.Spectrum
		rgb          core.Vec3
	}{
		// Floor - XZ plane at y=0
		{core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white, whiteRGB},
		// Ceiling - XZ plane at y=boxSize
		{core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white, whiteRGB},
		// Back wall - XY plane at z=boxSize
		{core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white, whiteRGB},
		// Left wall - YZ plane at x=0
		{core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red, redRGB},
		// Right wall - YZ plane at x=boxSize
		{core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green, greenRGB},
	}
	for _, w := range walls {
		for _, tri := range geometry.NewQuad(w.corner, w.u, w.v, w.color, material.NewLambertianRGB(w.rgb)) {
			s.Add(tri)
		}
	}

	// Ceiling light (smaller panel in the center of the ceiling)
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	panel := geometry.NewEmissiveQuad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset), // slightly below ceiling
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		core.NewSpectrum(4),
	)
	for _, tri := range panel {
		s.Add(tri)
	}

	// Diffuse sphere with a proper BSDF
	s.Add(geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, white, material.NewLambertian(white)))

	// Tall block without a BSDF, shaded by the hemisphere fallback
	for _, tri := range geometry.NewAxisAlignedBox(
		core.NewVec3(370, 165, 351),
		core.NewVec3(82.5, 165, 82.5),
		white,
		nil,
	) {
		s.Add(tri)
	}

	return s
}
