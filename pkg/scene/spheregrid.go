package scene

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/lights"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	// Convert hue from degrees to radians
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// Convert from OKLAB to linear RGB
	// Using simplified approximation for OKLAB to RGB conversion
	// This is not perfectly accurate but good enough for our purposes

	// First convert to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	// Clamp to [0, 1] range
	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// NewSphereGridScene creates a grid of colored diffuse spheres on a ground
// panel, lit by a registered area light and point light
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(4.5, 6, 18),    // Back from the grid and above it
		LookAt: core.NewVec3(4.5, 0.8, 4.5), // Center of grid, slightly lower
		Up:     core.NewVec3(0, 1, 0),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	s := New("sphere-grid", geometry.NewCamera(cameraConfig))

	// Warm panel high above the grid, facing down
	s.AddAreaLight(
		core.NewVec3(2.5, 12, 2.5),
		core.NewVec3(4, 0, 0),
		core.NewVec3(0, 0, 4),
		core.SpectrumFromRGB(core.NewVec3(1.0, 0.95, 0.85)).Multiply(0.08),
	)
	// Cool fill light from the camera side
	s.AddLight(lights.NewPointLight(
		core.NewVec3(4.5, 8, 16),
		core.SpectrumFromRGB(core.NewVec3(0.7, 0.8, 1.0)).Multiply(60),
	))

	// Ground panel (gray lambertian)
	ground := core.NewSpectrum(0.5)
	for _, tri := range geometry.NewQuad(
		core.NewVec3(-20, 0, -20),
		core.NewVec3(0, 0, 50),
		core.NewVec3(50, 0, 0),
		ground,
		material.NewLambertian(ground),
	) {
		s.Add(tri)
	}

	gridSize := 10

	// Fit the grid into roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Min(0.35, spacing*0.35)

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5 // Center around x=4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5 // Center around z=4.5
			position := core.NewVec3(x, sphereRadius, z)

			// Hue varies across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			color := oklchToRGB(lightness, chroma, hue)
			reflectance := core.SpectrumFromRGB(color)

			// Every third sphere has no BSDF and uses the hemisphere fallback
			var bsdf material.BSDF
			if (i+j)%3 != 0 {
				bsdf = material.NewLambertian(reflectance)
			}
			s.Add(geometry.NewSphere(position, sphereRadius, reflectance, bsdf))
		}
	}

	return s
}
