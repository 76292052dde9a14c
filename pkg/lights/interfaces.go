package lights

import "github.com/df07/go-spectral-pathtracer/pkg/core"

type LightType string

const (
	LightTypeArea  LightType = "area"
	LightTypePoint LightType = "point"
)

// Light interface for light sources registered on a scene
type Light interface {
	Type() LightType

	// Sample picks a point on the light as seen from point.
	// Direction points FROM the shading point TO the light.
	Sample(point core.Vec3, sampler core.Sampler) LightSample

	// Illumination returns the unshadowed irradiance the light delivers to a
	// surface at point with the given normal
	Illumination(point, normal core.Vec3) core.Spectrum

	// Intensity is the emitted spectrum
	Intensity() core.Spectrum
}

// LightSample contains information about a sampled direction toward a light
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to the sampled point
	PDF       float64
}
