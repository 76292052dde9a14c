package lights

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// PointLight emits from a single position
type PointLight struct {
	Position  core.Vec3
	intensity core.Spectrum
}

// NewPointLight creates a point light
func NewPointLight(position core.Vec3, intensity core.Spectrum) *PointLight {
	return &PointLight{Position: position, intensity: intensity}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

func (pl *PointLight) Intensity() core.Spectrum {
	return pl.intensity
}

// Sample always returns the light position with pdf 1
func (pl *PointLight) Sample(point core.Vec3, sampler core.Sampler) LightSample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  distance,
		PDF:       1.0,
	}
}

// Illumination follows the inverse square law
func (pl *PointLight) Illumination(point, normal core.Vec3) core.Spectrum {
	toLight := pl.Position.Subtract(point)
	distanceSquared := toLight.LengthSquared()
	if distanceSquared == 0 {
		return core.Spectrum{}
	}
	cosTheta := math.Max(0, normal.Dot(toLight.Normalize()))
	return pl.intensity.Multiply(cosTheta / distanceSquared)
}
