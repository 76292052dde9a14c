package lights

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// AreaLight represents a rectangular area light defined by a corner and two
// edge vectors
type AreaLight struct {
	Corner    core.Vec3
	U         core.Vec3 // First edge vector
	V         core.Vec3 // Second edge vector
	Normal    core.Vec3 // normalize(U × V)
	Area      float64   // |U × V|
	intensity core.Spectrum
}

// NewAreaLight creates a new rectangular area light
func NewAreaLight(corner, u, v core.Vec3, intensity core.Spectrum) *AreaLight {
	cross := u.Cross(v)
	return &AreaLight{
		Corner:    corner,
		U:         u,
		V:         v,
		Normal:    cross.Normalize(),
		Area:      cross.Length(),
		intensity: intensity,
	}
}

func (al *AreaLight) Type() LightType {
	return LightTypeArea
}

func (al *AreaLight) Intensity() core.Spectrum {
	return al.intensity
}

// Center returns the midpoint of the rectangle
func (al *AreaLight) Center() core.Vec3 {
	return al.Corner.Add(al.U.Multiply(0.5)).Add(al.V.Multiply(0.5))
}

// Sample picks a point uniformly on the rectangle. The pdf is 1/(area·d²),
// folding the squared distance into the density.
func (al *AreaLight) Sample(point core.Vec3, sampler core.Sampler) LightSample {
	sample := sampler.Get2D()
	lightPoint := al.Corner.Add(al.U.Multiply(sample.X)).Add(al.V.Multiply(sample.Y))

	toLight := lightPoint.Subtract(point)
	distance := toLight.Length()
	if distance == 0 || al.Area == 0 {
		return LightSample{Distance: distance}
	}

	return LightSample{
		Direction: toLight.Multiply(1.0 / distance),
		Distance:  distance,
		PDF:       1.0 / (al.Area * distance * distance),
	}
}

// Illumination approximates the rectangle by its center point
func (al *AreaLight) Illumination(point, normal core.Vec3) core.Spectrum {
	toLight := al.Center().Subtract(point)
	distanceSquared := toLight.LengthSquared()
	if distanceSquared == 0 {
		return core.Spectrum{}
	}
	lightDir := toLight.Normalize()

	cosTheta := math.Max(0, normal.Dot(lightDir))
	lightCosTheta := math.Max(0, -al.Normal.Dot(lightDir))

	return al.intensity.Multiply(cosTheta * lightCosTheta * al.Area / distanceSquared)
}
