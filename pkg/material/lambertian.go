package material

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse surface
type Lambertian struct {
	Reflectance core.Spectrum
}

// NewLambertian creates a Lambertian BSDF from a reflectance spectrum
func NewLambertian(reflectance core.Spectrum) *Lambertian {
	return &Lambertian{Reflectance: reflectance}
}

// NewLambertianRGB creates a Lambertian BSDF from an RGB albedo
func NewLambertianRGB(albedo core.Vec3) *Lambertian {
	return NewLambertian(core.SpectrumFromRGB(albedo))
}

// Evaluate returns reflectance/π weighted by the cosine toward wo
func (l *Lambertian) Evaluate(wi, wo, normal core.Vec3) core.Spectrum {
	cosine := math.Max(0, normal.Dot(wo))
	return l.Reflectance.Multiply(cosine / math.Pi)
}

// Sample picks a direction uniformly over the hemisphere around the normal
func (l *Lambertian) Sample(wi, normal core.Vec3, sampler core.Sampler) (core.Vec3, float64) {
	direction := core.SampleUniformHemisphere(normal, sampler.Get2D())
	return direction, 1.0 / (2.0 * math.Pi)
}
