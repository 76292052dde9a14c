package integrator

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. depth is 0 for
	// camera rays and grows by one per bounce.
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler, depth int) core.Spectrum
}

// Config holds the shading constants shared by the integrators
type Config struct {
	MaxDepth   int           // Bounces allowed after the camera ray
	ShadowBias float64       // Offset along the normal for secondary rays
	Background core.Spectrum // Returned when a ray escapes the scene
	Ambient    core.Spectrum // Multiplied by the surface reflectance at every hit
}

// DefaultConfig returns the reference shading constants
func DefaultConfig() Config {
	return Config{
		MaxDepth:   3,
		ShadowBias: 1e-4,
		Background: core.Spectrum{},
		Ambient:    core.NewSpectrum(0.1),
	}
}

// offsetOrigin moves a surface point along its normal to avoid self-intersection
func (c Config) offsetOrigin(rec *geometry.HitRecord) core.Vec3 {
	return rec.Point.Add(rec.Normal.Multiply(c.ShadowBias))
}

// visible casts a shadow ray from the biased hit point to target
func (c Config) visible(s *scene.Scene, rec *geometry.HitRecord, target core.Vec3) bool {
	origin := c.offsetOrigin(rec)
	toTarget := target.Subtract(origin)
	distance := toTarget.Length()
	if distance <= c.ShadowBias {
		return true
	}
	shadowRay := core.NewRay(origin, toTarget.Multiply(1.0/distance))
	return !s.Occluded(shadowRay, distance-c.ShadowBias)
}

// emitterLighting samples one point on every emissive entity and adds the
// unoccluded contributions
func (c Config) emitterLighting(s *scene.Scene, rec *geometry.HitRecord, sampler core.Sampler) core.Spectrum {
	var total core.Spectrum
	for _, emitter := range s.Emitters() {
		sample, ok := emitter.SampleLight(rec.Point, sampler)
		if !ok || sample.PDF <= 0 {
			continue
		}

		toLight := sample.Point.Subtract(rec.Point)
		distanceSquared := toLight.LengthSquared()
		if distanceSquared == 0 {
			continue
		}
		cosTheta := rec.Normal.Dot(toLight.Normalize())
		if cosTheta <= 0 || !c.visible(s, rec, sample.Point) {
			continue
		}

		contribution := rec.Reflectance.
			MultiplySpectrum(emitter.Emission()).
			Multiply(cosTheta / (sample.PDF * distanceSquared))
		total = total.Add(contribution)
	}
	return total
}
