package integrator

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

// fallbackBounceWeight scales the indirect term of surfaces without a BSDF.
// It is a fixed factor rather than cos/pdf, so such surfaces do not conserve
// energy.
const fallbackBounceWeight = 0.5

// SpectralPathIntegrator is a depth-bounded next-event-estimation path tracer.
// Every hit adds ambient, direct and one indirect bounce; there is no
// Russian roulette and no MIS.
type SpectralPathIntegrator struct {
	config Config
}

// NewSpectralPathIntegrator creates a new path tracing integrator
func NewSpectralPathIntegrator(config Config) *SpectralPathIntegrator {
	return &SpectralPathIntegrator{config: config}
}

// RayColor computes the spectral radiance for a single ray
func (pt *SpectralPathIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Spectrum {
	var rec geometry.HitRecord
	if !s.Hit(ray, 0, math.Inf(1), &rec) {
		return pt.config.Background
	}

	// Emissive surfaces do not self-shade
	if rec.IsEmissive {
		return rec.Emission
	}

	color := rec.Reflectance.MultiplySpectrum(pt.config.Ambient)
	color = color.Add(pt.directLighting(s, &rec, sampler))

	if depth < pt.config.MaxDepth {
		color = color.Add(pt.indirectLighting(ray, s, &rec, sampler, depth))
	}

	return color
}

// directLighting uses the registered lights when the scene has any, and the
// emissive entities otherwise
func (pt *SpectralPathIntegrator) directLighting(s *scene.Scene, rec *geometry.HitRecord, sampler core.Sampler) core.Spectrum {
	if len(s.Lights) == 0 {
		return pt.config.emitterLighting(s, rec, sampler)
	}

	var total core.Spectrum
	for _, light := range s.Lights {
		sample := light.Sample(rec.Point, sampler)
		if sample.PDF <= 0 || sample.Distance <= 0 {
			continue
		}

		cosTheta := rec.Normal.Dot(sample.Direction)
		if cosTheta <= 0 {
			continue
		}
		lightPoint := rec.Point.Add(sample.Direction.Multiply(sample.Distance))
		if !pt.config.visible(s, rec, lightPoint) {
			continue
		}

		distanceSquared := sample.Distance * sample.Distance
		contribution := rec.Reflectance.
			MultiplySpectrum(light.Intensity()).
			Multiply(cosTheta / (sample.PDF * distanceSquared))
		total = total.Add(contribution)
	}
	return total
}

// indirectLighting traces one bounce, importance sampled by the surface BSDF
// or drawn uniformly from the hemisphere when the entity has none
func (pt *SpectralPathIntegrator) indirectLighting(ray core.Ray, s *scene.Scene, rec *geometry.HitRecord, sampler core.Sampler, depth int) core.Spectrum {
	origin := pt.config.offsetOrigin(rec)

	var bsdf material.BSDF
	if rec.Entity != nil {
		bsdf = rec.Entity.BSDF()
	}

	if bsdf == nil {
		direction := core.SampleUniformHemisphere(rec.Normal, sampler.Get2D())
		incoming := pt.RayColor(core.NewRay(origin, direction), s, sampler, depth+1)
		return incoming.MultiplySpectrum(rec.Reflectance).Multiply(fallbackBounceWeight)
	}

	direction, pdf := bsdf.Sample(ray.Direction, rec.Normal, sampler)
	if pdf <= 0 {
		return core.Spectrum{}
	}
	cosTheta := math.Max(0, rec.Normal.Dot(direction))
	if cosTheta == 0 {
		return core.Spectrum{}
	}

	weight := bsdf.Evaluate(ray.Direction, direction, rec.Normal).Multiply(cosTheta / pdf)
	incoming := pt.RayColor(core.NewRay(origin, direction), s, sampler, depth+1)
	return incoming.MultiplySpectrum(weight)
}
