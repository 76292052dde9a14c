package integrator

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

// DirectLightingIntegrator shades each camera hit with ambient light plus the
// illumination of every registered light that is not in shadow. It never
// bounces.
type DirectLightingIntegrator struct {
	config Config
}

// NewDirectLightingIntegrator creates a direct lighting integrator
func NewDirectLightingIntegrator(config Config) *DirectLightingIntegrator {
	return &DirectLightingIntegrator{config: config}
}

// RayColor ignores depth since no secondary rays are traced
func (dl *DirectLightingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int) core.Spectrum {
	var rec geometry.HitRecord
	if !s.Hit(ray, 0, math.Inf(1), &rec) {
		return dl.config.Background
	}
	if rec.IsEmissive {
		return rec.Emission
	}

	color := rec.Reflectance.MultiplySpectrum(dl.config.Ambient)

	// Scenes lit only by emissive geometry fall back to sampling it
	if len(s.Lights) == 0 {
		return color.Add(dl.config.emitterLighting(s, &rec, sampler))
	}

	for _, light := range s.Lights {
		sample := light.Sample(rec.Point, sampler)
		if sample.Distance <= 0 {
			continue
		}
		lightPoint := rec.Point.Add(sample.Direction.Multiply(sample.Distance))
		if !dl.config.visible(s, &rec, lightPoint) {
			continue
		}
		color = color.Add(rec.Reflectance.MultiplySpectrum(light.Illumination(rec.Point, rec.Normal)))
	}

	return color
}
