package material

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// BSDF describes how a surface redistributes incoming light
type BSDF interface {
	// Evaluate returns the scattering value for light leaving along wo
	// given the incoming direction wi and the shading normal
	Evaluate(wi, wo, normal core.Vec3) core.Spectrum

	// Sample draws a scattered direction for the bounce and returns it
	// with its probability density
	Sample(wi, normal core.Vec3, sampler core.Sampler) (core.Vec3, float64)
}
