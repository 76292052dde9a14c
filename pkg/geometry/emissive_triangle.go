package geometry

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// EmissiveTriangle wraps a Triangle and turns it into a light source.
// Geometry, bounds and light sampling come from the wrapped triangle.
type EmissiveTriangle struct {
	*Triangle
	emission core.Spectrum
}

// NewEmissiveTriangle wraps triangle with the given emission
func NewEmissiveTriangle(triangle *Triangle, emission core.Spectrum) *EmissiveTriangle {
	return &EmissiveTriangle{Triangle: triangle, emission: emission}
}

// Hit forwards to the triangle and overrides the emissive part of the record
func (e *EmissiveTriangle) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	if !e.Triangle.Hit(ray, tMin, tMax, rec) {
		return false
	}
	rec.Emission = e.emission
	rec.IsEmissive = true
	rec.Entity = e
	return true
}

func (e *EmissiveTriangle) Emission() core.Spectrum {
	return e.emission
}

func (e *EmissiveTriangle) IsEmissive() bool {
	return true
}

// BSDF is nil: lights do not scatter
func (e *EmissiveTriangle) BSDF() material.BSDF {
	return nil
}
