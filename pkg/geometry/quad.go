package geometry

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// NewQuad builds the parallelogram spanned by corner, u and v as two
// triangles sharing the diagonal corner+u to corner+v. Both triangles have
// normal normalize(u × v).
func NewQuad(corner, u, v core.Vec3, reflectance core.Spectrum, bsdf material.BSDF) [2]*Triangle {
	p0 := corner
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)

	return [2]*Triangle{
		NewTriangle(p0, p1, p3, reflectance, bsdf),
		NewTriangle(p1, p2, p3, reflectance, bsdf),
	}
}

// NewEmissiveQuad builds a light panel from two emissive triangles
func NewEmissiveQuad(corner, u, v core.Vec3, emission core.Spectrum) [2]*EmissiveTriangle {
	white := core.NewSpectrum(1)
	tris := NewQuad(corner, u, v, white, nil)
	return [2]*EmissiveTriangle{
		NewEmissiveTriangle(tris[0], emission),
		NewEmissiveTriangle(tris[1], emission),
	}
}
