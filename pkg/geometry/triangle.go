package geometry

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

const (
	triangleEpsilon = 1e-8
	flatBoxPadding  = 1e-4 // keeps axis-aligned triangles from having zero-volume boxes
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2  core.Vec3 // The three vertices
	Reflectance core.Spectrum
	Emitted     core.Spectrum
	Material    material.BSDF // optional
	normal      core.Vec3     // Cached geometric normal
	area        float64
	bbox        core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, reflectance core.Spectrum, bsdf material.BSDF) *Triangle {
	t := &Triangle{
		V0:          v0,
		V1:          v1,
		V2:          v2,
		Reflectance: reflectance,
		Material:    bsdf,
	}

	// Precompute normal and bounding box for efficiency
	cross := v1.Subtract(v0).Cross(v2.Subtract(v0))
	t.normal = cross.Normalize()
	t.area = 0.5 * cross.Length()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2).Pad(flatBoxPadding)

	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if math.Abs(a) < triangleEpsilon {
		return false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tParam := f * edge2.Dot(q)
	if tParam <= triangleEpsilon || tParam <= tMin || tParam > tMax {
		return false
	}

	rec.T = tParam
	rec.Point = ray.At(tParam)
	rec.SetFaceNormal(ray, t.normal)
	rec.Reflectance = t.Reflectance
	rec.Emission = t.Emitted
	rec.IsEmissive = t.IsEmissive()
	rec.Entity = t

	return true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's geometric normal (v1-v0 × v2-v0)
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Area returns the triangle's surface area
func (t *Triangle) Area() float64 {
	return t.area
}

func (t *Triangle) Emission() core.Spectrum {
	return t.Emitted
}

func (t *Triangle) IsEmissive() bool {
	return t.Emitted.Max() > 0
}

// SampleLight samples a point uniformly over the triangle's area
func (t *Triangle) SampleLight(refPoint core.Vec3, sampler core.Sampler) (LightSample, bool) {
	if t.area == 0 {
		return LightSample{}, false
	}
	b1, b2 := core.SampleTriangleBarycentric(sampler.Get2D())
	point := t.V0.
		Add(t.V1.Subtract(t.V0).Multiply(b1)).
		Add(t.V2.Subtract(t.V0).Multiply(b2))

	return LightSample{
		Point:  point,
		Normal: t.normal,
		PDF:    1.0 / t.area,
	}, true
}

func (t *Triangle) BSDF() material.BSDF {
	return t.Material
}
