package geometry

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center      core.Vec3
	Radius      float64
	Reflectance core.Spectrum
	Emitted     core.Spectrum
	Material    material.BSDF // optional
}

// NewSphere creates a new non-emissive sphere
func NewSphere(center core.Vec3, radius float64, reflectance core.Spectrum, bsdf material.BSDF) *Sphere {
	return &Sphere{
		Center:      center,
		Radius:      radius,
		Reflectance: reflectance,
		Material:    bsdf,
	}
}

// NewEmissiveSphere creates a sphere that emits light
func NewEmissiveSphere(center core.Vec3, radius float64, emission core.Spectrum) *Sphere {
	return &Sphere{
		Center:      center,
		Radius:      radius,
		Reflectance: core.NewSpectrum(1),
		Emitted:     emission,
	}
}

// Hit tests if a ray intersects with the sphere.
// The near root is used when it lies past tMin, otherwise the far root, so a
// ray starting inside the sphere hits its far wall.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-halfB - sqrtD) / a
	t2 := (-halfB + sqrtD) / a

	root := t1
	if root <= tMin {
		root = t2
	}
	if root <= tMin || root > tMax {
		return false
	}

	rec.T = root
	rec.Point = ray.At(root)
	outwardNormal := rec.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.Reflectance = s.Reflectance
	rec.Emission = s.Emitted
	rec.IsEmissive = s.IsEmissive()
	rec.Entity = s

	return true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

func (s *Sphere) Emission() core.Spectrum {
	return s.Emitted
}

func (s *Sphere) IsEmissive() bool {
	return s.Emitted.Max() > 0
}

// SampleLight samples the sphere surface uniformly by area
func (s *Sphere) SampleLight(refPoint core.Vec3, sampler core.Sampler) (LightSample, bool) {
	normal := core.SampleOnUnitSphere(sampler.Get2D())
	return LightSample{
		Point:  s.Center.Add(normal.Multiply(s.Radius)),
		Normal: normal,
		PDF:    1.0 / (4.0 * math.Pi * s.Radius * s.Radius),
	}, true
}

func (s *Sphere) BSDF() material.BSDF {
	return s.Material
}
