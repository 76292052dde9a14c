package geometry

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// Entity is anything in the scene that can be hit by rays
type Entity interface {
	BoundingBox() core.AABB

	// Hit fills rec with the nearest intersection in (tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool

	Emission() core.Spectrum
	IsEmissive() bool

	// SampleLight picks a point on the surface for direct lighting.
	// Returns false if the entity cannot be sampled as a light.
	SampleLight(refPoint core.Vec3, sampler core.Sampler) (LightSample, bool)

	// BSDF returns the scattering model, or nil for the ambient fallback
	BSDF() material.BSDF
}

// LightSample is a point sampled on an emissive surface
type LightSample struct {
	Point  core.Vec3
	Normal core.Vec3
	PDF    float64 // per unit area
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T           float64       // Parameter t along the ray
	Point       core.Vec3     // Point of intersection
	Normal      core.Vec3     // Surface normal, facing against the ray
	Reflectance core.Spectrum // Surface color
	Emission    core.Spectrum // Emitted radiance
	IsEmissive  bool
	Entity      Entity // Entity that produced the hit; not owned
}

// SetFaceNormal orients the normal against the incoming ray
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	if ray.Direction.Dot(outwardNormal) > 0 {
		h.Normal = outwardNormal.Negate()
	} else {
		h.Normal = outwardNormal
	}
}
