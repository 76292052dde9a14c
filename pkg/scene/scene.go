package scene

import (
	"math/rand/v2"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// Entities is the arena that the BVH indexes into.
type Scene struct {
	Name     string
	Camera   *geometry.Camera
	Entities []geometry.Entity // Objects in the scene
	Lights   []lights.Light    // Registered lights, optional
	BVH      *geometry.BVH     // Acceleration structure, nil until BuildBVH
	emitters []int             // indices of emissive entities
}

// New creates an empty scene viewed through camera
func New(name string, camera *geometry.Camera) *Scene {
	return &Scene{
		Name:     name,
		Camera:   camera,
		Entities: make([]geometry.Entity, 0),
		Lights:   make([]lights.Light, 0),
	}
}

// Add appends entities to the scene. Any BVH built earlier no longer covers
// the entity list and is dropped until BuildBVH is called again.
func (s *Scene) Add(entities ...geometry.Entity) {
	for _, e := range entities {
		if e.IsEmissive() {
			s.emitters = append(s.emitters, len(s.Entities))
		}
		s.Entities = append(s.Entities, e)
	}
	s.BVH = nil
}

// AddLight registers lights used for direct lighting
func (s *Scene) AddLight(ls ...lights.Light) {
	s.Lights = append(s.Lights, ls...)
}

// AddAreaLight adds a rectangular area light to the scene, both as a
// registered light and as visible emissive geometry
func (s *Scene) AddAreaLight(corner, u, v core.Vec3, intensity core.Spectrum) *lights.AreaLight {
	light := lights.NewAreaLight(corner, u, v, intensity)
	s.AddLight(light)
	for _, tri := range geometry.NewEmissiveQuad(corner, u, v, intensity) {
		s.Add(tri)
	}
	return light
}

// BuildBVH creates the acceleration structure over the current entities.
// The seed fixes the random split axes.
func (s *Scene) BuildBVH(seed uint64) geometry.BVHStats {
	s.BVH = geometry.NewBVH(s.Entities, rand.New(rand.NewPCG(seed, 0)))
	return s.BVH.Stats()
}

// Hit finds the nearest intersection in (tMin, tMax], through the BVH when
// one is built
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64, rec *geometry.HitRecord) bool {
	if s.BVH != nil {
		return s.BVH.Hit(ray, tMin, tMax, rec)
	}
	return s.HitLinear(ray, tMin, tMax, rec)
}

// HitLinear tests every entity and keeps the closest hit
func (s *Scene) HitLinear(ray core.Ray, tMin, tMax float64, rec *geometry.HitRecord) bool {
	var temp geometry.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, e := range s.Entities {
		if e.Hit(ray, tMin, closestSoFar, &temp) {
			hitAnything = true
			closestSoFar = temp.T
			*rec = temp
		}
	}
	return hitAnything
}

// Occluded reports whether anything blocks the ray before maxT
func (s *Scene) Occluded(ray core.Ray, maxT float64) bool {
	var rec geometry.HitRecord
	return s.Hit(ray, 0, maxT, &rec)
}

// Emitters returns the emissive entities in insertion order
func (s *Scene) Emitters() []geometry.Entity {
	out := make([]geometry.Entity, len(s.emitters))
	for i, idx := range s.emitters {
		out[i] = s.Entities[idx]
	}
	return out
}

// PrimitiveCount returns the number of entities in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Entities)
}

// Bounds returns the box around every entity
func (s *Scene) Bounds() core.AABB {
	box := core.EmptyAABB()
	for _, e := range s.Entities {
		box = box.Union(e.BoundingBox())
	}
	return box
}
