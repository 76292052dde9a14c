package core

import "math"

// parallel-axis tolerance for the slab test
const slabEpsilon = 1e-8

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an inverted box that acts as the identity for Surrounding
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box.Min = box.Min.Min(point)
		box.Max = box.Max.Max(point)
	}
	return box
}

// Surrounding returns the smallest box enclosing both boxes
func Surrounding(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return Surrounding(aabb, other)
}

// Intersect runs the slab test over the whole ray line and returns the
// entry and exit distances. Axis-parallel rays are checked against the slab
// bounds instead of dividing by a near-zero direction.
func (aabb AABB) Intersect(ray Ray) (tNear, tFar float64, ok bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		if math.Abs(direction) < slabEpsilon {
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (min - origin) * invDirection
		t1 := (max - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		tNear = math.Max(tNear, t0)
		tFar = math.Min(tFar, t1)
		if tFar < tNear {
			return 0, 0, false
		}
	}

	return tNear, tFar, true
}

// Hit tests if a ray intersects with this AABB within [tMin, tMax]
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	tNear, tFar, ok := aabb.Intersect(ray)
	if !ok {
		return false
	}
	return tFar >= tMin && tNear <= tMax
}

// Contains reports whether the point lies inside or on the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// IsEmpty returns true if min > max on any axis
func (aabb AABB) IsEmpty() bool {
	return aabb.Min.X > aabb.Max.X ||
		aabb.Min.Y > aabb.Max.Y ||
		aabb.Min.Z > aabb.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Centroid returns min+max along an axis (twice the center, used as a sort key)
func (aabb AABB) Centroid(axis int) float64 {
	return aabb.Min.Axis(axis) + aabb.Max.Axis(axis)
}

// Pad grows any flat axis by eps so the box keeps some volume
func (aabb AABB) Pad(eps float64) AABB {
	if aabb.Min.X == aabb.Max.X {
		aabb.Max.X += eps
	}
	if aabb.Min.Y == aabb.Max.Y {
		aabb.Max.Y += eps
	}
	if aabb.Min.Z == aabb.Max.Z {
		aabb.Max.Z += eps
	}
	return aabb
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}
