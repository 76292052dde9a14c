package geometry

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
)

// NewAxisAlignedBox creates the 12 triangles of a box centered at center.
// Size holds half-extents, so a size of (1,1,1) creates a 2x2x2 box.
// Face normals point outward.
func NewAxisAlignedBox(center, size core.Vec3, reflectance core.Spectrum, bsdf material.BSDF) []*Triangle {
	// Define the 8 corners of a unit box centered at origin
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}
	for i := range corners {
		corners[i] = core.NewVec3(
			corners[i].X*size.X,
			corners[i].Y*size.Y,
			corners[i].Z*size.Z,
		).Add(center)
	}

	// corner, u end, v end for each face
	faces := [6][3]int{
		{4, 5, 7}, // front (Z+)
		{1, 0, 2}, // back (Z-)
		{0, 4, 3}, // left (X-)
		{5, 1, 6}, // right (X+)
		{7, 6, 3}, // top (Y+)
		{0, 1, 4}, // bottom (Y-)
	}

	triangles := make([]*Triangle, 0, 12)
	for _, f := range faces {
		corner := corners[f[0]]
		u := corners[f[1]].Subtract(corner)
		v := corners[f[2]].Subtract(corner)
		quad := NewQuad(corner, u, v, reflectance, bsdf)
		triangles = append(triangles, quad[0], quad[1])
	}
	return triangles
}
