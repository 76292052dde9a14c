package geometry

import (
	"math/rand/v2"
	"sort"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Leaves hold a single entity index; internal nodes hold two children.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Item        int // index into the entity arena, -1 for internal nodes
}

// IsLeaf reports whether the node references an entity directly
func (n *BVHNode) IsLeaf() bool {
	return n.Item >= 0
}

// BVH represents a Bounding Volume Hierarchy over an entity arena.
// Nodes store indices, the entities themselves stay owned by the caller.
type BVH struct {
	Root     *BVHNode
	entities []Entity
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
}

// NewBVH builds a BVH over entities. The split axis at each node is drawn
// from random, so a fixed seed gives a reproducible tree.
func NewBVH(entities []Entity, random *rand.Rand) *BVH {
	bvh := &BVH{entities: entities}
	if len(entities) == 0 {
		return bvh
	}

	indices := make([]int, len(entities))
	for i := range indices {
		indices[i] = i
	}
	bvh.Root = bvh.build(indices, random)
	return bvh
}

// build recursively splits the index span at its median along a random axis
func (bvh *BVH) build(indices []int, random *rand.Rand) *BVHNode {
	axis := random.IntN(3)
	key := func(i int) float64 {
		return bvh.entities[i].BoundingBox().Centroid(axis)
	}

	switch len(indices) {
	case 1:
		return bvh.leaf(indices[0])
	case 2:
		first, second := indices[0], indices[1]
		if key(second) < key(first) {
			first, second = second, first
		}
		return bvh.internal(bvh.leaf(first), bvh.leaf(second))
	}

	sort.Slice(indices, func(i, j int) bool {
		return key(indices[i]) < key(indices[j])
	})

	mid := len(indices) / 2
	left := bvh.build(indices[:mid], random)
	right := bvh.build(indices[mid:], random)
	return bvh.internal(left, right)
}

func (bvh *BVH) leaf(index int) *BVHNode {
	return &BVHNode{
		BoundingBox: bvh.entities[index].BoundingBox(),
		Item:        index,
	}
}

func (bvh *BVH) internal(left, right *BVHNode) *BVHNode {
	return &BVHNode{
		BoundingBox: core.Surrounding(left.BoundingBox, right.BoundingBox),
		Left:        left,
		Right:       right,
		Item:        -1,
	}
}

// Hit finds the nearest intersection in (tMin, tMax] and fills rec
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	if bvh.Root == nil {
		return false
	}
	return bvh.hitNode(bvh.Root, ray, tMin, tMax, rec)
}

// hitNode tests the node box, then both children without ordering them
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64, rec *HitRecord) bool {
	tNear, tFar, ok := node.BoundingBox.Intersect(ray)
	if !ok || tFar <= 0 || tFar < tMin || tNear > tMax {
		return false
	}

	if node.IsLeaf() {
		return bvh.entities[node.Item].Hit(ray, tMin, tMax, rec)
	}

	var temp HitRecord
	hitAnything := false
	closestSoFar := tMax

	if bvh.hitNode(node.Left, ray, tMin, closestSoFar, &temp) {
		hitAnything = true
		closestSoFar = temp.T
		*rec = temp
	}
	if bvh.hitNode(node.Right, ray, tMin, closestSoFar, &temp) {
		hitAnything = true
		*rec = temp
	}

	return hitAnything
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	if bvh.Root != nil {
		collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.IsLeaf() {
		stats.LeafNodes++
		return
	}
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
