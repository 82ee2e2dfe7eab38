package scene

import (
	"sort"
	"time"

	"github.com/alucas2/raytracing-potato/log"
)

var bvhLogger = log.New("bvh")

// A node of the bounding volume hierarchy. Nodes live in a flat table and
// reference each other by index, never by pointer.
type bvhNode struct {
	aabb AABB

	// For a branch, left and right index the child nodes.
	left  uint32
	right uint32

	// For a leaf, leaf indexes the tree's leaf content table.
	leaf   uint32
	isLeaf bool
}

// A Bvh accelerates ray intersection queries over a static set of hittables.
// The tree is immutable after construction: no insertion or deletion is
// supported. A Bvh is a terminal aggregate; asking for its bounding box is a
// programming error.
type Bvh struct {
	// Content of the leaf nodes, indexed by the leaf field of bvhNode
	leaves []Hittable

	// Tree structure stored as a flat table
	nodes []bvhNode

	// Index of the root node
	root uint32
}

func (b *Bvh) sealedHittable() {}

// A (leaf id, bounding box) pair, the unit partitioned by the builder.
type bvhItem struct {
	leaf uint32
	aabb AABB
}

type bvhBuilder struct {
	nodes    []bvhNode
	branches int
	leafs    int
	maxDepth int
}

// Construct a Bvh over a set of hittables. The build sorts the items by
// bounding box centroid along a cycling axis and splits at the median,
// producing a depth-balanced binary tree with one hittable per leaf.
func NewBvh(hittables []Hittable, sd *SceneData) *Bvh {
	if len(hittables) == 0 {
		panic("scene: cannot build a bvh over an empty hittable set")
	}

	items := make([]bvhItem, len(hittables))
	for i, h := range hittables {
		items[i] = bvhItem{leaf: uint32(i), aabb: h.BoundingBox(sd)}
	}

	b := &bvhBuilder{nodes: make([]bvhNode, 0, 2*len(hittables)-1)}
	start := time.Now()
	root := b.partition(items, 0, 0)
	bvhLogger.Debugf(
		"bvh build time: %d ms, maxDepth: %d, branches: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		b.maxDepth, b.branches, b.leafs,
	)

	return &Bvh{leaves: hittables, nodes: b.nodes, root: root}
}

// Partition the item list and return the index of the subtree root.
func (b *bvhBuilder) partition(items []bvhItem, sortAxis int, depth int) uint32 {
	if depth > b.maxDepth {
		b.maxDepth = depth
	}

	if len(items) == 1 {
		b.leafs++
		return b.push(bvhNode{aabb: items[0].aabb, leaf: items[0].leaf, isLeaf: true})
	}

	// Sort by bounding box centroid and split at the median
	sort.Slice(items, func(i, j int) bool {
		ci := items[i].aabb.Min[sortAxis] + items[i].aabb.Max[sortAxis]
		cj := items[j].aabb.Min[sortAxis] + items[j].aabb.Max[sortAxis]
		return ci < cj
	})
	mid := len(items) / 2

	left := b.partition(items[:mid], (sortAxis+1)%3, depth+1)
	right := b.partition(items[mid:], (sortAxis+1)%3, depth+1)
	aabb := b.nodes[left].aabb.Union(b.nodes[right].aabb)
	b.branches++
	return b.push(bvhNode{aabb: aabb, left: left, right: right})
}

// Append a node to the flat table and return its index.
func (b *bvhBuilder) push(node bvhNode) uint32 {
	index := uint32(len(b.nodes))
	b.nodes = append(b.nodes, node)
	return index
}

// Traverse the tree, pruning every subtree whose bounding box the ray
// misses.
func (b *Bvh) Hit(ray *Ray, sd *SceneData) (Hit, bool) {
	expanded := ray.Expand()
	return b.hitNode(&expanded, b.root, sd)
}

func (b *Bvh) hitNode(ray *ExpandedRay, node uint32, sd *SceneData) (Hit, bool) {
	n := &b.nodes[node]
	if !n.aabb.Collide(ray) {
		return Hit{}, false
	}
	if n.isLeaf {
		return b.leaves[n.leaf].Hit(&ray.Ray, sd)
	}

	// Children are visited in storage order. A hit on the left shrinks the
	// interval so the right subtree is pruned more aggressively; a right hit
	// replaces it only when strictly closer, so the left child wins ties.
	local := *ray
	closest, found := b.hitNode(&local, n.left, sd)
	if found {
		local.TMax = closest.T
	}
	if hit, ok := b.hitNode(&local, n.right, sd); ok && (!found || hit.T < closest.T) {
		closest = hit
		found = true
	}
	return closest, found
}

// BoundingBox panics by contract: the internal box bookkeeping of a Bvh is
// not meant to be unioned into a parent aggregate.
func (b *Bvh) BoundingBox(_ *SceneData) AABB {
	panic("scene: do not take the bounding box of a Bvh. What are you trying to do?")
}
