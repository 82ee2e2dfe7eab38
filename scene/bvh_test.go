package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alucas2/raytracing-potato/types"
)

// Scatter some spheres deterministically.
func randomSpheres(count int, seed int64) []Hittable {
	rng := rand.New(rand.NewSource(seed))
	hittables := make([]Hittable, count)
	for i := range hittables {
		hittables[i] = Sphere{
			Center: types.XYZ(
				20.0*rng.Float64()-10.0,
				20.0*rng.Float64()-10.0,
				20.0*rng.Float64()-10.0,
			),
			Radius:   0.2 + rng.Float64(),
			Material: MaterialId(i),
		}
	}
	return hittables
}

func TestBvhMatchesLinearList(t *testing.T) {
	counts := []int{1, 2, 3, 7, 64, 257}

	for _, count := range counts {
		hittables := randomSpheres(count, int64(count))
		list := List(hittables)
		bvh := NewBvh(hittables, nil)

		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 500; i++ {
			origin := types.XYZ(
				30.0*rng.Float64()-15.0,
				30.0*rng.Float64()-15.0,
				30.0*rng.Float64()-15.0,
			)
			dir := types.XYZ(
				2.0*rng.Float64()-1.0,
				2.0*rng.Float64()-1.0,
				2.0*rng.Float64()-1.0,
			).Normalize()
			if dir.Len() == 0 {
				continue
			}

			rayA := makeRay(origin, dir)
			rayB := makeRay(origin, dir)
			hitList, okList := list.Hit(&rayA, nil)
			hitBvh, okBvh := bvh.Hit(&rayB, nil)

			if okList != okBvh {
				t.Fatalf("[%d spheres, ray %d] bvh hit = %t but list hit = %t", count, i, okBvh, okList)
			}
			if okList && math.Abs(hitList.T-hitBvh.T) > 1e-9 {
				t.Fatalf("[%d spheres, ray %d] bvh t = %f but list t = %f", count, i, hitBvh.T, hitList.T)
			}
		}
	}
}

func TestBvhIdenticalCentroids(t *testing.T) {
	// Concentric spheres defeat the centroid sort; the tree must still be
	// valid and agree with the list
	hittables := []Hittable{
		Sphere{Center: types.XYZ(0, 0, -5), Radius: 1, Material: 0},
		Sphere{Center: types.XYZ(0, 0, -5), Radius: 2, Material: 1},
		Sphere{Center: types.XYZ(0, 0, -5), Radius: 3, Material: 2},
	}
	bvh := NewBvh(hittables, nil)

	ray := makeRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))
	hit, ok := bvh.Hit(&ray, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Fatalf("expected to hit the outermost sphere at t = 2; got %f", hit.T)
	}
}

func TestBvhRootContainsAllLeaves(t *testing.T) {
	hittables := randomSpheres(100, 99)
	bvh := NewBvh(hittables, nil)

	root := bvh.nodes[bvh.root].aabb
	union := hittables[0].BoundingBox(nil)
	for _, h := range hittables[1:] {
		union = union.Union(h.BoundingBox(nil))
	}
	if root.Min != union.Min || root.Max != union.Max {
		t.Fatalf("expected root aabb %+v; got %+v", union, root)
	}

	// Every leaf box contains its primitive's box
	for _, node := range bvh.nodes {
		if !node.isLeaf {
			continue
		}
		prim := bvh.leaves[node.leaf].BoundingBox(nil)
		for axis := 0; axis < 3; axis++ {
			if node.aabb.Min[axis] > prim.Min[axis] || node.aabb.Max[axis] < prim.Max[axis] {
				t.Fatalf("leaf aabb %+v does not contain primitive aabb %+v", node.aabb, prim)
			}
		}
	}
}

func TestBvhNodeCount(t *testing.T) {
	// A binary tree with n leaves has exactly 2n-1 nodes
	for _, count := range []int{1, 2, 5, 32, 33} {
		bvh := NewBvh(randomSpheres(count, 7), nil)
		if len(bvh.nodes) != 2*count-1 {
			t.Fatalf("expected %d nodes for %d leaves; got %d", 2*count-1, count, len(bvh.nodes))
		}
	}
}

func TestBvhShrinksTraversalInterval(t *testing.T) {
	// A hit found in the left subtree must not be replaced by a farther hit
	// from the right subtree
	hittables := []Hittable{
		Sphere{Center: types.XYZ(-1, 0, -5), Radius: 1, Material: 0},
		Sphere{Center: types.XYZ(1, 0, -50), Radius: 1, Material: 1},
	}
	bvh := NewBvh(hittables, nil)

	ray := makeRay(types.XYZ(-1, 0, 0), types.XYZ(0, 0, -1))
	hit, ok := bvh.Hit(&ray, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Material != 0 {
		t.Fatalf("expected the near sphere; got material %d", hit.Material)
	}
}

func TestBvhTieBreakKeepsLeftLeaf(t *testing.T) {
	// Both spheres intersect the ray at exactly t = 4, but their centroids
	// differ so the build order is deterministic: the sphere at x = 5 sorts
	// into the left leaf and must win the tie
	hittables := []Hittable{
		Sphere{Center: types.XYZ(5, 0, 0), Radius: 1, Material: 11},
		Sphere{Center: types.XYZ(6, 0, 0), Radius: 2, Material: 22},
	}
	bvh := NewBvh(hittables, nil)

	ray := makeRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0))
	hit, ok := bvh.Hit(&ray, nil)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Fatalf("expected t = 4; got %f", hit.T)
	}
	if hit.Material != 11 {
		t.Fatalf("expected the left leaf to win the tie; got material %d", hit.Material)
	}
}

func TestBvhEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewBvh to panic on an empty hittable set")
		}
	}()
	NewBvh(nil, nil)
}

func TestBvhBoundingBoxPanics(t *testing.T) {
	bvh := NewBvh(randomSpheres(4, 4), nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected BoundingBox to panic on a Bvh")
		}
	}()
	bvh.BoundingBox(nil)
}
