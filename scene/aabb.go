package scene

import (
	"math"

	"github.com/alucas2/raytracing-potato/types"
)

// An axis-aligned bounding box. Invariant: Min[i] <= Max[i] for every axis.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// Compute the smallest box containing both boxes.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: types.MinVec3(a.Min, b.Min),
		Max: types.MaxVec3(a.Max, b.Max),
	}
}

// Slab test against an expanded ray. A zero direction component yields an
// infinite reciprocal, which IEEE arithmetic turns into an always-crossing
// slab on that axis.
// See https://tavianator.com/2011/ray_box.html
func (a AABB) Collide(ray *ExpandedRay) bool {
	t0x := (a.Min[0] - ray.Origin[0]) * ray.InvDir[0]
	t0y := (a.Min[1] - ray.Origin[1]) * ray.InvDir[1]
	t0z := (a.Min[2] - ray.Origin[2]) * ray.InvDir[2]
	t1x := (a.Max[0] - ray.Origin[0]) * ray.InvDir[0]
	t1y := (a.Max[1] - ray.Origin[1]) * ray.InvDir[1]
	t1z := (a.Max[2] - ray.Origin[2]) * ray.InvDir[2]

	tMin := math.Max(ray.TMin,
		math.Max(math.Min(t0x, t1x), math.Max(math.Min(t0y, t1y), math.Min(t0z, t1z))))
	tMax := math.Min(ray.TMax,
		math.Min(math.Max(t0x, t1x), math.Min(math.Max(t0y, t1y), math.Max(t0z, t1z))))

	return tMax > tMin
}
