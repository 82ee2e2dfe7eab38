package scene

import (
	"math"

	"github.com/alucas2/raytracing-potato/types"
)

// Nudge applied to the start of secondary rays to avoid self-intersection.
const RayEpsilon = 1e-3

// A segment with equation origin + t*dir, with t ranging from TMin to TMax.
// Dir must be kept normalized. TMax shrinks during traversal to prune
// intersections farther than the current best hit.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
	TMin   float64
	TMax   float64
}

// Get the point at parameter t along the ray.
func (r *Ray) At(t float64) types.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// An ExpandedRay caches the componentwise reciprocal of the direction for
// division-free slab tests. The cache stays valid while TMax shrinks because
// the direction is immutable during a traversal.
type ExpandedRay struct {
	Ray
	InvDir types.Vec3
}

// Compute the cached reciprocal direction.
func (r Ray) Expand() ExpandedRay {
	return ExpandedRay{
		Ray:    r,
		InvDir: types.XYZ(1.0/r.Dir[0], 1.0/r.Dir[1], 1.0/r.Dir[2]),
	}
}

// A collision between a ray and an object. Owned by the caller that
// requested it.
type Hit struct {
	T        float64
	Position types.Vec3
	Normal   types.Vec3 // Kept normalized
	UV       types.Vec2
	Material MaterialId
}

// Map a unit direction to equirectangular texture coordinates.
func sphericalUV(dir types.Vec3) types.Vec2 {
	return types.XY(
		0.5-math.Atan2(dir[2], dir[0])/(2.0*math.Pi),
		math.Asin(dir[1])/math.Pi+0.5,
	)
}
