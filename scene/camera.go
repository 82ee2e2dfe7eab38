package scene

import (
	"math"
	"math/rand"

	"github.com/alucas2/raytracing-potato/sampling"
	"github.com/alucas2/raytracing-potato/types"
)

// A thin-lens perspective camera.
//
// Local camera frame:
// X axis points right
// Y axis points up
// Z axis points behind
type Camera struct {
	AspectRatio    float64
	Fov            float64
	FocalDist      float64
	LensRadius     float64
	Transformation types.Transformation
}

// Shoot a primary ray through a normalized image coordinate in [0,1]^2. A
// non-zero lens radius jitters the ray origin on the lens disk for depth of
// field.
func (c *Camera) Shoot(uv types.Vec2, rng *rand.Rand) Ray {
	tanFov := math.Tan(0.5 * c.Fov)

	// Ray origin in local frame
	lens := sampling.UnitDisk(rng).Mul(c.LensRadius)
	origin := types.XYZ(lens[0], lens[1], 0)

	// Ray direction in local frame
	dir := types.XYZ(
		(2.0*uv[0]-1.0)*tanFov*c.FocalDist*c.AspectRatio,
		(2.0*uv[1]-1.0)*tanFov*c.FocalDist,
		-c.FocalDist,
	).Sub(origin).Normalize()

	return Ray{
		Origin: c.Transformation.TransformPoint(origin),
		Dir:    c.Transformation.TransformVector(dir),
		TMin:   RayEpsilon,
		TMax:   math.Inf(1),
	}
}
