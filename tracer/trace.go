package tracer

import (
	"math/rand"

	"github.com/alucas2/raytracing-potato/scene"
)

// Trace computes a depth-bounded single-sample Monte Carlo estimate of the
// radiance arriving along a ray. Depth exhaustion truncates the path to
// black; a scene miss yields the background emission; a hit contributes the
// material emission plus the absorption-tinted recursive estimate when the
// material scatters.
func Trace(root scene.Hittable, ray *scene.Ray, depth int, sd *scene.SceneData,
	background scene.Background, rng *rand.Rand) scene.Color {

	if depth == 0 {
		// This ray did not reach any light
		return scene.RGB(0, 0, 0)
	}

	hit, ok := root.Hit(ray, sd)
	if !ok {
		return background(ray)
	}

	material := &sd.Materials[hit.Material.ToIndex()]
	out := material.Evaluate(ray, &hit, sd, rng)
	if !out.HasScatter {
		return out.Emit
	}
	return out.Emit.Add(out.Absorb.MulVec(Trace(root, &out.Scattered, depth-1, sd, background, rng)))
}
