package sampling

import (
	"math"
	"math/rand"

	"github.com/alucas2/raytracing-potato/types"
)

// Sample a point uniformly distributed inside the unit disk.
func UnitDisk(rng *rand.Rand) types.Vec2 {
	for {
		v := types.XY(2.0*rng.Float64()-1.0, 2.0*rng.Float64()-1.0)
		if v.LenSq() < 1.0 {
			return v
		}
	}
}

// Sample a point uniformly distributed inside the unit ball.
func UnitBall(rng *rand.Rand) types.Vec3 {
	for {
		v := types.XYZ(2.0*rng.Float64()-1.0, 2.0*rng.Float64()-1.0, 2.0*rng.Float64()-1.0)
		if v.LenSq() < 1.0 {
			return v
		}
	}
}

// Sample a point uniformly distributed on the surface of the unit sphere.
func UnitSphere(rng *rand.Rand) types.Vec3 {
	for {
		v := types.XY(2.0*rng.Float64()-1.0, 2.0*rng.Float64()-1.0)
		s := v.LenSq()
		if s < 1.0 {
			n := 2.0 * math.Sqrt(1.0-s)
			return types.XYZ(v[0]*n, v[1]*n, 1.0-2.0*s)
		}
	}
}

// Sample a boolean that is true with probability p.
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
