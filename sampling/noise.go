package sampling

import "math"

// Coefficients for the coherent noise hash.
// See http://libnoise.sourceforge.net/noisegen/index.html#coherentnoise
const (
	noiseA int64 = 0x369E6D3B899E43CF
	noiseB int64 = 0x53F89E7FFDA3B07D
	noiseC int64 = 0x3B13C1CA4937E629
	noiseD int64 = 0x577C2C6E4019D645
	noiseE int64 = 60493
	noiseF int64 = 19990303
	noiseG int64 = 1376312589
)

// Generate a coherent noise integer in the range [math.MinInt64, math.MaxInt64].
// The result only depends on the lattice coordinates and the seed, so repeated
// evaluations are reproducible without a precomputed lattice table.
func LatticeInt(x, y, z, seed int64) int64 {
	h := noiseA*x + noiseB*y + noiseC*z + noiseD*seed
	h = (h >> 13) ^ h
	return h*(h*h*noiseE+noiseF) + noiseG
}

// Generate a coherent noise value in the range [-1, 1].
func LatticeReal(x, y, z, seed int64) float64 {
	return float64(LatticeInt(x, y, z, seed)) / float64(math.MaxInt64)
}
