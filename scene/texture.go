package scene

import (
	"math"

	"github.com/alucas2/raytracing-potato/sampling"
	"github.com/alucas2/raytracing-potato/types"
)

// Texture is the closed set of texture kinds. Textures support recursive
// indirection through the texture table. Procedural textures are
// deterministic functions of position and seed: repeated evaluation at the
// same position is bit-reproducible.
type Texture interface {
	Sample(incident *Ray, hit *Hit, sd *SceneData) Color

	sealedTexture()
}

// The placeholder for a texture that failed to resolve. Samples black.
type MissingTexture struct{}

func (MissingTexture) sealedTexture() {}

func (MissingTexture) Sample(*Ray, *Hit, *SceneData) Color {
	return RGB(0, 0, 0)
}

// A uniform color.
type SolidTexture Color

func (SolidTexture) sealedTexture() {}

func (t SolidTexture) Sample(*Ray, *Hit, *SceneData) Color {
	return Color(t)
}

// A 3D checkerboard keyed by the floor of the hit position, alternating
// between two other textures.
type CheckerTexture struct {
	Odd  TextureId
	Even TextureId
}

func (CheckerTexture) sealedTexture() {}

func (t CheckerTexture) Sample(incident *Ray, hit *Hit, sd *SceneData) Color {
	p := hit.Position
	parity := math.Mod(math.Floor(p[0])+math.Floor(p[1])+math.Floor(p[2]), 2.0)
	if parity == 0 {
		return sd.Textures[t.Even.ToIndex()].Sample(incident, hit, sd)
	}
	return sd.Textures[t.Odd.ToIndex()].Sample(incident, hit, sd)
}

// Grayscale value noise over the integer lattice.
type NoiseTexture struct {
	Seed int64
}

func (NoiseTexture) sealedTexture() {}

func (t NoiseTexture) Sample(_ *Ray, hit *Hit, _ *SceneData) Color {
	p := hit.Position
	x := sampling.LatticeReal(
		int64(math.Floor(p[0])), int64(math.Floor(p[1])), int64(math.Floor(p[2])), t.Seed)
	x = 0.5*x + 0.5
	return RGB(x, x, x)
}

// Grayscale gradient (Perlin-style) noise.
type PerlinTexture struct {
	Seed int64
}

func (PerlinTexture) sealedTexture() {}

// Dot product between the gradient at a lattice corner and the offset from
// that corner to p. The gradient is derived from three decorrelated noise
// lookups.
func gradDot(p types.Vec3, cornerX, cornerY, cornerZ, seed int64) float64 {
	grad := types.XYZ(
		sampling.LatticeReal(cornerX, cornerY, cornerZ, seed+1),
		sampling.LatticeReal(cornerX, cornerY, cornerZ, seed+2),
		sampling.LatticeReal(cornerX, cornerY, cornerZ, seed+3),
	)
	return p.Sub(types.XYZ(float64(cornerX), float64(cornerY), float64(cornerZ))).Dot(grad)
}

func mix(a, b, t float64) float64 {
	return (b-a)*t + a
}

func (t PerlinTexture) Sample(_ *Ray, hit *Hit, _ *SceneData) Color {
	p := hit.Position
	fp := p.Floor()
	flX, flY, flZ := int64(fp[0]), int64(fp[1]), int64(fp[2])
	clX, clY, clZ := flX+1, flY+1, flZ+1

	// Dot product with the gradients at the eight corners
	k1 := gradDot(p, flX, flY, flZ, t.Seed)
	k2 := gradDot(p, clX, flY, flZ, t.Seed)
	k3 := gradDot(p, flX, clY, flZ, t.Seed)
	k4 := gradDot(p, clX, clY, flZ, t.Seed)
	k5 := gradDot(p, flX, flY, clZ, t.Seed)
	k6 := gradDot(p, clX, flY, clZ, t.Seed)
	k7 := gradDot(p, flX, clY, clZ, t.Seed)
	k8 := gradDot(p, clX, clY, clZ, t.Seed)

	// Smootherstep
	frac := p.Sub(fp)
	tx := smootherstep(frac[0])
	ty := smootherstep(frac[1])
	tz := smootherstep(frac[2])

	// Trilinear interpolation
	k12 := mix(k1, k2, tx)
	k34 := mix(k3, k4, tx)
	k56 := mix(k5, k6, tx)
	k78 := mix(k7, k8, tx)
	k1234 := mix(k12, k34, ty)
	k5678 := mix(k56, k78, ty)

	x := 0.5*mix(k1234, k5678, tz) + 0.5
	return RGB(x, x, x)
}

func smootherstep(t float64) float64 {
	return (t*(t*6.0-15.0) + 10.0) * t * t * t
}

// A texture sampled from an image with nearest-neighbor filtering. UVs wrap,
// and V is flipped to match image coordinates where the origin is the top
// left.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []Color // Row-major: Pixels[y*Width + x]
}

func (*ImageTexture) sealedTexture() {}

func (t *ImageTexture) Sample(_ *Ray, hit *Hit, _ *SceneData) Color {
	u := hit.UV[0] - math.Floor(hit.UV[0])
	v := hit.UV[1] - math.Floor(hit.UV[1])

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
