package scene

import (
	"math"
	"math/rand"

	"github.com/alucas2/raytracing-potato/sampling"
	"github.com/alucas2/raytracing-potato/types"
)

// A material aggregates three orthogonal behaviors, each evaluated
// independently per hit: Scatter decides the next ray direction (or
// absorption), Absorb tints the traced continuation, and Emit contributes a
// self-luminous color.

// ------------------------------------------- Scattering -------------------------------------------

// Scatter is the closed set of scattering behaviors.
type Scatter interface {
	// Compute the scattered ray, or false when the path is absorbed.
	Evaluate(incident *Ray, hit *Hit, sd *SceneData, rng *rand.Rand) (Ray, bool)

	sealedScatter()
}

// A surface that never scatters. Used for purely emissive or debug surfaces.
type ScatterNone struct{}

func (ScatterNone) sealedScatter() {}

func (ScatterNone) Evaluate(*Ray, *Hit, *SceneData, *rand.Rand) (Ray, bool) {
	return Ray{}, false
}

// Cosine-weighted diffuse scattering.
type Lambert struct{}

func (Lambert) sealedScatter() {}

func (Lambert) Evaluate(incident *Ray, hit *Hit, _ *SceneData, rng *rand.Rand) (Ray, bool) {
	// Backface hits are absorbed
	if hit.Normal.Dot(incident.Dir) > 0 {
		return Ray{}, false
	}

	dir := hit.Normal.Add(sampling.UnitSphere(rng)).Normalize()
	return Ray{
		Origin: hit.Position,
		Dir:    dir,
		TMin:   RayEpsilon,
		TMax:   math.Inf(1),
	}, true
}

// Mirror reflection perturbed by a fuzz parameter.
type Metal struct {
	Fuzz float64
}

func (Metal) sealedScatter() {}

func (m Metal) Evaluate(incident *Ray, hit *Hit, _ *SceneData, rng *rand.Rand) (Ray, bool) {
	if hit.Normal.Dot(incident.Dir) > 0 {
		return Ray{}, false
	}

	dir := types.Reflect(incident.Dir, hit.Normal).Add(sampling.UnitBall(rng).Mul(m.Fuzz)).Normalize()

	// The fuzz may push the reflected ray below the surface
	if hit.Normal.Dot(dir) < 0 {
		return Ray{}, false
	}

	return Ray{
		Origin: hit.Position,
		Dir:    dir,
		TMin:   RayEpsilon,
		TMax:   math.Inf(1),
	}, true
}

// Refraction and reflection chosen stochastically by Schlick's approximation
// of the Fresnel reflectance.
type Dielectric struct {
	RefractionIndex float64
}

func (Dielectric) sealedScatter() {}

func (d Dielectric) Evaluate(incident *Ray, hit *Hit, _ *SceneData, rng *rand.Rand) (Ray, bool) {
	var eta float64
	normal := hit.Normal
	if hit.Normal.Dot(incident.Dir) > 0 {
		// Exiting the medium
		eta = d.RefractionIndex
		normal = normal.Neg()
	} else {
		// Entering the medium
		eta = 1.0 / d.RefractionIndex
	}

	r0 := (1.0 - eta) / (1.0 + eta)
	r0 = r0 * r0
	reflectance := r0 + (1.0-r0)*math.Pow(1.0+normal.Dot(incident.Dir), 5)

	var dir types.Vec3
	if sampling.Bernoulli(rng, reflectance) {
		dir = types.Reflect(incident.Dir, normal)
	} else if refracted, ok := types.Refract(incident.Dir, normal, eta); ok {
		dir = refracted
	} else {
		// Total internal reflection
		dir = types.Reflect(incident.Dir, normal)
	}

	return Ray{
		Origin: hit.Position,
		Dir:    dir,
		TMin:   RayEpsilon,
		TMax:   math.Inf(1),
	}, true
}

// ------------------------------------------- Absorption -------------------------------------------

// Absorb is the closed set of absorption behaviors. The result multiplies
// the traced continuation componentwise.
type Absorb interface {
	Evaluate(incident *Ray, hit *Hit, sd *SceneData) Color

	sealedAbsorb()
}

// Full absorption: the continuation is discarded.
type BlackBody struct{}

func (BlackBody) sealedAbsorb() {}

func (BlackBody) Evaluate(*Ray, *Hit, *SceneData) Color {
	return RGB(0, 0, 0)
}

// No tinting. The dielectric default.
type WhiteBody struct{}

func (WhiteBody) sealedAbsorb() {}

func (WhiteBody) Evaluate(*Ray, *Hit, *SceneData) Color {
	return RGB(1, 1, 1)
}

// A flat albedo color.
type Albedo Color

func (Albedo) sealedAbsorb() {}

func (a Albedo) Evaluate(*Ray, *Hit, *SceneData) Color {
	return Color(a)
}

// An indirect lookup into the texture table at the hit's surface
// coordinates.
type AlbedoMap TextureId

func (AlbedoMap) sealedAbsorb() {}

func (a AlbedoMap) Evaluate(incident *Ray, hit *Hit, sd *SceneData) Color {
	return sd.Textures[TextureId(a).ToIndex()].Sample(incident, hit, sd)
}

// ------------------------------------------- Emission -------------------------------------------

// Emit is the closed set of emission behaviors.
type Emit interface {
	Evaluate(incident *Ray, hit *Hit, sd *SceneData) Color

	sealedEmit()
}

// No emission.
type EmitNone struct{}

func (EmitNone) sealedEmit() {}

func (EmitNone) Evaluate(*Ray, *Hit, *SceneData) Color {
	return RGB(0, 0, 0)
}

// Emit the surface normal. A debug visualization.
type EmitNormal struct{}

func (EmitNormal) sealedEmit() {}

func (EmitNormal) Evaluate(_ *Ray, hit *Hit, _ *SceneData) Color {
	return hit.Normal
}

// Emit the sky gradient along the incident direction.
type EmitSky struct{}

func (EmitSky) sealedEmit() {}

func (EmitSky) Evaluate(incident *Ray, _ *Hit, _ *SceneData) Color {
	return SkyBackground(incident)
}

// ------------------------------------------- Material -------------------------------------------

// A surface material.
type Material struct {
	Scatter Scatter
	Absorb  Absorb
	Emit    Emit
}

// The outcome of evaluating the three behaviors of a material at a hit.
type MaterialOutput struct {
	Scattered  Ray
	HasScatter bool
	Absorb     Color
	Emit       Color
}

// Evaluate the material at a hit point.
func (m *Material) Evaluate(incident *Ray, hit *Hit, sd *SceneData, rng *rand.Rand) MaterialOutput {
	scattered, hasScatter := m.Scatter.Evaluate(incident, hit, sd, rng)
	return MaterialOutput{
		Scattered:  scattered,
		HasScatter: hasScatter,
		Absorb:     m.Absorb.Evaluate(incident, hit, sd),
		Emit:       m.Emit.Evaluate(incident, hit, sd),
	}
}
