package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alucas2/raytracing-potato/types"
)

func TestCameraShoot(t *testing.T) {
	camera := &Camera{
		AspectRatio:    1.0,
		Fov:            math.Pi / 2,
		FocalDist:      1.0,
		LensRadius:     0.0,
		Transformation: types.IdentityTransformation(),
	}
	rng := rand.New(rand.NewSource(1))

	// The center of the image looks straight down the -Z axis
	ray := camera.Shoot(types.XY(0.5, 0.5), rng)
	if ray.Dir.Sub(types.XYZ(0, 0, -1)).Len() > 1e-9 {
		t.Fatalf("expected the center ray to point down -z; got %v", ray.Dir)
	}
	if ray.Origin != types.XYZ(0, 0, 0) {
		t.Fatalf("expected the center ray to start at the origin; got %v", ray.Origin)
	}

	// Rays are unit length over the whole image plane
	for i := 0; i < 100; i++ {
		ray := camera.Shoot(types.XY(rng.Float64(), rng.Float64()), rng)
		if math.Abs(ray.Dir.Len()-1.0) > 1e-9 {
			t.Fatalf("expected a unit ray direction; got length %f", ray.Dir.Len())
		}
	}

	// With a 90 degree fov and focal distance 1, the right image edge center
	// points at x = +1
	ray = camera.Shoot(types.XY(1.0, 0.5), rng)
	expected := types.XYZ(1, 0, -1).Normalize()
	if ray.Dir.Sub(expected).Len() > 1e-9 {
		t.Fatalf("expected edge ray %v; got %v", expected, ray.Dir)
	}
}

func TestCameraLookAt(t *testing.T) {
	camera := &Camera{
		AspectRatio: 1.0,
		Fov:         math.Pi / 2,
		FocalDist:   1.0,
		Transformation: types.LookAt(
			types.XYZ(5, 0, 0),
			types.XYZ(0, 0, 0),
			types.XYZ(0, 1, 0),
		),
	}
	rng := rand.New(rand.NewSource(1))

	ray := camera.Shoot(types.XY(0.5, 0.5), rng)
	if ray.Origin != types.XYZ(5, 0, 0) {
		t.Fatalf("expected the ray to start at the camera position; got %v", ray.Origin)
	}
	if ray.Dir.Sub(types.XYZ(-1, 0, 0)).Len() > 1e-9 {
		t.Fatalf("expected the center ray to point at the target; got %v", ray.Dir)
	}
}

func TestCameraLensJitter(t *testing.T) {
	camera := &Camera{
		AspectRatio:    1.0,
		Fov:            math.Pi / 2,
		FocalDist:      2.0,
		LensRadius:     0.5,
		Transformation: types.IdentityTransformation(),
	}
	rng := rand.New(rand.NewSource(1))

	// Lens jitter moves the origin inside the lens disk
	jittered := false
	for i := 0; i < 50; i++ {
		ray := camera.Shoot(types.XY(0.5, 0.5), rng)
		r := math.Hypot(ray.Origin[0], ray.Origin[1])
		if r >= 0.5 {
			t.Fatalf("expected the origin inside the lens disk; got radius %f", r)
		}
		if r > 0 {
			jittered = true
		}
	}
	if !jittered {
		t.Fatal("expected at least one jittered origin")
	}
}
