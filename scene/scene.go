package scene

import (
	"math/rand"

	"github.com/alucas2/raytracing-potato/types"
)

// An index into the material table.
type MaterialId uint32

// Convert the id to a table index.
func (id MaterialId) ToIndex() int { return int(id) }

// An index into the texture table.
type TextureId uint32

// Convert the id to a table index.
func (id TextureId) ToIndex() int { return int(id) }

// An index into the mesh table.
type MeshId uint32

// Convert the id to a table index.
func (id MeshId) ToIndex() int { return int(id) }

// An index into the vertex index list of a mesh. It addresses the first of
// the three consecutive indices that make up a triangle.
type TriangleId uint32

// Convert the id to a table index.
func (id TriangleId) ToIndex() int { return int(id) }

// SceneData holds the flat lookup tables shared by the rendering workers.
// The tables are built once before rendering and are never mutated during
// rendering, so they can be read concurrently without synchronization.
type SceneData struct {
	Materials []Material
	Textures  []Texture
	Meshes    []Mesh
}

// A background emission, evaluated for rays that exit the scene.
type Background func(ray *Ray) Color

// The classic blue-to-white sky gradient.
func SkyBackground(ray *Ray) Color {
	t := 0.5 * (ray.Dir[1]/ray.Dir.Len() + 1.0)
	return RGB(1.0, 1.0, 1.0).Mul(1.0 - t).Add(RGB(0.5, 0.7, 1.0).Mul(t))
}

// A background with a constant color.
func SolidBackground(color Color) Background {
	return func(*Ray) Color { return color }
}

// RayShooter is implemented by camera models that turn a normalized image
// coordinate into a primary ray.
type RayShooter interface {
	Shoot(uv types.Vec2, rng *rand.Rand) Ray
}

// A complete description of a renderable scene.
type Scene struct {
	Root       Hittable
	Data       *SceneData
	Camera     RayShooter
	Background Background
}
