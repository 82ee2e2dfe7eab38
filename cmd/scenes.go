package cmd

import (
	"math"
	"os"

	"github.com/alucas2/raytracing-potato/scene"
	"github.com/alucas2/raytracing-potato/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// A builtin scene that can be selected by name from the command line.
type builtinScene struct {
	Name        string
	Description string
	Build       func(aspectRatio float64) *scene.Scene
}

var builtinScenes = []builtinScene{
	{
		Name:        "three-balls",
		Description: "a diffuse, a glass and a metal ball on a diffuse ground",
		Build:       threeBalls,
	},
	{
		Name:        "textured",
		Description: "checker, noise and perlin textures under a bvh",
		Build:       textured,
	},
	{
		Name:        "mesh",
		Description: "a triangle mesh pyramid under a bvh",
		Build:       meshPyramid,
	},
}

// Find a builtin scene by name.
func findBuiltinScene(name string) *builtinScene {
	for i := range builtinScenes {
		if builtinScenes[i].Name == name {
			return &builtinScenes[i]
		}
	}
	return nil
}

// List the builtin scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, sc := range builtinScenes {
		table.Append([]string{sc.Name, sc.Description})
	}
	table.Render()
	return nil
}

func threeBalls(aspectRatio float64) *scene.Scene {
	camera := &scene.Camera{
		AspectRatio: aspectRatio,
		Fov:         math.Pi / 2,
		FocalDist:   3.46,
		LensRadius:  0.1,
		Transformation: types.LookAt(
			types.XYZ(-2, 2, 1),
			types.XYZ(0, 0, -1),
			types.XYZ(0, 1, 0),
		),
	}

	data := &scene.SceneData{
		Materials: []scene.Material{
			{Scatter: scene.Lambert{}, Absorb: scene.Albedo(scene.RGB(0.8, 0.8, 0.0)), Emit: scene.EmitNone{}},
			{Scatter: scene.Lambert{}, Absorb: scene.Albedo(scene.RGB(0.1, 0.2, 0.5)), Emit: scene.EmitNone{}},
			{Scatter: scene.Dielectric{RefractionIndex: 1.5}, Absorb: scene.WhiteBody{}, Emit: scene.EmitNone{}},
			{Scatter: scene.Metal{Fuzz: 0.0}, Absorb: scene.Albedo(scene.RGB(0.8, 0.6, 0.2)), Emit: scene.EmitNone{}},
		},
	}

	root := scene.List{
		scene.Sphere{Center: types.XYZ(0, -100.5, -1), Radius: 100, Material: 0}, // Ground
		scene.Sphere{Center: types.XYZ(0, 0, -1), Radius: 0.5, Material: 1},      // Diffuse sphere
		scene.Sphere{Center: types.XYZ(-1, 0, -1), Radius: 0.5, Material: 2},     // Glass sphere
		scene.Sphere{Center: types.XYZ(1, 0, -1), Radius: 0.5, Material: 3},      // Metal sphere
	}

	return &scene.Scene{
		Root:       root,
		Data:       data,
		Camera:     camera,
		Background: scene.SkyBackground,
	}
}

func textured(aspectRatio float64) *scene.Scene {
	camera := &scene.Camera{
		AspectRatio: aspectRatio,
		Fov:         math.Pi / 3,
		FocalDist:   6.0,
		LensRadius:  0.0,
		Transformation: types.LookAt(
			types.XYZ(0, 2, 4),
			types.XYZ(0, 0.5, -1),
			types.XYZ(0, 1, 0),
		),
	}

	data := &scene.SceneData{
		Textures: []scene.Texture{
			scene.SolidTexture(scene.RGB(0.9, 0.9, 0.9)),
			scene.SolidTexture(scene.RGB(0.2, 0.3, 0.1)),
			scene.CheckerTexture{Odd: 1, Even: 0},
			scene.NoiseTexture{Seed: 42},
			scene.PerlinTexture{Seed: 42},
		},
		Materials: []scene.Material{
			{Scatter: scene.Lambert{}, Absorb: scene.AlbedoMap(2), Emit: scene.EmitNone{}},
			{Scatter: scene.Lambert{}, Absorb: scene.AlbedoMap(3), Emit: scene.EmitNone{}},
			{Scatter: scene.Lambert{}, Absorb: scene.AlbedoMap(4), Emit: scene.EmitNone{}},
			{Scatter: scene.Metal{Fuzz: 0.2}, Absorb: scene.Albedo(scene.RGB(0.7, 0.6, 0.5)), Emit: scene.EmitNone{}},
			{Scatter: scene.ScatterNone{}, Absorb: scene.BlackBody{}, Emit: scene.EmitNormal{}},
		},
	}

	hittables := []scene.Hittable{
		scene.Sphere{Center: types.XYZ(0, -1000, 0), Radius: 1000, Material: 0}, // Checker ground
		scene.Sphere{Center: types.XYZ(-2, 1, -1), Radius: 1, Material: 1},      // Noise sphere
		scene.Sphere{Center: types.XYZ(0, 1, -1), Radius: 1, Material: 2},       // Perlin sphere
		scene.Sphere{Center: types.XYZ(2, 1, -1), Radius: 1, Material: 3},       // Fuzzy metal sphere
		scene.Sphere{Center: types.XYZ(0, 0.4, 1.2), Radius: 0.4, Material: 4},  // Normal debug sphere
	}

	return &scene.Scene{
		Root:       scene.NewBvh(hittables, data),
		Data:       data,
		Camera:     camera,
		Background: scene.SkyBackground,
	}
}

func meshPyramid(aspectRatio float64) *scene.Scene {
	camera := &scene.Camera{
		AspectRatio: aspectRatio,
		Fov:         math.Pi / 3,
		FocalDist:   4.0,
		LensRadius:  0.0,
		Transformation: types.LookAt(
			types.XYZ(2.5, 1.5, 2.5),
			types.XYZ(0, 0.4, 0),
			types.XYZ(0, 1, 0),
		),
	}

	data := &scene.SceneData{
		Materials: []scene.Material{
			{Scatter: scene.Lambert{}, Absorb: scene.Albedo(scene.RGB(0.8, 0.8, 0.8)), Emit: scene.EmitNone{}},
			{Scatter: scene.Lambert{}, Absorb: scene.Albedo(scene.RGB(0.8, 0.3, 0.2)), Emit: scene.EmitNone{}},
		},
	}

	// A square pyramid with flat-shaded faces
	mesh := &scene.Mesh{Material: 1}
	apex := types.XYZ(0, 1, 0)
	corners := [4]types.Vec3{
		types.XYZ(-1, 0, -1),
		types.XYZ(1, 0, -1),
		types.XYZ(1, 0, 1),
		types.XYZ(-1, 0, 1),
	}
	for i := range corners {
		appendTriangle(mesh, corners[i], apex, corners[(i+1)%4])
	}
	appendTriangle(mesh, corners[0], corners[1], corners[2])
	appendTriangle(mesh, corners[0], corners[2], corners[3])
	data.Meshes = append(data.Meshes, *mesh)

	hittables := []scene.Hittable{
		scene.Sphere{Center: types.XYZ(0, -1000, 0), Radius: 1000, Material: 0}, // Ground
	}
	for _, id := range data.Meshes[0].Triangles() {
		hittables = append(hittables, scene.MeshTriangle{Mesh: 0, Triangle: id})
	}

	return &scene.Scene{
		Root:       scene.NewBvh(hittables, data),
		Data:       data,
		Camera:     camera,
		Background: scene.SkyBackground,
	}
}

// Append a triangle with a flat normal derived from its winding.
func appendTriangle(mesh *scene.Mesh, a, b, c types.Vec3) {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
	base := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices,
		scene.Vertex{Position: a, Normal: normal},
		scene.Vertex{Position: b, Normal: normal},
		scene.Vertex{Position: c, Normal: normal},
	)
	mesh.Indices = append(mesh.Indices, base, base+1, base+2)
}
