package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/alucas2/raytracing-potato/asset"
	"github.com/alucas2/raytracing-potato/renderer"
	"github.com/alucas2/raytracing-potato/scene"
	"github.com/alucas2/raytracing-potato/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		TileW:           uint32(ctx.Int("tile-size")),
		TileH:           uint32(ctx.Int("tile-size")),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Seed:            int64(ctx.Int("seed")),
		NumWorkers:      ctx.Int("workers"),
	}
	aspectRatio := float64(opts.FrameW) / float64(opts.FrameH)

	var sc *scene.Scene
	if objPath := ctx.String("obj"); objPath != "" {
		var err error
		sc, err = objScene(objPath, aspectRatio)
		if err != nil {
			return err
		}
	} else {
		builtin := findBuiltinScene(ctx.String("scene"))
		if builtin == nil {
			return fmt.Errorf("unknown scene %q; try the scenes command", ctx.String("scene"))
		}
		sc = builtin.Build(aspectRatio)
	}

	r, err := renderer.New(sc, opts)
	if err != nil {
		return err
	}

	frame, err := r.Render()
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := saveFrame(out, frame); err != nil {
		return err
	}
	logger.Noticef("frame saved to %s", out)

	displayFrameStats(r.Stats())
	return nil
}

// Build a scene around a mesh loaded from a wavefront object file.
func objScene(path string, aspectRatio float64) (*scene.Scene, error) {
	mesh, err := asset.LoadMesh(path)
	if err != nil {
		return nil, err
	}
	mesh.Material = 1

	data := &scene.SceneData{
		Materials: []scene.Material{
			{Scatter: scene.Lambert{}, Absorb: scene.Albedo(scene.RGB(0.8, 0.8, 0.8)), Emit: scene.EmitNone{}},
			{Scatter: scene.Lambert{}, Absorb: scene.Albedo(scene.RGB(0.6, 0.2, 0.2)), Emit: scene.EmitNone{}},
		},
		Meshes: []scene.Mesh{*mesh},
	}

	hittables := []scene.Hittable{
		scene.Sphere{Center: types.XYZ(0, -1000, 0), Radius: 1000, Material: 0}, // Ground
	}
	for _, id := range data.Meshes[0].Triangles() {
		hittables = append(hittables, scene.MeshTriangle{Mesh: 0, Triangle: id})
	}

	camera := &scene.Camera{
		AspectRatio: aspectRatio,
		Fov:         math.Pi / 3,
		FocalDist:   4.0,
		Transformation: types.LookAt(
			types.XYZ(3, 2, 3),
			types.XYZ(0, 0.5, 0),
			types.XYZ(0, 1, 0),
		),
	}

	return &scene.Scene{
		Root:       scene.NewBvh(hittables, data),
		Data:       data,
		Camera:     camera,
		Background: scene.SkyBackground,
	}, nil
}

// Save the frame as png or tga depending on the file extension.
func saveFrame(path string, frame *image.RGBA) error {
	if strings.HasSuffix(strings.ToLower(path), ".png") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return png.Encode(f, frame)
	}
	return asset.SaveTga(path, frame)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Render time"})
	for _, ws := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", ws.Id),
			fmt.Sprintf("%d", ws.Tiles),
			fmt.Sprintf("%s", ws.RenderTime),
		})
	}
	table.SetFooter([]string{"", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
