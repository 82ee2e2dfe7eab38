package tracer

import (
	"bytes"
	"math"
	"testing"

	"github.com/alucas2/raytracing-potato/scene"
	"github.com/alucas2/raytracing-potato/types"
)

func TestSplitInTilesCoversFrame(t *testing.T) {
	specs := []struct {
		frameW, frameH uint32
		tileW, tileH   uint32
	}{
		{128, 128, 32, 32},
		{100, 60, 32, 32},
		{7, 5, 16, 16},
		{33, 33, 32, 32},
		{1, 1, 64, 64},
	}
	for i, s := range specs {
		tiles := SplitInTiles(s.frameW, s.frameH, s.tileW, s.tileH)

		covered := make([]int, s.frameW*s.frameH)
		for _, tile := range tiles {
			if tile.FrameW != s.frameW || tile.FrameH != s.frameH {
				t.Fatalf("[spec %d] expected the tile to carry the frame dimensions", i)
			}
			if tile.Width == 0 || tile.Height == 0 {
				t.Fatalf("[spec %d] expected non-empty tiles", i)
			}
			for y := tile.OffsetY; y < tile.OffsetY+tile.Height; y++ {
				for x := tile.OffsetX; x < tile.OffsetX+tile.Width; x++ {
					if x >= s.frameW || y >= s.frameH {
						t.Fatalf("[spec %d] expected tiles clipped to the frame; got pixel (%d, %d)", i, x, y)
					}
					covered[y*s.frameW+x]++
				}
			}
		}
		for p, n := range covered {
			if n != 1 {
				t.Fatalf("[spec %d] expected pixel %d covered exactly once; got %d", i, p, n)
			}
		}
	}
}

func testScene() *scene.Scene {
	sd := &scene.SceneData{
		Materials: []scene.Material{
			{Scatter: scene.Lambert{}, Absorb: scene.Albedo(scene.RGB(0.8, 0.3, 0.3)), Emit: scene.EmitNone{}},
		},
	}
	return &scene.Scene{
		Root: scene.Sphere{Center: types.XYZ(0, 0, -1), Radius: 0.5, Material: 0},
		Data: sd,
		Camera: &scene.Camera{
			AspectRatio:    1.0,
			Fov:            math.Pi / 2,
			FocalDist:      1.0,
			Transformation: types.IdentityTransformation(),
		},
		Background: scene.SkyBackground,
	}
}

func TestRenderTileIsDeterministic(t *testing.T) {
	sc := testScene()

	first := Tile{OffsetX: 8, OffsetY: 8, Width: 16, Height: 16, FrameW: 32, FrameH: 32, Seed: 42}
	second := first
	RenderTile(&first, sc, 4, 4)
	RenderTile(&second, sc, 4, 4)

	if len(first.Pix) != 16*16*4 {
		t.Fatalf("expected %d pixel bytes; got %d", 16*16*4, len(first.Pix))
	}
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Fatal("expected identical pixels for identical seeds")
	}
}

func TestRenderTileSeedChangesPixels(t *testing.T) {
	sc := testScene()

	first := Tile{Width: 16, Height: 16, FrameW: 32, FrameH: 32, Seed: 1}
	second := first
	second.Seed = 2
	RenderTile(&first, sc, 4, 4)
	RenderTile(&second, sc, 4, 4)

	if bytes.Equal(first.Pix, second.Pix) {
		t.Fatal("expected different seeds to jitter the samples differently")
	}
}
