package tracer

import (
	"math/rand"

	"github.com/alucas2/raytracing-potato/scene"
	"github.com/alucas2/raytracing-potato/types"
)

// A Tile is a rectangular sub-region of the output image with private pixel
// storage. A tile is created once per render, rendered by exactly one worker
// and merged exactly once into the final image.
type Tile struct {
	// Position and size of the tile inside the frame.
	OffsetX uint32
	OffsetY uint32
	Width   uint32
	Height  uint32

	// Full frame dimensions, needed to map pixels to camera coordinates.
	FrameW uint32
	FrameH uint32

	// Seed for the private random generator used to render this tile. It is
	// assigned per tile, not per worker, so the output does not depend on
	// which worker dequeues the tile.
	Seed int64

	// Gamma-encoded RGBA pixels in row-major order.
	Pix []uint8
}

// Partition a frame into tiles. Tiles on the right and bottom edges are
// clipped to the frame bounds. The union of the tiles covers the frame
// exactly, with no overlap.
func SplitInTiles(frameW, frameH, tileW, tileH uint32) []Tile {
	numTilesX := (frameW + tileW - 1) / tileW
	numTilesY := (frameH + tileH - 1) / tileH

	tiles := make([]Tile, 0, numTilesX*numTilesY)
	for ty := uint32(0); ty < numTilesY; ty++ {
		for tx := uint32(0); tx < numTilesX; tx++ {
			offsetX := tx * tileW
			offsetY := ty * tileH
			width := tileW
			if frameW-offsetX < width {
				width = frameW - offsetX
			}
			height := tileH
			if frameH-offsetY < height {
				height = frameH - offsetY
			}
			tiles = append(tiles, Tile{
				OffsetX: offsetX,
				OffsetY: offsetY,
				Width:   width,
				Height:  height,
				FrameW:  frameW,
				FrameH:  frameH,
			})
		}
	}
	return tiles
}

// Render every pixel of a tile: average samplesPerPixel jittered paths per
// pixel and store the gamma-encoded result. The tile's own seed drives all
// the randomness, so the result only depends on the tile identity and the
// scene.
func RenderTile(tile *Tile, sc *scene.Scene, samplesPerPixel, maxDepth int) {
	rng := rand.New(rand.NewSource(tile.Seed))
	tile.Pix = make([]uint8, tile.Width*tile.Height*4)

	invSamples := 1.0 / float64(samplesPerPixel)
	for y := uint32(0); y < tile.Height; y++ {
		for x := uint32(0); x < tile.Width; x++ {
			color := scene.RGB(0, 0, 0)
			for s := 0; s < samplesPerPixel; s++ {
				uv := types.XY(
					(float64(tile.OffsetX+x)+rng.Float64())/float64(tile.FrameW),
					1.0-(float64(tile.OffsetY+y)+rng.Float64())/float64(tile.FrameH),
				)
				ray := sc.Camera.Shoot(uv, rng)
				color = color.Add(Trace(sc.Root, &ray, maxDepth, sc.Data, sc.Background, rng))
			}

			rgba := scene.ToSRGBA8(color.Mul(invSamples))
			copy(tile.Pix[(y*tile.Width+x)*4:], rgba[:])
		}
	}
}
