package renderer

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/alucas2/raytracing-potato/log"
	"github.com/alucas2/raytracing-potato/scene"
	"github.com/alucas2/raytracing-potato/tracer"
)

// Renderer drives a fixed pool of workers over the tiles of a frame. The
// pending tiles sit behind a mutex and are handed out one at a time; each
// worker renders its tile with a private random generator and pushes the
// result into a mutex-guarded collection. Merging into the final image
// happens on the calling goroutine after all workers have joined.
type Renderer struct {
	logger log.Logger
	sc     *scene.Scene
	opts   Options
	stats  FrameStats
}

// Create a renderer for a scene.
func New(sc *scene.Scene, opts Options) (*Renderer, error) {
	if sc == nil || sc.Root == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		logger: log.New("renderer"),
		sc:     sc,
		opts:   opts,
	}, nil
}

// Render the frame to completion and assemble the final RGBA image. If a
// worker panics mid-tile the render is reported as failed rather than
// returning an image with unrendered pixels.
func (r *Renderer) Render() (*image.RGBA, error) {
	tiles := tracer.SplitInTiles(r.opts.FrameW, r.opts.FrameH, r.opts.TileW, r.opts.TileH)

	// Seeds are assigned deterministically per tile so that the output does
	// not depend on how tiles get distributed across workers.
	pending := make([]*tracer.Tile, len(tiles))
	for i := range tiles {
		tiles[i].Seed = r.opts.Seed + int64(i)
		pending[i] = &tiles[i]
	}

	r.logger.Infof(
		"rendering %dx%d frame: %d tiles, %d workers, %d spp, depth %d",
		r.opts.FrameW, r.opts.FrameH, len(tiles), r.opts.NumWorkers,
		r.opts.SamplesPerPixel, r.opts.MaxDepth,
	)

	var (
		pendingMutex   sync.Mutex
		completedMutex sync.Mutex
		failureMutex   sync.Mutex
		wg             sync.WaitGroup
	)
	completed := make([]*tracer.Tile, 0, len(tiles))
	workerStats := make([]WorkerStats, r.opts.NumWorkers)
	var failure error

	start := time.Now()
	for workerId := 0; workerId < r.opts.NumWorkers; workerId++ {
		wg.Add(1)
		go func(workerId int) {
			defer wg.Done()
			defer func() {
				if cause := recover(); cause != nil {
					failureMutex.Lock()
					if failure == nil {
						failure = fmt.Errorf("%w: worker %d: %v", ErrRenderFailed, workerId, cause)
					}
					failureMutex.Unlock()
				}
			}()

			stats := &workerStats[workerId]
			stats.Id = workerId
			for {
				// Pop one tile off the end of the pending stack
				pendingMutex.Lock()
				if len(pending) == 0 {
					pendingMutex.Unlock()
					return
				}
				tile := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				pendingMutex.Unlock()

				tileStart := time.Now()
				tracer.RenderTile(tile, r.sc, r.opts.SamplesPerPixel, r.opts.MaxDepth)
				stats.RenderTime += time.Since(tileStart)
				stats.Tiles++

				completedMutex.Lock()
				completed = append(completed, tile)
				completedMutex.Unlock()
			}
		}(workerId)
	}
	wg.Wait()

	r.stats = FrameStats{
		Workers:    workerStats,
		Tiles:      len(tiles),
		RenderTime: time.Since(start),
	}

	if failure != nil {
		return nil, failure
	}

	// All workers have joined; the merge needs no further locking
	frame := image.NewRGBA(image.Rect(0, 0, int(r.opts.FrameW), int(r.opts.FrameH)))
	for _, tile := range completed {
		blitTile(frame, tile)
	}

	r.logger.Infof("frame rendered in %s", r.stats.RenderTime)
	return frame, nil
}

// Get statistics for the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Copy a tile's pixels into the frame at the tile's recorded offset.
func blitTile(frame *image.RGBA, tile *tracer.Tile) {
	for y := uint32(0); y < tile.Height; y++ {
		src := tile.Pix[y*tile.Width*4 : (y+1)*tile.Width*4]
		dstOffset := frame.PixOffset(int(tile.OffsetX), int(tile.OffsetY+y))
		copy(frame.Pix[dstOffset:], src)
	}
}
