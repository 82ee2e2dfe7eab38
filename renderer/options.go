package renderer

import "runtime"

// Render options.
type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Tile dims. Edge tiles are clipped to the frame bounds.
	TileW uint32
	TileH uint32

	// Number of paths traced per pixel.
	SamplesPerPixel int

	// Maximum number of path segments before truncation.
	MaxDepth int

	// Base seed. Each tile derives its own seed from it.
	Seed int64

	// Size of the worker pool. Defaults to the number of CPUs.
	NumWorkers int
}

// Fill in defaults for unset fields and check the rest.
func (o *Options) validate() error {
	if o.FrameW == 0 || o.FrameH == 0 {
		return ErrInvalidFrameDims
	}
	if o.TileW == 0 || o.TileH == 0 {
		return ErrInvalidTileDims
	}
	if o.SamplesPerPixel <= 0 || o.MaxDepth <= 0 {
		return ErrInvalidSampleOptions
	}
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	return nil
}
