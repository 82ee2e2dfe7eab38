package renderer

import "time"

// Per-worker render statistics.
type WorkerStats struct {
	// Worker index within the pool.
	Id int

	// Number of tiles this worker rendered.
	Tiles int

	// Total time this worker spent rendering tiles.
	RenderTime time.Duration
}

// Frame render statistics.
type FrameStats struct {
	// Per-worker breakdown.
	Workers []WorkerStats

	// Total number of tiles in the frame.
	Tiles int

	// Wall-clock time for the whole frame.
	RenderTime time.Duration
}
