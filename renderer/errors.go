package renderer

import "errors"

var (
	ErrSceneNotDefined      = errors.New("renderer: no scene defined")
	ErrCameraNotDefined     = errors.New("renderer: no camera defined")
	ErrInvalidFrameDims     = errors.New("renderer: frame dimensions must be non-zero")
	ErrInvalidTileDims      = errors.New("renderer: tile dimensions must be non-zero")
	ErrInvalidSampleOptions = errors.New("renderer: samples per pixel and max depth must be positive")
	ErrRenderFailed         = errors.New("renderer: a worker failed while rendering")
)
