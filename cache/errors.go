package cache

import "errors"

// Sentinel errors for cache package.
var (
	// ErrNilRasterizer is returned by New when no rasterizer is given.
	ErrNilRasterizer = errors.New("cache: nil rasterizer")

	// ErrNilTransform is returned by New when no transform is given.
	ErrNilTransform = errors.New("cache: nil transform")
)
