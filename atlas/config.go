package atlas

import (
	"math"

	"github.com/gogpu/fontatlas/pack"
)

// Algorithm selects the packing algorithm used by Make.
type Algorithm string

const (
	// Skyline packs with the skyline bottom-left heuristic. It is the default.
	Skyline Algorithm = "skyline"
	// Shelf packs glyphs into rows of similar height.
	Shelf Algorithm = "shelf"
)

// Config holds atlas construction parameters.
type Config struct {
	// Scale is the glyph size in pixels per em.
	// Default: 20
	Scale float64

	// Margin is the empty space kept around every glyph, in pixels.
	// Default: 1
	Margin int

	// Width and Height are the starting size of the atlas bitmap.
	// The bitmap grows when the glyphs do not fit.
	// Default: 256x256
	Width, Height int

	// MaxSize bounds both dimensions of the atlas. Zero means unbounded.
	MaxSize int

	// Algorithm is the packing algorithm.
	// Default: Skyline
	Algorithm Algorithm

	// Grow computes the next atlas size when glyphs do not fit.
	// Nil means pack.DoubleGrowth.
	Grow pack.GrowFunc
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Scale:     20,
		Margin:    1,
		Width:     256,
		Height:    256,
		Algorithm: Skyline,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		return &ConfigError{Field: "Scale", Reason: "must be a positive number"}
	}
	if c.Margin < 0 {
		return &ConfigError{Field: "Margin", Reason: "must be non-negative"}
	}
	if c.Width < 1 {
		return &ConfigError{Field: "Width", Reason: "must be at least 1"}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "Height", Reason: "must be at least 1"}
	}
	if c.MaxSize < 0 {
		return &ConfigError{Field: "MaxSize", Reason: "must be non-negative"}
	}
	if c.MaxSize > 0 && (c.MaxSize < c.Width || c.MaxSize < c.Height) {
		return &ConfigError{Field: "MaxSize", Reason: "must be at least Width and Height"}
	}
	switch c.Algorithm {
	case Skyline, Shelf, "":
	default:
		return &ConfigError{Field: "Algorithm", Reason: "must be skyline or shelf"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
