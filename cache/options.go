package cache

import "github.com/gogpu/fontatlas/atlas"

// PenMode selects how DrawingCommands advances the pen.
type PenMode int

const (
	// PenPreDrawOnly adds each glyph's PreDrawAdvance to the pen before
	// emitting its command and never applies PostDrawAdvance. Callers lay
	// out text themselves using the advances carried by each command.
	PenPreDrawOnly PenMode = iota

	// PenLayout draws each glyph at the pen plus its PreDrawAdvance and then
	// moves the pen by its PostDrawAdvance, which is regular left to right
	// text layout.
	PenLayout
)

// String returns the string representation of the pen mode.
func (m PenMode) String() string {
	switch m {
	case PenPreDrawOnly:
		return "PreDrawOnly"
	case PenLayout:
		return "Layout"
	default:
		return "Unknown"
	}
}

// Option configures a FaceCache.
type Option func(*options)

type options struct {
	penMode PenMode
	atlas   atlas.Config
}

func defaultOptions() options {
	return options{
		penMode: PenPreDrawOnly,
		atlas:   atlas.DefaultConfig(),
	}
}

// WithPenMode sets the pen advance mode of DrawingCommands.
// The default is PenPreDrawOnly.
func WithPenMode(m PenMode) Option {
	return func(o *options) {
		o.penMode = m
	}
}

// WithAtlasConfig sets the configuration of the baked atlas.
// Its Scale is replaced by the scale given to New.
func WithAtlasConfig(cfg atlas.Config) Option {
	return func(o *options) {
		o.atlas = cfg
	}
}
