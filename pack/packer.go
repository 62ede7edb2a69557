package pack

import (
	"errors"

	"github.com/gogpu/fontatlas"
)

// Packer places source buffers into a fixed target buffer.
type Packer[P any] interface {
	// SetMargin sets the empty border kept around every packed item.
	SetMargin(m int)

	// Pack copies src into the target and returns the rectangle it was drawn to.
	// Returns ErrNoFit if there is no room left.
	Pack(src Buffer2D[P]) (Rect, error)

	// Utilization returns the share of the target covered by packed pixels (0.0 to 1.0).
	Utilization() float64
}

// GrowingPacker is a Packer whose target can be enlarged on demand.
type GrowingPacker[P any, B Growable[P]] interface {
	Packer[P]

	// SetMaxSize bounds growth. Zero means unbounded.
	SetMaxSize(width, height int)

	// PackResize packs src, growing the target with grow until it fits.
	PackResize(src Buffer2D[P], grow GrowFunc) (Rect, error)

	// Finish ends the packing session and returns the target buffer.
	Finish() B
}

// GrowFunc computes the next buffer size from the current one.
// It must never return a smaller size in either dimension.
type GrowFunc func(width, height int) (newWidth, newHeight int)

// DoubleGrowth doubles both dimensions.
func DoubleGrowth(width, height int) (int, int) {
	return max(1, width*2), max(1, height*2)
}

// DoubleShortest doubles the smaller dimension only, which keeps the
// buffer close to square. Width wins ties.
func DoubleShortest(width, height int) (int, int) {
	if width <= height {
		return max(1, width*2), max(1, height)
	}
	return max(1, width), max(1, height*2)
}

// growLoop calls try until it succeeds, growing buf between attempts.
// resize must enlarge buf and update the packer state for the new size.
func growLoop[P any](buf Buffer2D[P], maxW, maxH int, grow GrowFunc,
	try func() (Rect, error), resize func(w, h int)) (Rect, error) {
	for {
		r, err := try()
		if !errors.Is(err, ErrNoFit) {
			return r, err
		}

		ow, oh := buf.Width(), buf.Height()
		nw, nh := grow(ow, oh)
		if nw < ow || nh < oh {
			panic("pack: grow function must not shrink the buffer")
		}
		if nw == ow && nh == oh {
			return Rect{}, ErrGrowthStalled
		}
		if maxW > 0 && nw > maxW {
			nw = max(maxW, ow)
		}
		if maxH > 0 && nh > maxH {
			nh = max(maxH, oh)
		}
		if nw == ow && nh == oh {
			return Rect{}, &SizeLimitError{Width: ow, Height: oh, MaxWidth: maxW, MaxHeight: maxH}
		}

		fontatlas.Logger().Debug("pack: growing buffer",
			"from_w", ow, "from_h", oh, "to_w", nw, "to_h", nh)
		resize(nw, nh)
	}
}
