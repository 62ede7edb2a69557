package atlas

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/pack"
	"github.com/gogpu/fontatlas/text"
)

// Atlas maps characters to their layout metrics and their region in the
// atlas bitmap. It is read-only after Make returns and safe for concurrent
// reads.
//
// The bitmap itself is not part of the Atlas; Make returns it alongside.
type Atlas struct {
	info  map[rune]text.CharInfo
	scale float64
	stats Stats
}

// Stats summarises an atlas build.
type Stats struct {
	// Packed is the number of characters with pixels in the bitmap.
	Packed int
	// Blank is the number of supported characters without ink.
	Blank int
	// Skipped is the number of requested characters the font cannot render.
	Skipped int
	// Width and Height are the final bitmap size.
	Width, Height int
	// Utilization is the share of the bitmap covered by glyph pixels.
	Utilization float64
}

// Info returns the metrics of r, or false if r is not in the atlas.
func (a *Atlas) Info(r rune) (text.CharInfo, bool) {
	ci, ok := a.info[r]
	return ci, ok
}

// Contains reports whether r is in the atlas.
func (a *Atlas) Contains(r rune) bool {
	_, ok := a.info[r]
	return ok
}

// Len returns the number of characters in the atlas.
func (a *Atlas) Len() int { return len(a.info) }

// Scale returns the size the glyphs were rendered at.
func (a *Atlas) Scale() float64 { return a.scale }

// Stats returns the build summary.
func (a *Atlas) Stats() Stats { return a.stats }

// Chars iterates over the characters of the atlas in ascending order.
func (a *Atlas) Chars() iter.Seq[rune] {
	return slices.Values(slices.Sorted(maps.Keys(a.info)))
}

// All iterates over characters and their metrics in ascending order.
func (a *Atlas) All() iter.Seq2[rune, text.CharInfo] {
	return func(yield func(rune, text.CharInfo) bool) {
		for r := range a.Chars() {
			if !yield(r, a.info[r]) {
				return
			}
		}
	}
}

// Make renders every character of chars with r and packs the glyphs into
// one bitmap.
//
// Characters r cannot render are skipped and left out of the atlas.
// Glyphs without ink are recorded with an empty bounding box and take no
// space. Repeated characters are rendered once. The bitmap starts at
// cfg.Width x cfg.Height and grows with cfg.Grow until every glyph fits.
//
// An error is returned for an invalid configuration or when the atlas
// cannot grow enough (see pack.SizeLimitError).
func Make(r text.Rasterizer, chars iter.Seq[rune], cfg Config) (*Atlas, *text.Bitmap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	grow := cfg.Grow
	if grow == nil {
		grow = pack.DoubleGrowth
	}

	packer := newPacker(cfg)
	a := &Atlas{
		info:  make(map[rune]text.CharInfo),
		scale: cfg.Scale,
	}
	log := fontatlas.Logger()

	for c := range chars {
		if _, ok := a.info[c]; ok {
			continue
		}
		info, bm, ok := r.RenderChar(c, cfg.Scale)
		if !ok {
			a.stats.Skipped++
			log.Debug("atlas: skipping unsupported char", "char", string(c))
			continue
		}
		if bm.Empty() {
			info.BoundingBox = pack.Rect{}
			a.info[c] = info
			a.stats.Blank++
			continue
		}

		rect, err := packer.PackResize(bm, grow)
		if err != nil {
			return nil, nil, fmt.Errorf("atlas: packing %q: %w", c, err)
		}
		info.BoundingBox = rect
		a.info[c] = info
		a.stats.Packed++
		log.Debug("atlas: packed char", "char", string(c), "rect", rect)
	}

	a.stats.Utilization = packer.Utilization()
	out := packer.Finish()
	a.stats.Width, a.stats.Height = out.Width(), out.Height()

	log.Info("atlas: built",
		"chars", a.Len(),
		"packed", a.stats.Packed,
		"blank", a.stats.Blank,
		"skipped", a.stats.Skipped,
		"width", a.stats.Width,
		"height", a.stats.Height,
		"utilization", a.stats.Utilization)
	return a, out, nil
}

// newPacker creates the growing packer selected by cfg.
func newPacker(cfg Config) pack.GrowingPacker[uint8, *text.Bitmap] {
	buf := text.NewBitmap(cfg.Width, cfg.Height)

	var p pack.GrowingPacker[uint8, *text.Bitmap]
	switch cfg.Algorithm {
	case Shelf:
		p = pack.NewGrowingShelf[uint8](buf)
	default:
		p = pack.NewGrowingSkyline[uint8](buf)
	}
	p.SetMargin(cfg.Margin)
	if cfg.MaxSize > 0 {
		p.SetMaxSize(cfg.MaxSize, cfg.MaxSize)
	}
	return p
}
