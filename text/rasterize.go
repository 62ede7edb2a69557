package text

import (
	"math"

	"github.com/gogpu/fontatlas/pack"
)

// Rasterizer renders single characters to greyscale bitmaps.
//
// RenderChar returns false if the character has no glyph in the font.
// Otherwise it returns a bitmap sized to the glyph's tight pixel bounds and
// its metrics; BoundingBox covers the whole bitmap. Results must be
// deterministic for a given (r, scale). Callers may modify the returned
// bitmap.
//
// *Font is the standard implementation.
type Rasterizer interface {
	RenderChar(r rune, scale float64) (CharInfo, *Bitmap, bool)
}

// rasterize converts a parsed glyph into a CharInfo and Bitmap.
func rasterize(p ParsedFont, r rune, scale float64, hinting Hinting) (CharInfo, *Bitmap, bool) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return CharInfo{}, nil, false
	}
	g, ok := p.Rasterize(r, scale, hinting)
	if !ok {
		return CharInfo{}, nil, false
	}

	var bm *Bitmap
	if g.Mask == nil || g.Mask.Bounds().Empty() {
		bm = NewBitmap(0, 0)
	} else {
		bm = BitmapFromAlpha(g.Mask)
	}

	info := CharInfo{
		Char:            r,
		Scale:           scale,
		BoundingBox:     pack.Rect{W: bm.Width(), H: bm.Height()},
		PostDrawAdvance: Vec{X: g.Advance},
	}
	if !bm.Empty() {
		info.PreDrawAdvance = Vec{X: float64(g.Origin.X)}
		info.Top = g.Origin.Y
	}
	return info, bm, true
}
