package text

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/vector"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// Outlines are filled with golang.org/x/image/vector.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	// Keep the Font (thread-safe), not the Face.
	return &gotextParsedFont{font: face.Font}, nil
}

// gotextParsedFont implements ParsedFont on top of a go-text font.
// A fresh font.Face is created per call since faces carry caches that are
// not safe for concurrent use.
type gotextParsedFont struct {
	font *font.Font
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.font.Describe().Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.font.Upem())
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *gotextParsedFont) HasGlyph(r rune) bool {
	_, ok := f.font.NominalGlyph(r)
	return ok
}

// Rasterize implements ParsedFont.Rasterize. Hinting is not supported.
func (f *gotextParsedFont) Rasterize(r rune, ppem float64, _ Hinting) (RasterGlyph, bool) {
	gid, ok := f.font.NominalGlyph(r)
	if !ok {
		return RasterGlyph{}, false
	}
	upem := f.font.Upem()
	if upem == 0 {
		return RasterGlyph{}, false
	}

	face := font.NewFace(f.font)
	scale := float32(ppem) / float32(upem)
	advance := float64(face.HorizontalAdvance(gid) * scale)
	blank := RasterGlyph{Mask: image.NewAlpha(image.Rectangle{}), Advance: advance}

	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return blank, true
	}

	// Font units are y-up; pixels are y-down.
	toPixel := func(p ot.SegmentPoint) (float32, float32) {
		return p.X * scale, -p.Y * scale
	}

	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for i := range outline.Segments {
		for _, p := range outline.Segments[i].ArgsSlice() {
			x, y := toPixel(p)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	x0, y0 := int(math.Floor(float64(minX))), int(math.Floor(float64(minY)))
	x1, y1 := int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY)))
	if x1 <= x0 || y1 <= y0 {
		return blank, true
	}

	z := vector.NewRasterizer(x1-x0, y1-y0)
	ox, oy := float32(x0), float32(y0)
	pt := func(p ot.SegmentPoint) (float32, float32) {
		x, y := toPixel(p)
		return x - ox, y - oy
	}
	started := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if started {
				z.ClosePath()
			}
			started = true
			z.MoveTo(pt(seg.Args[0]))
		case ot.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, x1-x0, y1-y0))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return RasterGlyph{
		Mask:    mask,
		Origin:  image.Pt(x0, y0),
		Advance: advance,
	}, true
}
