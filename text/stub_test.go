package text

import "image"

// stubParser produces a fixed 2x3 glyph for every rune except 0.
type stubParser struct{}

func (stubParser) Parse([]byte) (ParsedFont, error) { return stubFont{}, nil }

type stubFont struct{}

func (stubFont) Name() string         { return "stub" }
func (stubFont) UnitsPerEm() int      { return 1000 }
func (stubFont) HasGlyph(r rune) bool { return r != 0 }

func (f stubFont) Rasterize(r rune, ppem float64, _ Hinting) (RasterGlyph, bool) {
	if !f.HasGlyph(r) {
		return RasterGlyph{}, false
	}
	m := image.NewAlpha(image.Rect(0, 0, 2, 3))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	return RasterGlyph{Mask: m, Origin: image.Pt(1, -3), Advance: 4}, true
}
