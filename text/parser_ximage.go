package text

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f, faces: make(map[ximageFaceKey]font.Face)}, nil
}

// ximageFaceKey identifies an opentype face configuration.
type ximageFaceKey struct {
	ppem    float64
	hinting Hinting
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// opentype faces keep scratch buffers and are not safe for concurrent use,
// so they are created lazily per size and guarded by mu.
type ximageParsedFont struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[ximageFaceKey]font.Face
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *ximageParsedFont) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Rasterize implements ParsedFont.Rasterize.
func (f *ximageParsedFont) Rasterize(r rune, ppem float64, hinting Hinting) (RasterGlyph, bool) {
	if !f.HasGlyph(r) {
		return RasterGlyph{}, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(ppem, hinting)
	if err != nil {
		return RasterGlyph{}, false
	}

	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return RasterGlyph{}, false
	}

	// The face reuses its mask buffer, so copy it out before unlocking.
	out := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	if !dr.Empty() && mask != nil {
		draw.Draw(out, out.Bounds(), mask, maskp, draw.Src)
	}

	return RasterGlyph{
		Mask:    out,
		Origin:  dr.Min,
		Advance: fixedToFloat64(advance),
	}, true
}

// face returns the cached opentype face for the configuration.
// Caller must hold f.mu.
func (f *ximageParsedFont) face(ppem float64, hinting Hinting) (font.Face, error) {
	key := ximageFaceKey{ppem: ppem, hinting: hinting}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72, // 72 DPI makes points equal pixels
		Hinting: ximageHinting(hinting),
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	f.faces[key] = face
	return face, nil
}

// ximageHinting converts Hinting to the x/image equivalent.
func ximageHinting(h Hinting) font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
