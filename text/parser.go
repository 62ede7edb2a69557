package text

import (
	"image"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs go-text/typesetting).
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(r rune) bool

	// Rasterize renders r at ppem pixels per em.
	// Returns false if the font has no glyph for r.
	Rasterize(r rune, ppem float64, hinting Hinting) (RasterGlyph, bool)
}

// RasterGlyph is a glyph rendered by a ParsedFont.
type RasterGlyph struct {
	// Mask holds the coverage of the glyph's tight pixel bounding box.
	// Its bounds start at (0, 0). Glyphs without ink (like space) have
	// an empty mask.
	Mask *image.Alpha

	// Origin is the position of the mask's top-left pixel relative to the
	// pen on the baseline. Y is negative above the baseline.
	Origin image.Point

	// Advance is the horizontal pen movement in pixels.
	Advance float64
}

// parserRegistry holds registered font parsers.
var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// Registering an existing name replaces it.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
