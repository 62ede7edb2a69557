package text

import (
	"fmt"
	"os"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/internal/cache"
)

// Font is a loaded font file. It is immutable after creation and may be
// shared by any number of atlases and face caches.
//
// Font is safe for concurrent use.
// Font must not be copied after creation (enforced by copyCheck).
type Font struct {
	// addr is used for copy protection (Ebitengine pattern).
	addr *Font

	parsed  ParsedFont
	name    string
	hinting Hinting

	// renders memoises RenderChar; nil when disabled.
	renders *cache.Cache[renderKey, renderResult]
}

type renderKey struct {
	r     rune
	scale float64
}

type renderResult struct {
	info CharInfo
	bm   *Bitmap
	ok   bool
}

// Compile-time interface check.
var _ Rasterizer = (*Font)(nil)

// NewFont parses font data (TTF or OTF).
// The data slice is not retained and can be reused after this call.
func NewFont(data []byte, opts ...FontOption) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}

	// Parsers may keep the slice.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	f := &Font{
		parsed:  parsed,
		name:    parsed.Name(),
		hinting: config.hinting,
	}
	f.addr = f
	if config.renderCacheLimit >= 0 {
		f.renders = cache.New[renderKey, renderResult](config.renderCacheLimit)
	}

	fontatlas.Logger().Debug("text: font loaded",
		"name", f.name, "parser", config.parserName, "upem", parsed.UnitsPerEm())
	return f, nil
}

// NewFontFromFile loads a Font from a font file path.
func NewFontFromFile(path string, opts ...FontOption) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFont(data, opts...)
}

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string {
	f.copyCheck()
	return f.name
}

// Parsed returns the parsed font backend.
func (f *Font) Parsed() ParsedFont {
	f.copyCheck()
	return f.parsed
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Font) HasGlyph(r rune) bool {
	f.copyCheck()
	return f.parsed.HasGlyph(r)
}

// RenderChar renders r at scale pixels per em.
//
// It returns false if the font has no glyph for r or scale is not a
// positive finite number. Glyphs without ink, like space, are reported with
// an empty bitmap. The returned bitmap is owned by the caller.
func (f *Font) RenderChar(r rune, scale float64) (CharInfo, *Bitmap, bool) {
	f.copyCheck()
	if f.renders == nil {
		return rasterize(f.parsed, r, scale, f.hinting)
	}

	res := f.renders.GetOrCreate(renderKey{r: r, scale: scale}, func() renderResult {
		info, bm, ok := rasterize(f.parsed, r, scale, f.hinting)
		return renderResult{info: info, bm: bm, ok: ok}
	})
	if !res.ok {
		return CharInfo{}, nil, false
	}
	return res.info, res.bm.Clone(), true
}

// RenderStats describes the render memo of a Font.
type RenderStats struct {
	Cached    int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// RenderStats returns statistics of the render memo.
// All fields are zero when the memo is disabled.
func (f *Font) RenderStats() RenderStats {
	f.copyCheck()
	if f.renders == nil {
		return RenderStats{}
	}
	s := f.renders.Stats()
	return RenderStats{Cached: s.Len, Hits: s.Hits, Misses: s.Misses, Evictions: s.Evictions}
}

func (f *Font) copyCheck() {
	if f.addr != f {
		panic("text: Font must not be copied by value")
	}
}
