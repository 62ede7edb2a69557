// Package text turns font files into greyscale glyph bitmaps.
//
// It provides the rasterizer side of the atlas pipeline:
//
//   - Font: an immutable, shareable font handle (parses TTF/OTF files)
//   - Rasterizer: renders one character at one scale into a Bitmap plus CharInfo
//   - Bitmap: the one-byte-per-pixel buffer used for glyphs and atlases
//   - FontParser: pluggable font parsing backend
//
// # Example usage
//
//	font, err := text.NewFont(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	info, bm, ok := font.RenderChar('A', 40)
//	if !ok {
//	    log.Fatal("no glyph for A")
//	}
//	for line := range bm.Lines() {
//	    fmt.Println(line)
//	}
//	fmt.Println(info.PostDrawAdvance.X)
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used ("ximage").
// The "gotext" backend reads fonts with github.com/go-text/typesetting and
// fills outlines with golang.org/x/image/vector.
//
//	font, err := text.NewFont(data, text.WithParser("gotext"))
//
// Custom parsers can be registered with RegisterParser.
//
// # Character sets
//
// Runes, RangeChars and Charset produce the character sequences consumed by
// atlas construction.
//
// # Thread Safety
//
// Font is safe for concurrent use and is meant to be shared. Rendered
// glyphs are memoised per (character, scale). Bitmap is not safe for
// concurrent mutation.
package text
