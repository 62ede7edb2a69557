// Package fontatlas packs rasterized glyphs into a single growable texture
// atlas and caches where each character landed, so text can be drawn with a
// minimal number of texture binds.
//
// The module is split into layers, leaves first:
//
//   - pack: Rect, the Buffer2D / Growable pixel buffer interfaces, and the
//     skyline and shelf rectangle packers
//   - text: Font (shared, immutable), the glyph rasterizer, Bitmap and CharInfo
//   - atlas: bakes a character set into an Atlas plus its Bitmap
//   - cache: FaceCache, which wraps a baked atlas, lazily prepares characters
//     missing from it, and produces draw commands for strings
//   - export: PNG, WebP and TGA encoding of atlases and a JSON manifest
//
// # Example
//
//	font, err := text.NewFont(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fc, err := cache.New(font, text.Runes("abcdefghijklmnopqrstuvwxyz"), 20, uploadTexture)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := fc.PrepareString("hello, world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, cmd := range fc.DrawingCommands(p) {
//	    drawSubImage(cmd.Source, cmd.SourceRect, cmd.Pen)
//	}
//
// # Logging
//
// The library is silent by default. Call SetLogger to route its structured
// log output through a [log/slog] logger.
package fontatlas
