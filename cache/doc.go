// Package cache turns strings into draw commands against a baked glyph atlas.
//
// A FaceCache bakes an atlas for an initial character set, converts the
// atlas bitmap once with a caller-supplied Transform (typically a texture
// upload), and renders characters outside the atlas lazily, each into its
// own transformed bitmap.
//
// Drawing is two-phase. PrepareString renders whatever is missing and
// returns a Prepared token; DrawingCommands turns that token into one
// DrawCommand per glyph:
//
//	fc, err := cache.New(font, text.Runes(text.Alphabet), 20, upload)
//	if err != nil {
//	    return err
//	}
//	p, err := fc.PrepareString("Hello, world")
//	if err != nil {
//	    return err
//	}
//	for _, cmd := range fc.DrawingCommands(p) {
//	    draw(cmd.Source, cmd.SourceRect, cmd.Pen)
//	}
//
// Each command carries both the pre-draw and the post-draw advance of its
// glyph. The default PenPreDrawOnly mode only accumulates pre-draw
// advances; use WithPenMode(PenLayout) for regular text layout.
//
// FaceCache is not safe for concurrent use. Wrap it in Locked to share it.
// Fonts are safe to share between caches.
package cache
