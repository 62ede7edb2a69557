// Package atlas bakes a set of characters into a single glyph bitmap.
//
// Make renders each character with a text.Rasterizer, packs the glyph
// bitmaps with a growing packer from package pack, and returns an Atlas
// (character to CharInfo) together with the bitmap:
//
//	font, _ := text.NewFont(goregular.TTF)
//	a, bm, err := atlas.Make(font, text.Runes("Hello"), atlas.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info, ok := a.Info('H')
//	// info.BoundingBox is the region of 'H' inside bm.
//
// Characters the font has no glyph for are silently left out.
package atlas
