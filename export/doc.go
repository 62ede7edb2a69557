// Package export writes glyph atlases to disk and to terminals.
//
// Bitmaps can be encoded as PNG (image/png), lossless WebP
// (github.com/HugoSmits86/nativewebp) or TGA (github.com/ftrvxmtrx/tga).
// Preview scales a bitmap up with github.com/disintegration/imaging for
// inspection, NewManifest and WriteManifest describe the glyph regions as
// JSON, and WriteASCII dumps a bitmap as text.
package export
