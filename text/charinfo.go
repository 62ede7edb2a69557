package text

import (
	"fmt"

	"github.com/gogpu/fontatlas/pack"
)

// CharInfo holds the layout metrics of one character rendered at one scale.
type CharInfo struct {
	// Char is the character described.
	Char rune

	// Scale is the size the character was rendered at, in pixels per em.
	Scale float64

	// BoundingBox locates the glyph pixels inside whichever bitmap holds
	// them. As returned by a Rasterizer it spans the whole glyph bitmap;
	// after packing it is the glyph's region in the atlas.
	// Glyphs without ink have an empty box.
	BoundingBox pack.Rect

	// PreDrawAdvance is the pen movement applied before drawing
	// (the left side bearing).
	PreDrawAdvance Vec

	// PostDrawAdvance is the pen movement applied after drawing
	// (the advance width).
	PostDrawAdvance Vec

	// Top is the offset from the baseline to the first row of the
	// glyph bitmap. It is negative for ink above the baseline.
	Top int
}

// Blank reports whether the glyph has no pixels to draw.
func (c CharInfo) Blank() bool {
	return c.BoundingBox.Empty()
}

// String returns a short description for debugging.
func (c CharInfo) String() string {
	return fmt.Sprintf("CharInfo(%q @%g %v pre=%v post=%v)",
		c.Char, c.Scale, c.BoundingBox, c.PreDrawAdvance, c.PostDrawAdvance)
}
