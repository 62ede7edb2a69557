package cache

import (
	"github.com/gogpu/fontatlas/pack"
	"github.com/gogpu/fontatlas/text"
)

// Prepared is a string whose characters have all been prepared by a
// FaceCache. Only PrepareString creates valid tokens; the zero value is
// invalid.
type Prepared struct {
	text  string
	cache uint64
}

// String returns the prepared text.
func (p Prepared) String() string { return p.text }

// Valid reports whether p came from PrepareString.
func (p Prepared) Valid() bool { return p.cache != 0 }

// DrawCommand describes how to draw one glyph.
type DrawCommand[T any] struct {
	// Char is the character drawn.
	Char rune

	// Source holds the glyph pixels: the transformed atlas for baked
	// characters, or the glyph's own transformed bitmap otherwise.
	Source T

	// SourceRect is the glyph region inside Source. It is empty for
	// glyphs without ink.
	SourceRect pack.Rect

	// Pen is the pen position after the glyph's pre-draw advance, relative
	// to the start of the string on the baseline. The glyph's first column
	// is at Pen.X and its first row at Pen.Y + Top.
	Pen text.Vec

	// Top is the offset from the baseline to the first row of the glyph.
	Top int

	// PreDrawAdvance and PostDrawAdvance are the glyph's advances.
	PreDrawAdvance  text.Vec
	PostDrawAdvance text.Vec
}
