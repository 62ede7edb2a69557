package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a font is created with a parser
	// name that was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")
)
