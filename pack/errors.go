package pack

import (
	"errors"
	"fmt"
)

// Sentinel errors for pack package.
var (
	// ErrNoFit is returned by Pack when the rectangle cannot be placed
	// inside the current buffer bounds.
	ErrNoFit = errors.New("pack: rectangle does not fit")

	// ErrGrowthStalled is returned by PackResize when the grow function
	// returns the current size, which would retry forever.
	ErrGrowthStalled = errors.New("pack: grow function did not enlarge the buffer")

	// ErrFinished is returned when packing into a packer after Finish.
	ErrFinished = errors.New("pack: packer already finished")
)

// SizeLimitError is returned by PackResize when the buffer would have to
// grow beyond the configured maximum size.
type SizeLimitError struct {
	Width, Height       int
	MaxWidth, MaxHeight int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("pack: buffer %dx%d cannot grow past limit %dx%d",
		e.Width, e.Height, e.MaxWidth, e.MaxHeight)
}
