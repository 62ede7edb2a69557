package text

import (
	"fmt"
	"image"
	"iter"

	"github.com/gogpu/fontatlas/pack"
)

// Bitmap is a greyscale coverage buffer: one byte per pixel, 0 is empty and
// 255 is fully covered. Pixels are stored row-major; the height is derived
// from the pixel count and the width.
//
// Bitmap implements pack.Buffer2D[uint8], pack.Growable[uint8] and
// pack.Patcher[uint8], so it can be used directly as a packing target.
//
// Bitmap is not safe for concurrent mutation.
type Bitmap struct {
	pix   []uint8
	width int
}

// Compile-time interface checks.
var (
	_ pack.Growable[uint8] = (*Bitmap)(nil)
	_ pack.Patcher[uint8]  = (*Bitmap)(nil)
)

// NewBitmap creates a width x height bitmap with every pixel empty.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("text: invalid bitmap size %dx%d", width, height))
	}
	if width == 0 {
		height = 0
	}
	return &Bitmap{pix: make([]uint8, width*height), width: width}
}

// BitmapFromRaw wraps pix as a bitmap of the given width without copying.
// len(pix) must be a multiple of width.
func BitmapFromRaw(pix []uint8, width int) (*Bitmap, error) {
	switch {
	case width < 0:
		return nil, fmt.Errorf("text: negative bitmap width %d", width)
	case width == 0 && len(pix) != 0:
		return nil, fmt.Errorf("text: %d pixels for zero-width bitmap", len(pix))
	case width > 0 && len(pix)%width != 0:
		return nil, fmt.Errorf("text: %d pixels is not a multiple of width %d", len(pix), width)
	}
	return &Bitmap{pix: pix, width: width}, nil
}

// BitmapFromAlpha copies img into a new bitmap.
func BitmapFromAlpha(img *image.Alpha) *Bitmap {
	b := img.Bounds()
	bm := NewBitmap(b.Dx(), b.Dy())
	for y := 0; y < bm.Height(); y++ {
		start := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(bm.pix[y*bm.width:(y+1)*bm.width], img.Pix[start:start+bm.width])
	}
	return bm
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	if b.width == 0 {
		return 0
	}
	return len(b.pix) / b.width
}

// Empty reports whether the bitmap has no pixels.
func (b *Bitmap) Empty() bool { return len(b.pix) == 0 }

// Get returns the pixel at (x, y).
func (b *Bitmap) Get(x, y int) (uint8, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.Height() {
		return 0, false
	}
	return b.pix[y*b.width+x], true
}

// Set sets the pixel at (x, y). Out of range coordinates are ignored.
func (b *Bitmap) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= b.width || y >= b.Height() {
		return
	}
	b.pix[y*b.width+x] = v
}

// Resize grows the bitmap to width x height, keeping every pixel at its
// coordinates. Panics if either dimension would shrink.
func (b *Bitmap) Resize(width, height int) {
	ow, oh := b.width, b.Height()
	if width < ow || height < oh {
		panic("text: resizable buffers should only grow")
	}
	if width == ow && height == oh {
		return
	}
	if width == 0 {
		height = 0
	}
	pix := make([]uint8, width*height)
	for y := 0; y < oh; y++ {
		copy(pix[y*width:y*width+ow], b.pix[y*ow:(y+1)*ow])
	}
	b.pix = pix
	b.width = width
}

// PatchFrom copies whole rows when src is a *Bitmap.
func (b *Bitmap) PatchFrom(x, y int, src pack.Buffer2D[uint8], r pack.Rect) bool {
	s, ok := src.(*Bitmap)
	if !ok {
		return false
	}
	r, x, y, ok = pack.ClipCopy(r, x, y, s.width, s.Height(), b.width, b.Height())
	if !ok {
		return true
	}
	for row := 0; row < r.H; row++ {
		so := (r.Y+row)*s.width + r.X
		do := (y+row)*b.width + x
		copy(b.pix[do:do+r.W], s.pix[so:so+r.W])
	}
	return true
}

// Lines iterates over the rows of the bitmap from top to bottom.
// The yielded slices alias the bitmap.
func (b *Bitmap) Lines() iter.Seq[[]uint8] {
	return func(yield func([]uint8) bool) {
		if b.width == 0 {
			return
		}
		for off := 0; off < len(b.pix); off += b.width {
			if !yield(b.pix[off : off+b.width]) {
				return
			}
		}
	}
}

// Raw returns the underlying pixels. The slice aliases the bitmap.
func (b *Bitmap) Raw() []uint8 { return b.pix }

// Alpha returns an *image.Alpha view of the bitmap sharing its pixels.
func (b *Bitmap) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    b.pix,
		Stride: b.width,
		Rect:   image.Rect(0, 0, b.width, b.Height()),
	}
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Bitmap{pix: pix, width: b.width}
}

// SubBitmap copies the region r into a new bitmap.
// Parts of r outside the bitmap are left empty.
func (b *Bitmap) SubBitmap(r pack.Rect) *Bitmap {
	out := NewBitmap(r.W, r.H)
	out.PatchFrom(0, 0, b, r)
	return out
}

// String returns a short description of the bitmap.
func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%dx%d)", b.width, b.Height())
}
