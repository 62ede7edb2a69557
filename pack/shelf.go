package pack

import "github.com/gogpu/fontatlas"

// shelf represents a horizontal strip in the target.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest padded item so far)
	x      int // Current X position (next free slot)
}

// Shelf packs rectangles into horizontal shelves.
// Simple and fast, suitable for items of similar height.
//
// Items are placed left-to-right on the first shelf that has room.
// Only the last shelf may grow taller; when nothing fits, a new shelf
// is opened below it.
type Shelf[P any, B Buffer2D[P]] struct {
	buf     B
	margin  int
	shelves []shelf
	done    bool
	count   int
	usedPix int
}

// NewShelf creates a shelf packer targeting buf.
func NewShelf[P any, B Buffer2D[P]](buf B) *Shelf[P, B] {
	return &Shelf[P, B]{
		buf:     buf,
		shelves: make([]shelf, 0, 16), // Preallocate for typical use
	}
}

// SetMargin implements Packer. Negative values are treated as zero.
func (a *Shelf[P, B]) SetMargin(m int) {
	a.margin = max(0, m)
}

// Pack implements Packer.
func (a *Shelf[P, B]) Pack(src Buffer2D[P]) (Rect, error) {
	if a.done {
		return Rect{}, ErrFinished
	}
	w, h := src.Width(), src.Height()
	if w == 0 || h == 0 {
		return Rect{}, nil
	}

	x, y, ok := a.allocate(w+2*a.margin, h+2*a.margin)
	if !ok {
		return Rect{}, ErrNoFit
	}

	r := Rect{X: x + a.margin, Y: y + a.margin, W: w, H: h}
	Patch[P](a.buf, r.X, r.Y, src)
	a.count++
	a.usedPix += w * h

	fontatlas.Logger().Debug("pack: shelf placed", "rect", r, "shelves", len(a.shelves))
	return r, nil
}

// allocate finds space for a padded pw x ph rectangle.
//
// The algorithm:
// 1. Try to fit on an existing shelf with enough height
// 2. Extend the last shelf if the item is taller and there is room below
// 3. Otherwise open a new shelf below the last one
func (a *Shelf[P, B]) allocate(pw, ph int) (x, y int, ok bool) {
	width, height := a.buf.Width(), a.buf.Height()

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+pw > width {
			continue
		}
		if ph > s.height {
			if i != len(a.shelves)-1 || s.y+ph > height {
				continue
			}
			s.height = ph
		}
		x, y = s.x, s.y
		s.x += pw
		return x, y, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		newY = last.y + last.height
	}
	if pw > width || newY+ph > height {
		return 0, 0, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: ph, x: pw})
	return 0, newY, true
}

// Utilization implements Packer.
func (a *Shelf[P, B]) Utilization() float64 {
	total := a.buf.Width() * a.buf.Height()
	if total <= 0 {
		return 0
	}
	return float64(a.usedPix) / float64(total)
}

// ShelfCount returns the number of shelves currently in use.
func (a *Shelf[P, B]) ShelfCount() int {
	return len(a.shelves)
}

// Placements returns the number of non-empty items packed so far.
func (a *Shelf[P, B]) Placements() int {
	return a.count
}

// Buffer returns the target buffer.
func (a *Shelf[P, B]) Buffer() B {
	return a.buf
}

// Finish ends the packing session and returns the target buffer.
func (a *Shelf[P, B]) Finish() B {
	a.done = true
	return a.buf
}

// GrowingShelf is a Shelf whose target grows when an item does not fit.
// Growing the width makes room at the end of every shelf; growing the
// height makes room for new shelves.
type GrowingShelf[P any, B Growable[P]] struct {
	*Shelf[P, B]
	maxW, maxH int
}

// NewGrowingShelf creates a growing shelf packer targeting buf.
func NewGrowingShelf[P any, B Growable[P]](buf B) *GrowingShelf[P, B] {
	return &GrowingShelf[P, B]{Shelf: NewShelf[P](buf)}
}

// SetMaxSize bounds the buffer size PackResize may grow to.
func (g *GrowingShelf[P, B]) SetMaxSize(width, height int) {
	g.maxW, g.maxH = max(0, width), max(0, height)
}

// PackResize packs src, growing the buffer with grow and retrying on ErrNoFit.
func (g *GrowingShelf[P, B]) PackResize(src Buffer2D[P], grow GrowFunc) (Rect, error) {
	return growLoop[P](g.buf, g.maxW, g.maxH, grow,
		func() (Rect, error) { return g.Pack(src) },
		func(w, h int) {
			if w < g.buf.Width() || h < g.buf.Height() {
				panic("pack: resizable buffers should only grow")
			}
			g.buf.Resize(w, h)
		})
}
