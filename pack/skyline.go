package pack

import (
	"math"

	"github.com/gogpu/fontatlas"
)

// segment is one horizontal piece of the skyline: the lowest free y over [x, x+w).
type segment struct {
	x, y, w int
}

// Skyline packs rectangles into a fixed buffer using the skyline
// bottom-left heuristic.
//
// The skyline is an ordered list of segments covering the buffer width.
// Each item goes to the position with the lowest resulting top edge,
// leftmost on ties. Space below a placed item is never reclaimed, which is
// fine for atlases where items are packed once and never removed.
type Skyline[P any, B Buffer2D[P]] struct {
	buf     B
	margin  int
	segs    []segment
	done    bool
	count   int
	usedPix int
}

// NewSkyline creates a packer targeting buf.
// The initial skyline is one segment spanning the full width at y = 0.
func NewSkyline[P any, B Buffer2D[P]](buf B) *Skyline[P, B] {
	s := &Skyline[P, B]{buf: buf}
	if w := buf.Width(); w > 0 {
		s.segs = []segment{{x: 0, y: 0, w: w}}
	}
	return s
}

// SetMargin implements Packer. Negative values are treated as zero.
func (s *Skyline[P, B]) SetMargin(m int) {
	s.margin = max(0, m)
}

// Margin returns the configured margin.
func (s *Skyline[P, B]) Margin() int {
	return s.margin
}

// Buffer returns the target buffer.
func (s *Skyline[P, B]) Buffer() B {
	return s.buf
}

// Pack implements Packer.
//
// Sources with zero width or height occupy no space and return an empty Rect.
func (s *Skyline[P, B]) Pack(src Buffer2D[P]) (Rect, error) {
	if s.done {
		return Rect{}, ErrFinished
	}
	w, h := src.Width(), src.Height()
	if w == 0 || h == 0 {
		return Rect{}, nil
	}

	pw, ph := w+2*s.margin, h+2*s.margin
	i, y, ok := s.find(pw, ph)
	if !ok {
		return Rect{}, ErrNoFit
	}
	x := s.segs[i].x
	s.place(i, segment{x: x, y: y + ph, w: pw})

	r := Rect{X: x + s.margin, Y: y + s.margin, W: w, H: h}
	Patch[P](s.buf, r.X, r.Y, src)
	s.count++
	s.usedPix += w * h

	fontatlas.Logger().Debug("pack: skyline placed", "rect", r, "segments", len(s.segs))
	return r, nil
}

// find returns the segment index and y of the lowest position that can hold
// a w x h rectangle starting at a segment's left edge.
func (s *Skyline[P, B]) find(w, h int) (idx, y int, ok bool) {
	bestY := math.MaxInt
	idx = -1
	for i := range s.segs {
		if fy, fits := s.fits(i, w, h); fits && fy < bestY {
			bestY = fy
			idx = i
		}
	}
	if idx < 0 {
		return 0, 0, false
	}
	return idx, bestY, true
}

// fits reports the y a w x h rectangle would rest at when its left edge is
// aligned with segment i, and whether it stays inside the buffer.
func (s *Skyline[P, B]) fits(i, w, h int) (int, bool) {
	if s.segs[i].x+w > s.buf.Width() {
		return 0, false
	}
	y := 0
	remaining := w
	for j := i; remaining > 0; j++ {
		if j >= len(s.segs) {
			return 0, false
		}
		y = max(y, s.segs[j].y)
		if y+h > s.buf.Height() {
			return 0, false
		}
		remaining -= s.segs[j].w
	}
	return y, true
}

// place inserts seg at index i, trims the segments it shadows, and merges
// neighbours of equal height.
func (s *Skyline[P, B]) place(i int, seg segment) {
	s.segs = append(s.segs, segment{})
	copy(s.segs[i+1:], s.segs[i:])
	s.segs[i] = seg

	for j := i + 1; j < len(s.segs); {
		prevEnd := s.segs[j-1].x + s.segs[j-1].w
		cur := &s.segs[j]
		if cur.x >= prevEnd {
			break
		}
		shrink := prevEnd - cur.x
		cur.x += shrink
		cur.w -= shrink
		if cur.w > 0 {
			break
		}
		s.segs = append(s.segs[:j], s.segs[j+1:]...)
	}
	s.merge()
}

// merge joins adjacent segments that share the same y.
func (s *Skyline[P, B]) merge() {
	out := s.segs[:0]
	for _, seg := range s.segs {
		if n := len(out); n > 0 && out[n-1].y == seg.y {
			out[n-1].w += seg.w
			continue
		}
		out = append(out, seg)
	}
	s.segs = out
}

// extend appends free space when the buffer width grows.
func (s *Skyline[P, B]) extend(oldWidth, newWidth int) {
	if newWidth <= oldWidth {
		return
	}
	s.segs = append(s.segs, segment{x: oldWidth, y: 0, w: newWidth - oldWidth})
	s.merge()
}

// Utilization implements Packer.
func (s *Skyline[P, B]) Utilization() float64 {
	total := s.buf.Width() * s.buf.Height()
	if total <= 0 {
		return 0
	}
	return float64(s.usedPix) / float64(total)
}

// Placements returns the number of non-empty items packed so far.
func (s *Skyline[P, B]) Placements() int {
	return s.count
}

// Finish ends the packing session and returns the target buffer.
// Any later Pack call returns ErrFinished.
func (s *Skyline[P, B]) Finish() B {
	s.done = true
	return s.buf
}

// GrowingSkyline is a Skyline whose target buffer grows when an item does not fit.
type GrowingSkyline[P any, B Growable[P]] struct {
	*Skyline[P, B]
	maxW, maxH int
}

// NewGrowingSkyline creates a growing skyline packer targeting buf.
func NewGrowingSkyline[P any, B Growable[P]](buf B) *GrowingSkyline[P, B] {
	return &GrowingSkyline[P, B]{Skyline: NewSkyline[P](buf)}
}

// SetMaxSize bounds the buffer size PackResize may grow to.
// Zero disables the limit for that dimension.
func (g *GrowingSkyline[P, B]) SetMaxSize(width, height int) {
	g.maxW, g.maxH = max(0, width), max(0, height)
}

// PackResize packs src, growing the buffer with grow and retrying on ErrNoFit.
//
// Existing content and the skyline stay valid across growth: growth only
// adds free space to the right of and below the old bounds. A grow func that
// returns a smaller size panics; one that returns the same size yields
// ErrGrowthStalled.
func (g *GrowingSkyline[P, B]) PackResize(src Buffer2D[P], grow GrowFunc) (Rect, error) {
	return growLoop[P](g.buf, g.maxW, g.maxH, grow,
		func() (Rect, error) { return g.Pack(src) },
		g.Resize)
}

// Resize grows the target buffer to width x height and extends the skyline.
// Panics if either dimension would shrink.
func (g *GrowingSkyline[P, B]) Resize(width, height int) {
	ow, oh := g.buf.Width(), g.buf.Height()
	if width < ow || height < oh {
		panic("pack: resizable buffers should only grow")
	}
	g.buf.Resize(width, height)
	g.extend(ow, width)
}
