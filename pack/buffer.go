package pack

// Buffer2D is a mutable rectangular grid of pixels of type P.
//
// Get reports false for coordinates outside the buffer.
// Set ignores coordinates outside the buffer.
type Buffer2D[P any] interface {
	Width() int
	Height() int
	Get(x, y int) (P, bool)
	Set(x, y int, v P)
}

// Growable is a Buffer2D that can be enlarged in place.
//
// Resize must keep every existing pixel at the same coordinates and fill the
// new area with the zero pixel. Shrinking is a programming error and
// implementations panic.
type Growable[P any] interface {
	Buffer2D[P]
	Resize(width, height int)
}

// Patcher is implemented by buffers that can copy a region faster than
// pixel by pixel. PatchFrom returns false when it cannot handle src,
// in which case Patch falls back to the generic copy.
type Patcher[P any] interface {
	PatchFrom(x, y int, src Buffer2D[P], r Rect) bool
}

// Patch copies all of src into dst with its top-left corner at (x, y).
func Patch[P any](dst Buffer2D[P], x, y int, src Buffer2D[P]) {
	PatchRect(dst, x, y, src, Rect{W: src.Width(), H: src.Height()})
}

// PatchRect copies the region r of src into dst with its top-left corner at (x, y).
// Pixels falling outside either buffer are skipped.
func PatchRect[P any](dst Buffer2D[P], x, y int, src Buffer2D[P], r Rect) {
	if r.Empty() {
		return
	}
	if p, ok := dst.(Patcher[P]); ok && p.PatchFrom(x, y, src, r) {
		return
	}
	for sy := 0; sy < r.H; sy++ {
		for sx := 0; sx < r.W; sx++ {
			v, ok := src.Get(r.X+sx, r.Y+sy)
			if !ok {
				continue
			}
			dst.Set(x+sx, y+sy, v)
		}
	}
}

// Grid is a generic in-memory Growable buffer stored row-major.
type Grid[P any] struct {
	pix    []P
	width  int
	height int
}

// NewGrid creates a width x height grid filled with the zero pixel.
func NewGrid[P any](width, height int) *Grid[P] {
	if width < 0 || height < 0 {
		panic("pack: negative grid size")
	}
	return &Grid[P]{
		pix:    make([]P, width*height),
		width:  width,
		height: height,
	}
}

// Width implements Buffer2D.
func (g *Grid[P]) Width() int { return g.width }

// Height implements Buffer2D.
func (g *Grid[P]) Height() int { return g.height }

// Get implements Buffer2D.
func (g *Grid[P]) Get(x, y int) (P, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		var zero P
		return zero, false
	}
	return g.pix[y*g.width+x], true
}

// Set implements Buffer2D.
func (g *Grid[P]) Set(x, y int, v P) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.pix[y*g.width+x] = v
}

// Resize implements Growable.
func (g *Grid[P]) Resize(width, height int) {
	if width < g.width || height < g.height {
		panic("pack: resizable buffers should only grow")
	}
	if width == g.width && height == g.height {
		return
	}
	pix := make([]P, width*height)
	for y := 0; y < g.height; y++ {
		copy(pix[y*width:y*width+g.width], g.pix[y*g.width:(y+1)*g.width])
	}
	g.pix = pix
	g.width = width
	g.height = height
}

// PatchFrom implements Patcher for sources that are also grids.
func (g *Grid[P]) PatchFrom(x, y int, src Buffer2D[P], r Rect) bool {
	s, ok := src.(*Grid[P])
	if !ok {
		return false
	}
	r, x, y, ok = ClipCopy(r, x, y, s.width, s.height, g.width, g.height)
	if !ok {
		return true
	}
	for row := 0; row < r.H; row++ {
		srcOff := (r.Y+row)*s.width + r.X
		dstOff := (y+row)*g.width + x
		copy(g.pix[dstOff:dstOff+r.W], s.pix[srcOff:srcOff+r.W])
	}
	return true
}

// ClipCopy clips a copy of region r from a srcW x srcH buffer to (x, y) in
// a dstW x dstH buffer. It returns the clipped source region and destination
// origin, and false when nothing is left to copy. Patcher implementations
// use it to stay in bounds.
func ClipCopy(r Rect, x, y, srcW, srcH, dstW, dstH int) (Rect, int, int, bool) {
	if r.X < 0 {
		x -= r.X
		r.W += r.X
		r.X = 0
	}
	if r.Y < 0 {
		y -= r.Y
		r.H += r.Y
		r.Y = 0
	}
	r.W = min(r.W, srcW-r.X)
	r.H = min(r.H, srcH-r.Y)

	if x < 0 {
		r.X -= x
		r.W += x
		x = 0
	}
	if y < 0 {
		r.Y -= y
		r.H += y
		y = 0
	}
	r.W = min(r.W, dstW-x)
	r.H = min(r.H, dstH-y)

	if r.Empty() {
		return Rect{}, 0, 0, false
	}
	return r, x, y, true
}
