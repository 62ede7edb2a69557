package text

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/fontatlas/pack"
)

func TestNewBitmap(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		wantW, wantH  int
		wantRawLength int
	}{
		{"regular", 4, 3, 4, 3, 12},
		{"zero height", 4, 0, 4, 0, 0},
		{"zero width", 0, 5, 0, 0, 0},
		{"empty", 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm := NewBitmap(tt.w, tt.h)
			if bm.Width() != tt.wantW || bm.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", bm.Width(), bm.Height(), tt.wantW, tt.wantH)
			}
			if len(bm.Raw()) != tt.wantRawLength {
				t.Errorf("len(Raw()) = %d, want %d", len(bm.Raw()), tt.wantRawLength)
			}
		})
	}
}

func TestNewBitmapNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative size")
		}
	}()
	NewBitmap(-1, 2)
}

func TestBitmapGetSet(t *testing.T) {
	bm := NewBitmap(3, 2)
	bm.Set(2, 1, 200)
	bm.Set(3, 0, 9)  // out of range, ignored
	bm.Set(-1, 0, 9) // out of range, ignored

	if v, ok := bm.Get(2, 1); !ok || v != 200 {
		t.Errorf("Get(2,1) = %d, %v; want 200, true", v, ok)
	}
	if _, ok := bm.Get(3, 0); ok {
		t.Error("Get(3,0) should be out of range")
	}
	if _, ok := bm.Get(0, 2); ok {
		t.Error("Get(0,2) should be out of range")
	}
	if got := bm.Raw()[5]; got != 200 {
		t.Errorf("Raw()[5] = %d, want 200", got)
	}
	for i, v := range bm.Raw() {
		if i != 5 && v != 0 {
			t.Errorf("Raw()[%d] = %d, want 0", i, v)
		}
	}
}

func TestBitmapFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		pix     []uint8
		width   int
		wantErr bool
		wantH   int
	}{
		{"exact", make([]uint8, 6), 3, false, 2},
		{"not multiple", make([]uint8, 7), 3, true, 0},
		{"negative width", nil, -1, true, 0},
		{"zero width with pixels", make([]uint8, 1), 0, true, 0},
		{"zero width empty", nil, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := BitmapFromRaw(tt.pix, tt.width)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && bm.Height() != tt.wantH {
				t.Errorf("Height() = %d, want %d", bm.Height(), tt.wantH)
			}
		})
	}
}

func TestBitmapResizePreservesContent(t *testing.T) {
	bm := NewBitmap(3, 2)
	for y := range 2 {
		for x := range 3 {
			bm.Set(x, y, uint8(1+x+y*3))
		}
	}

	bm.Resize(5, 4)

	if bm.Width() != 5 || bm.Height() != 4 {
		t.Fatalf("size = %dx%d, want 5x4", bm.Width(), bm.Height())
	}
	for y := range 4 {
		for x := range 5 {
			want := uint8(0)
			if x < 3 && y < 2 {
				want = uint8(1 + x + y*3)
			}
			if v, _ := bm.Get(x, y); v != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, v, want)
			}
		}
	}
}

func TestBitmapResizeShrinkPanics(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"narrower", 2, 4},
		{"shorter", 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic when shrinking")
				}
			}()
			NewBitmap(3, 3).Resize(tt.w, tt.h)
		})
	}
}

func TestBitmapLines(t *testing.T) {
	bm := NewBitmap(2, 3)
	bm.Set(0, 0, 1)
	bm.Set(1, 1, 2)
	bm.Set(0, 2, 3)

	var got [][]uint8
	for line := range bm.Lines() {
		got = append(got, slices.Clone(line))
	}
	want := [][]uint8{{1, 0}, {0, 2}, {3, 0}}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("line %d = %v, want %v", i, got[i], want[i])
		}
	}

	n := 0
	for range bm.Lines() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("break after first line visited %d lines", n)
	}

	for range NewBitmap(0, 0).Lines() {
		t.Error("empty bitmap should yield no lines")
	}
}

func TestBitmapFromAlpha(t *testing.T) {
	img := image.NewAlpha(image.Rect(10, 20, 13, 22))
	img.SetAlpha(10, 20, color.Alpha{A: 7})
	img.SetAlpha(12, 21, color.Alpha{A: 9})

	bm := BitmapFromAlpha(img)
	if bm.Width() != 3 || bm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", bm.Width(), bm.Height())
	}
	if v, _ := bm.Get(0, 0); v != 7 {
		t.Errorf("(0,0) = %d, want 7", v)
	}
	if v, _ := bm.Get(2, 1); v != 9 {
		t.Errorf("(2,1) = %d, want 9", v)
	}
}

func TestBitmapAlphaSharesPixels(t *testing.T) {
	bm := NewBitmap(4, 2)
	a := bm.Alpha()
	if a.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Fatalf("Bounds() = %v", a.Bounds())
	}
	bm.Set(3, 1, 77)
	if got := a.AlphaAt(3, 1).A; got != 77 {
		t.Errorf("AlphaAt(3,1) = %d, want 77", got)
	}
}

func TestBitmapClone(t *testing.T) {
	bm := NewBitmap(2, 2)
	bm.Set(1, 1, 5)
	c := bm.Clone()
	c.Set(1, 1, 6)
	if v, _ := bm.Get(1, 1); v != 5 {
		t.Errorf("original modified through clone: %d", v)
	}
	if c.Width() != 2 || c.Height() != 2 {
		t.Errorf("clone size = %dx%d", c.Width(), c.Height())
	}
}

func TestBitmapSubBitmap(t *testing.T) {
	bm := NewBitmap(4, 4)
	for y := range 4 {
		for x := range 4 {
			bm.Set(x, y, uint8(x+y*4))
		}
	}

	sub := bm.SubBitmap(pack.Rect{X: 1, Y: 2, W: 2, H: 2})
	want := []uint8{9, 10, 13, 14}
	if !slices.Equal(sub.Raw(), want) {
		t.Errorf("SubBitmap = %v, want %v", sub.Raw(), want)
	}

	// Partly outside: the missing pixels stay empty.
	edge := bm.SubBitmap(pack.Rect{X: 3, Y: 3, W: 2, H: 2})
	if !slices.Equal(edge.Raw(), []uint8{15, 0, 0, 0}) {
		t.Errorf("edge SubBitmap = %v", edge.Raw())
	}
}

func TestBitmapPatch(t *testing.T) {
	src := NewBitmap(2, 2)
	src.Set(0, 0, 1)
	src.Set(1, 1, 2)

	t.Run("bitmap source", func(t *testing.T) {
		dst := NewBitmap(4, 4)
		pack.Patch[uint8](dst, 1, 1, src)
		if v, _ := dst.Get(1, 1); v != 1 {
			t.Errorf("(1,1) = %d, want 1", v)
		}
		if v, _ := dst.Get(2, 2); v != 2 {
			t.Errorf("(2,2) = %d, want 2", v)
		}
	})

	t.Run("grid source", func(t *testing.T) {
		g := pack.NewGrid[uint8](2, 2)
		g.Set(1, 0, 3)
		dst := NewBitmap(4, 4)
		pack.Patch[uint8](dst, 2, 2, g)
		if v, _ := dst.Get(3, 2); v != 3 {
			t.Errorf("(3,2) = %d, want 3", v)
		}
	})

	t.Run("clipped", func(t *testing.T) {
		dst := NewBitmap(3, 3)
		pack.Patch[uint8](dst, 2, 2, src)
		if v, _ := dst.Get(2, 2); v != 1 {
			t.Errorf("(2,2) = %d, want 1", v)
		}
	})
}

func TestBitmapAsPackingTarget(t *testing.T) {
	p := pack.NewGrowingSkyline[uint8](NewBitmap(8, 8))
	glyph := NewBitmap(6, 6)
	glyph.Set(0, 0, 255)

	var rects []pack.Rect
	for range 3 {
		r, err := p.PackResize(glyph, pack.DoubleGrowth)
		if err != nil {
			t.Fatalf("PackResize: %v", err)
		}
		rects = append(rects, r)
	}

	bm := p.Finish()
	for _, r := range rects {
		if v, _ := bm.Get(r.X, r.Y); v != 255 {
			t.Errorf("glyph corner at %v = %d, want 255", r, v)
		}
	}
}
