package pack

import (
	"image"
	"testing"
)

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 5}
	if r.Right() != 12 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, want 12/8", r.Right(), r.Bottom())
	}
	if r.Area() != 50 {
		t.Errorf("Area() = %d, want 50", r.Area())
	}
	if r.String() != "Rect(2,3 10x5)" {
		t.Errorf("String() = %q", r.String())
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left", 10, 10, true},
		{"inside", 12, 13, true},
		{"last pixel", 14, 14, true},
		{"right edge", 15, 10, false},
		{"bottom edge", 10, 15, false},
		{"left of", 9, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"touching right", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching below", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"corner overlap", Rect{X: 9, Y: 9, W: 5, H: 5}, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"empty", Rect{X: 2, Y: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v", tt.b)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := Rect{W: 256, H: 256}
	if !outer.ContainsRect(Rect{X: 246, Y: 246, W: 10, H: 10}) {
		t.Error("rect touching the far corner should be contained")
	}
	if outer.ContainsRect(Rect{X: 247, Y: 0, W: 10, H: 10}) {
		t.Error("rect crossing the right edge should not be contained")
	}
	if !outer.ContainsRect(Rect{X: 1000, Y: 1000}) {
		t.Error("empty rect should be contained anywhere")
	}
}

func TestRect_ExpandAndImage(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 10, H: 10}.Expand(1)
	if r != (Rect{X: 0, Y: 0, W: 12, H: 12}) {
		t.Errorf("Expand(1) = %v", r)
	}
	img := r.Image()
	if img != image.Rect(0, 0, 12, 12) {
		t.Errorf("Image() = %v", img)
	}
	if back := RectFromImage(img); back != r {
		t.Errorf("RectFromImage(Image()) = %v, want %v", back, r)
	}
}
