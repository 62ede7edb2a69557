package pack

import (
	"errors"
	"testing"
)

func TestShelf_Basic(t *testing.T) {
	p := NewShelf[int](NewGrid[int](100, 100))
	p.SetMargin(1)

	r, err := p.Pack(filled(20, 20, 1))
	if err != nil {
		t.Fatal("failed to pack first item")
	}
	if r != (Rect{X: 1, Y: 1, W: 20, H: 20}) {
		t.Errorf("expected Rect(1,1 20x20), got %v", r)
	}

	r, err = p.Pack(filled(20, 20, 2))
	if err != nil {
		t.Fatal("failed to pack second item")
	}
	if r.X != 23 || r.Y != 1 { // 20 + 2*1 margin
		t.Errorf("expected (23,1), got (%d,%d)", r.X, r.Y)
	}
}

func TestShelf_NewShelf(t *testing.T) {
	p := NewShelf[int](NewGrid[int](50, 100))

	r1, _ := p.Pack(filled(20, 20, 1))
	r2, _ := p.Pack(filled(20, 20, 2))
	if r2.Y != r1.Y {
		t.Errorf("expected same shelf, got y1=%d, y2=%d", r1.Y, r2.Y)
	}

	r3, err := p.Pack(filled(20, 20, 3))
	if err != nil {
		t.Fatal("failed to pack third item")
	}
	if r3.Y != 20 || r3.X != 0 {
		t.Errorf("expected new shelf at (0,20), got (%d,%d)", r3.X, r3.Y)
	}
	if p.ShelfCount() != 2 {
		t.Errorf("ShelfCount() = %d, want 2", p.ShelfCount())
	}
}

func TestShelf_Full(t *testing.T) {
	p := NewShelf[int](NewGrid[int](50, 50))
	p.SetMargin(1)

	count := 0
	for {
		if _, err := p.Pack(filled(20, 20, count+1)); err != nil {
			if !errors.Is(err, ErrNoFit) {
				t.Fatalf("unexpected error %v", err)
			}
			break
		}
		count++
		if count > 100 {
			t.Fatal("packer never filled up")
		}
	}

	if count != 4 { // 2x2 grid of 20+2 in 50x50
		t.Errorf("expected 4 placements, got %d", count)
	}
}

func TestShelf_Utilization(t *testing.T) {
	p := NewShelf[int](NewGrid[int](100, 100))
	if p.Utilization() != 0 {
		t.Errorf("expected 0 utilization initially, got %f", p.Utilization())
	}
	_, _ = p.Pack(filled(50, 50, 1))
	if u := p.Utilization(); u != 0.25 {
		t.Errorf("expected 0.25 utilization, got %f", u)
	}
}

func TestShelf_LastShelfGrowsTaller(t *testing.T) {
	p := NewShelf[int](NewGrid[int](100, 100))
	_, _ = p.Pack(filled(10, 10, 1))
	r, err := p.Pack(filled(10, 30, 2))
	if err != nil {
		t.Fatal(err)
	}
	if r.Y != 0 {
		t.Errorf("taller item should extend the last shelf, got y=%d", r.Y)
	}
	r, _ = p.Pack(filled(90, 5, 3))
	if r.Y != 30 {
		t.Errorf("next shelf should start below the extended one, got y=%d", r.Y)
	}
}

func TestGrowingShelf_PackResize(t *testing.T) {
	grid := NewGrid[int](32, 32)
	p := NewGrowingShelf[int](grid)
	p.SetMargin(1)

	var placed []Rect
	for i := 0; i < 40; i++ {
		r, err := p.PackResize(filled(10, 12, i+1), DoubleGrowth)
		if err != nil {
			t.Fatalf("PackResize(%d) error = %v", i, err)
		}
		placed = append(placed, r)
	}

	bounds := Rect{W: grid.Width(), H: grid.Height()}
	for i, a := range placed {
		if !bounds.ContainsRect(a) {
			t.Errorf("rect %d %v outside %v", i, a, bounds)
		}
		for j := i + 1; j < len(placed); j++ {
			if a.Expand(1).Overlaps(placed[j].Expand(1)) {
				t.Errorf("rects %d and %d overlap", i, j)
			}
		}
	}
	if out := p.Finish(); out != grid {
		t.Error("Finish() should return the target buffer")
	}
}
