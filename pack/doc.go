// Package pack places rectangular pixel buffers into a larger target buffer.
//
// The package is built around two capability interfaces:
//
//   - Buffer2D: a mutable rectangular grid of pixels of type P
//   - Growable: a Buffer2D that can be enlarged in place, keeping its contents
//
// Packers copy each source buffer into the target as it is placed and return
// the Rect it landed in. Two algorithms are provided:
//
//   - Skyline: tracks the lowest free y for every x-range of the target and
//     places each rectangle at the lowest position, preferring the leftmost
//     one on ties. This is the default and gives the best density.
//   - Shelf: fills horizontal strips left to right. Simpler and faster,
//     wastes more space when item heights vary.
//
// Both have a growing variant (GrowingSkyline, GrowingShelf) that enlarges
// the target with a GrowFunc and retries when an item does not fit.
//
// # Margin
//
// A margin m reserves empty pixels around every packed item. A w x h item
// occupies the region (x, y, w+2m, h+2m) of the target and is drawn at
// (x+m, y+m). The returned Rect is the drawn area only.
//
// # Example
//
//	grid := pack.NewGrid[uint8](256, 256)
//	p := pack.NewGrowingSkyline[uint8](grid)
//	p.SetMargin(1)
//	r, err := p.PackResize(glyph, pack.DoubleGrowth)
//	if err != nil {
//	    return err
//	}
//	out := p.Finish()
//
// Packers are single-use and not safe for concurrent use.
package pack
