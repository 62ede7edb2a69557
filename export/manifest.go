package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/fontatlas/atlas"
	"github.com/gogpu/fontatlas/text"
)

// Manifest describes an atlas bitmap for engines loading it from disk.
type Manifest struct {
	Font   string       `json:"font,omitempty"`
	Scale  float64      `json:"scale"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Image  string       `json:"image,omitempty"`
	Glyphs []GlyphEntry `json:"glyphs"`
}

// GlyphEntry is the manifest record of one character.
type GlyphEntry struct {
	Char     string     `json:"char"`
	Code     rune       `json:"code"`
	X        int        `json:"x"`
	Y        int        `json:"y"`
	W        int        `json:"w"`
	H        int        `json:"h"`
	Top      int        `json:"top"`
	PreDraw  [2]float64 `json:"pre_draw_advance"`
	PostDraw [2]float64 `json:"post_draw_advance"`
}

// NewManifest builds the manifest of a, in ascending character order.
func NewManifest(fontName, image string, a *atlas.Atlas, bm *text.Bitmap) Manifest {
	m := Manifest{
		Font:   fontName,
		Scale:  a.Scale(),
		Width:  bm.Width(),
		Height: bm.Height(),
		Image:  image,
		Glyphs: make([]GlyphEntry, 0, a.Len()),
	}
	for r, info := range a.All() {
		b := info.BoundingBox
		m.Glyphs = append(m.Glyphs, GlyphEntry{
			Char:     string(r),
			Code:     r,
			X:        b.X,
			Y:        b.Y,
			W:        b.W,
			H:        b.H,
			Top:      info.Top,
			PreDraw:  [2]float64{info.PreDrawAdvance.X, info.PreDrawAdvance.Y},
			PostDraw: [2]float64{info.PostDrawAdvance.X, info.PostDrawAdvance.Y},
		})
	}
	return m
}

// WriteManifest writes m as indented JSON.
func WriteManifest(w io.Writer, m Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("export: manifest: %w", err)
	}
	return nil
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("export: manifest: %w", err)
	}
	return m, nil
}
