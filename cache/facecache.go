package cache

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/atlas"
	"github.com/gogpu/fontatlas/pack"
	"github.com/gogpu/fontatlas/text"
)

// Transform converts a greyscale bitmap into the caller's representation,
// for example a GPU texture handle. It must not retain bm after returning
// unless it owns it: the cache passes the baked atlas bitmap and freshly
// rendered glyph bitmaps.
type Transform[T any] func(bm *text.Bitmap) (T, error)

// MissingGlyph is a character prepared after the atlas was baked.
type MissingGlyph[T any] struct {
	// Value is the transformed glyph bitmap. It is the zero T for
	// unsupported and blank glyphs.
	Value T

	// Info holds the glyph metrics. BoundingBox covers all of Value.
	Info text.CharInfo

	// Supported is false if the font has no glyph for the character.
	Supported bool
}

// FaceCache serves draw commands for one font at one scale.
//
// It bakes an atlas for an initial character set at construction and
// renders other characters lazily, one bitmap each, as strings are
// prepared. Baked characters and lazily prepared ones never overlap.
// The cache only grows.
//
// FaceCache is not safe for concurrent use; see Locked.
type FaceCache[T any] struct {
	id uint64

	raster    text.Rasterizer
	scale     float64
	transform Transform[T]
	penMode   PenMode

	atlas  *atlas.Atlas
	bitmap *text.Bitmap
	value  T

	missing map[rune]MissingGlyph[T]

	rasterCalls    int
	transformCalls int
}

// cacheIDs hands out FaceCache identities for Prepared tokens.
var cacheIDs atomic.Uint64

// New bakes an atlas of chars rendered by r at scale and converts it with
// transform.
//
// Characters r cannot render are left out of the atlas. An error from
// transform is returned wrapped and no cache is created.
func New[T any](r text.Rasterizer, chars iter.Seq[rune], scale float64, transform Transform[T], opts ...Option) (*FaceCache[T], error) {
	if r == nil {
		return nil, ErrNilRasterizer
	}
	if transform == nil {
		return nil, ErrNilTransform
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cfg := o.atlas
	cfg.Scale = scale

	a, bm, err := atlas.Make(r, chars, cfg)
	if err != nil {
		return nil, err
	}
	value, err := transform(bm)
	if err != nil {
		return nil, fmt.Errorf("cache: transforming atlas: %w", err)
	}

	return &FaceCache[T]{
		id:             cacheIDs.Add(1),
		raster:         r,
		scale:          scale,
		transform:      transform,
		penMode:        o.penMode,
		atlas:          a,
		bitmap:         bm,
		value:          value,
		missing:        make(map[rune]MissingGlyph[T]),
		transformCalls: 1,
	}, nil
}

// Atlas returns the baked atlas.
func (c *FaceCache[T]) Atlas() *atlas.Atlas { return c.atlas }

// AtlasBitmap returns the baked atlas bitmap. It must not be modified.
func (c *FaceCache[T]) AtlasBitmap() *text.Bitmap { return c.bitmap }

// AtlasValue returns the transformed atlas bitmap.
func (c *FaceCache[T]) AtlasValue() T { return c.value }

// Scale returns the size glyphs are rendered at.
func (c *FaceCache[T]) Scale() float64 { return c.scale }

// PenMode returns the pen advance mode of DrawingCommands.
func (c *FaceCache[T]) PenMode() PenMode { return c.penMode }

// Missing returns the lazily prepared entry for r, if any.
// Characters baked into the atlas are never reported.
func (c *FaceCache[T]) Missing(r rune) (MissingGlyph[T], bool) {
	g, ok := c.missing[r]
	return g, ok
}

// IsPrepared reports whether r can be drawn without preparing it first.
func (c *FaceCache[T]) IsPrepared(r rune) bool {
	if c.atlas.Contains(r) {
		return true
	}
	_, ok := c.missing[r]
	return ok
}

// PrepareString makes every character of s drawable and returns a token
// for DrawingCommands.
//
// Characters outside the baked atlas that were not seen before are
// rendered individually and converted with the cache's transform.
// Characters the font cannot render are remembered as unsupported so they
// are not rendered again.
//
// A transform error stops preparation and is returned wrapped. Characters
// prepared before the failure stay cached.
func (c *FaceCache[T]) PrepareString(s string) (Prepared, error) {
	log := fontatlas.Logger()
	for _, r := range s {
		if c.IsPrepared(r) {
			continue
		}

		c.rasterCalls++
		info, bm, ok := c.raster.RenderChar(r, c.scale)
		if !ok {
			c.missing[r] = MissingGlyph[T]{}
			log.Debug("cache: unsupported char", "char", string(r))
			continue
		}
		if bm.Empty() {
			info.BoundingBox = pack.Rect{}
			c.missing[r] = MissingGlyph[T]{Info: info, Supported: true}
			continue
		}

		c.transformCalls++
		v, err := c.transform(bm)
		if err != nil {
			log.Warn("cache: transform failed", "char", string(r), "err", err)
			return Prepared{}, fmt.Errorf("cache: transforming %q: %w", r, err)
		}
		info.BoundingBox = pack.Rect{W: bm.Width(), H: bm.Height()}
		c.missing[r] = MissingGlyph[T]{Value: v, Info: info, Supported: true}
		log.Debug("cache: prepared char", "char", string(r), "size", info.BoundingBox)
	}
	return Prepared{text: s, cache: c.id}, nil
}

// DrawingCommands returns one command per drawable character of the
// prepared string, in order. Unsupported characters produce no command.
//
// The pen starts at (0, 0) and moves according to the cache's PenMode.
//
// DrawingCommands panics if p was not returned by PrepareString on this
// cache.
func (c *FaceCache[T]) DrawingCommands(p Prepared) []DrawCommand[T] {
	if p.cache == 0 {
		panic("cache: zero Prepared token; call PrepareString first")
	}
	if p.cache != c.id {
		panic("cache: Prepared token belongs to another FaceCache")
	}

	cmds := make([]DrawCommand[T], 0, len(p.text))
	var pen text.Vec
	for _, r := range p.text {
		var (
			info   text.CharInfo
			source T
		)
		if ci, ok := c.atlas.Info(r); ok {
			info, source = ci, c.value
		} else if g, ok := c.missing[r]; ok {
			if !g.Supported {
				continue
			}
			info, source = g.Info, g.Value
		} else {
			// Unreachable for tokens from PrepareString: the cache never shrinks.
			panic(fmt.Sprintf("cache: character %q was not prepared", r))
		}

		pen = pen.Add(info.PreDrawAdvance)
		cmds = append(cmds, DrawCommand[T]{
			Char:            r,
			Source:          source,
			SourceRect:      info.BoundingBox,
			Pen:             pen,
			Top:             info.Top,
			PreDrawAdvance:  info.PreDrawAdvance,
			PostDrawAdvance: info.PostDrawAdvance,
		})
		if c.penMode == PenLayout {
			pen = pen.Add(text.Vec{
				X: info.PostDrawAdvance.X - info.PreDrawAdvance.X,
				Y: info.PostDrawAdvance.Y - info.PreDrawAdvance.Y,
			})
		}
	}
	return cmds
}

// DrawingCommandsPrepared prepares s and returns its draw commands.
func (c *FaceCache[T]) DrawingCommandsPrepared(s string) ([]DrawCommand[T], error) {
	p, err := c.PrepareString(s)
	if err != nil {
		return nil, err
	}
	return c.DrawingCommands(p), nil
}

// Stats describes the content of a FaceCache.
type Stats struct {
	// Baked is the number of characters in the atlas.
	Baked int
	// Missing is the number of supported characters prepared lazily.
	Missing int
	// Unsupported is the number of prepared characters without a glyph.
	Unsupported int
	// RasterCalls counts lazy RenderChar calls.
	RasterCalls int
	// TransformCalls counts transform calls, the atlas included.
	TransformCalls int
}

// Stats returns a snapshot of cache statistics.
func (c *FaceCache[T]) Stats() Stats {
	s := Stats{
		Baked:          c.atlas.Len(),
		RasterCalls:    c.rasterCalls,
		TransformCalls: c.transformCalls,
	}
	for _, g := range c.missing {
		if g.Supported {
			s.Missing++
		} else {
			s.Unsupported++
		}
	}
	return s
}
