package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/text"
)

// Format is an image file format.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
)

// Formats lists the supported formats.
var Formats = []Format{PNG, WebP, TGA}

// ParseFormat returns the format named s, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(s), "."))
	switch f {
	case PNG, WebP, TGA:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Gray returns an *image.Gray view of bm sharing its pixels: glyphs are
// white on black.
func Gray(bm *text.Bitmap) *image.Gray {
	return &image.Gray{
		Pix:    bm.Raw(),
		Stride: bm.Width(),
		Rect:   image.Rect(0, 0, bm.Width(), bm.Height()),
	}
}

// Encode writes bm to w in format f.
func Encode(w io.Writer, bm *text.Bitmap, f Format) error {
	switch f {
	case PNG:
		return WritePNG(w, bm)
	case WebP:
		return WriteWebP(w, bm)
	case TGA:
		return WriteTGA(w, bm)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WritePNG writes bm as an 8-bit greyscale PNG.
func WritePNG(w io.Writer, bm *text.Bitmap) error {
	if err := png.Encode(w, Gray(bm)); err != nil {
		return fmt.Errorf("export: PNG encode: %w", err)
	}
	return nil
}

// WriteWebP writes bm as a lossless WebP.
func WriteWebP(w io.Writer, bm *text.Bitmap) error {
	if err := nativewebp.Encode(w, imaging.Clone(Gray(bm)), nil); err != nil {
		return fmt.Errorf("export: WebP encode: %w", err)
	}
	return nil
}

// WriteTGA writes bm as an uncompressed TGA.
func WriteTGA(w io.Writer, bm *text.Bitmap) error {
	if err := tga.Encode(w, imaging.Clone(Gray(bm))); err != nil {
		return fmt.Errorf("export: TGA encode: %w", err)
	}
	return nil
}

// WriteFile writes bm to path, creating parent directories.
// The format is taken from the file extension.
func WriteFile(path string, bm *text.Bitmap) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return Encode(w, bm, f) })
}

// WriteImageFile writes img as a PNG file, creating parent directories.
func WriteImageFile(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("export: PNG encode: %w", err)
		}
		return nil
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	if err := write(out); err != nil {
		return err
	}
	fontatlas.Logger().Debug("export: wrote file", "path", path)
	return nil
}

// Preview returns bm scaled up by factor with nearest-neighbour sampling
// so individual pixels stay visible. With invert set, glyphs are drawn
// black on white.
func Preview(bm *text.Bitmap, factor int, invert bool) *image.NRGBA {
	if bm.Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}
	factor = max(1, factor)
	img := imaging.Resize(Gray(bm), bm.Width()*factor, bm.Height()*factor, imaging.NearestNeighbor)
	if invert {
		img = imaging.Invert(img)
	}
	return img
}
