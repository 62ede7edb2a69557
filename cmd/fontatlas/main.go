// Command fontatlas bakes a font into a glyph atlas image and manifest.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/atlas"
	"github.com/gogpu/fontatlas/export"
	"github.com/gogpu/fontatlas/internal/config"
	"github.com/gogpu/fontatlas/text"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "fontatlas:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fontatlas", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "JSON config file")
		fontPath   = fs.String("font", "", "TTF/OTF font file (default: Go Regular)")
		parser     = fs.String("parser", "", "font parser: ximage or gotext")
		chars      = fs.String("chars", "", "characters to bake")
		charset    = fs.String("charset", "", "comma-separated named charsets ("+strings.Join(text.CharsetNames(), ", ")+")")
		scale      = fs.Float64("scale", 0, "glyph size in pixels per em (default 20)")
		margin     = fs.Int("margin", 1, "empty pixels around each glyph")
		size       = fs.Int("size", 0, "initial atlas width and height (default 256)")
		maxSize    = fs.Int("max-size", 0, "maximum atlas width and height (0 = unbounded)")
		algorithm  = fs.String("algorithm", "", "packing algorithm: skyline or shelf")
		output     = fs.String("out", "", "atlas image file: .png, .webp or .tga (default atlas.png)")
		manifest   = fs.String("manifest", "", "write a JSON manifest to this file")
		preview    = fs.String("preview", "", "write an upscaled PNG preview to this file")
		previewX   = fs.Int("preview-scale", 0, "preview upscale factor (default 4)")
		ascii      = fs.Bool("ascii", false, "print the atlas as text")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	flags := config.Flags{
		Font:         *fontPath,
		Parser:       *parser,
		Chars:        *chars,
		Charset:      *charset,
		Scale:        *scale,
		Size:         *size,
		MaxSize:      *maxSize,
		Algorithm:    *algorithm,
		Output:       *output,
		Manifest:     *manifest,
		Preview:      *preview,
		PreviewScale: *previewX,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "margin" {
			flags.Margin = margin
		}
	})
	cfg.Resolve(flags)

	font, err := loadFont(&cfg)
	if err != nil {
		return err
	}
	seq, err := cfg.CharSeq()
	if err != nil {
		return err
	}

	a, bm, err := atlas.Make(font, seq, cfg.AtlasConfig())
	if err != nil {
		return err
	}

	if err := export.WriteFile(cfg.Output, bm); err != nil {
		return err
	}
	slog.Info("atlas written", "path", cfg.Output, "chars", a.Len(),
		"width", bm.Width(), "height", bm.Height())

	if cfg.Manifest != "" {
		if err := writeManifest(cfg.Manifest, font.Name(), cfg.Output, a, bm); err != nil {
			return err
		}
	}
	if cfg.Preview != "" {
		if err := export.WriteImageFile(cfg.Preview, export.Preview(bm, cfg.PreviewScale, true)); err != nil {
			return err
		}
	}
	if *ascii {
		width, _ := export.TerminalWidth(os.Stdout)
		return export.WriteASCII(os.Stdout, bm, width)
	}
	return nil
}

func loadFont(cfg *config.Config) (*text.Font, error) {
	if cfg.Font == "" {
		return text.NewFont(goregular.TTF, cfg.FontOptions()...)
	}
	return text.NewFontFromFile(cfg.Font, cfg.FontOptions()...)
}

func writeManifest(path, fontName, imagePath string, a *atlas.Atlas, bm *text.Bitmap) error {
	rel, err := filepath.Rel(filepath.Dir(path), imagePath)
	if err != nil {
		rel = imagePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteManifest(f, export.NewManifest(fontName, rel, a, bm)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
