// Package config loads the bake settings of the fontatlas command.
package config

import (
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gogpu/fontatlas/atlas"
	"github.com/gogpu/fontatlas/text"
)

// Config holds the settings of one atlas bake.
type Config struct {
	// Input
	Font    string `json:"font"`
	Parser  string `json:"parser"`
	Chars   string `json:"chars"`
	Charset string `json:"charset"`

	// Atlas settings
	Scale     float64 `json:"scale"`
	Margin    *int    `json:"margin,omitempty"`
	Size      int     `json:"size"`
	MaxSize   int     `json:"max_size"`
	Algorithm string  `json:"algorithm"`

	// Output
	Output       string `json:"output"`
	Manifest     string `json:"manifest"`
	Preview      string `json:"preview"`
	PreviewScale int    `json:"preview_scale"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Relative paths are relative to the config file.
	dir := filepath.Dir(path)
	for _, p := range []*string{&cfg.Font, &cfg.Output, &cfg.Manifest, &cfg.Preview} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and a nil Margin mean "not set".
type Flags struct {
	Font         string
	Parser       string
	Chars        string
	Charset      string
	Scale        float64
	Margin       *int
	Size         int
	MaxSize      int
	Algorithm    string
	Output       string
	Manifest     string
	Preview      string
	PreviewScale int
}

// Resolve applies flag overrides and fills empty fields with defaults.
// CLI flags take priority when set.
func (c *Config) Resolve(flags Flags) {
	setString(&c.Font, flags.Font)
	setString(&c.Parser, flags.Parser)
	setString(&c.Algorithm, flags.Algorithm)
	setString(&c.Output, flags.Output)
	setString(&c.Manifest, flags.Manifest)
	setString(&c.Preview, flags.Preview)
	if flags.Chars != "" {
		c.Chars, c.Charset = flags.Chars, ""
	}
	if flags.Charset != "" {
		c.Charset, c.Chars = flags.Charset, ""
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Margin != nil {
		m := *flags.Margin
		c.Margin = &m
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.MaxSize > 0 {
		c.MaxSize = flags.MaxSize
	}
	if flags.PreviewScale > 0 {
		c.PreviewScale = flags.PreviewScale
	}

	// Defaults
	def := atlas.DefaultConfig()
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.Margin == nil {
		m := def.Margin
		c.Margin = &m
	}
	if c.Size <= 0 {
		c.Size = def.Width
	}
	if c.Algorithm == "" {
		c.Algorithm = string(def.Algorithm)
	}
	if c.Chars == "" && c.Charset == "" {
		c.Charset = "ascii"
	}
	if c.Output == "" {
		c.Output = "atlas.png"
	}
	if c.PreviewScale <= 0 {
		c.PreviewScale = 4
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// AtlasConfig returns the atlas settings. Call Resolve first.
func (c *Config) AtlasConfig() atlas.Config {
	cfg := atlas.DefaultConfig()
	cfg.Scale = c.Scale
	if c.Margin != nil {
		cfg.Margin = *c.Margin
	}
	cfg.Width, cfg.Height = c.Size, c.Size
	cfg.MaxSize = c.MaxSize
	cfg.Algorithm = atlas.Algorithm(strings.ToLower(c.Algorithm))
	return cfg
}

// FontOptions returns the text options for loading the font.
func (c *Config) FontOptions() []text.FontOption {
	if c.Parser == "" {
		return nil
	}
	return []text.FontOption{text.WithParser(c.Parser)}
}

// CharSeq returns the characters to bake: Chars if set, else the named
// Charset.
func (c *Config) CharSeq() (iter.Seq[rune], error) {
	if c.Chars != "" {
		return text.Runes(c.Chars), nil
	}
	var tables []*unicode.RangeTable
	for _, name := range strings.Split(c.Charset, ",") {
		rt, ok := text.Charset(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("config: unknown charset %q (known: %s)",
				name, strings.Join(text.CharsetNames(), ", "))
		}
		tables = append(tables, rt)
	}
	return text.RangeChars(tables...), nil
}
