package text

// FontOption configures Font creation.
type FontOption func(*fontConfig)

// fontConfig holds configuration for Font.
type fontConfig struct {
	renderCacheLimit int
	parserName       string
	hinting          Hinting
}

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		renderCacheLimit: 512,
		parserName:       defaultParserName,
		hinting:          HintingNone,
	}
}

// WithRenderCacheLimit sets how many rendered glyphs the font remembers.
// A value of 0 disables the limit; a negative value disables the memo.
func WithRenderCacheLimit(n int) FontOption {
	return func(c *fontConfig) {
		c.renderCacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// "gotext" uses github.com/go-text/typesetting.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) FontOption {
	return func(c *fontConfig) {
		c.parserName = name
	}
}

// WithHinting sets the hinting mode used when rasterizing.
// Backends that cannot hint ignore it.
func WithHinting(h Hinting) FontOption {
	return func(c *fontConfig) {
		c.hinting = h
	}
}
