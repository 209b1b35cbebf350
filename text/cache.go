package text

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"math"
	"os"
	"slices"
)

// FontCache maps every character a font covers to its glyph, rasterized
// once at a single point size.
//
// A FontCache is immutable after construction and safe for concurrent use.
// Build it once at startup and share the pointer.
type FontCache struct {
	glyphs    map[rune]Glyph
	runes     []rune // sorted keys of glyphs
	pointSize float64
	maxHeight int
	name      string
}

// Build parses font data (TTF or OTF) and rasterizes every character it
// covers at pointSize. Entries the rasterizer cannot render are logged and
// left out.
//
// The space character is given a width of floor(pointSize/2) regardless
// of what the rasterizer reports, since whitespace outlines usually have
// no ink and therefore no width.
//
// Build fails with ErrEmptyFontData, ErrInvalidPointSize, ErrParseFont,
// ErrUnknownParser or ErrNoGlyphs. None of these are transient.
func Build(data []byte, pointSize float64, opts ...Option) (*FontCache, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if err := checkPointSize(pointSize); err != nil {
		return nil, err
	}

	config := defaultBuildConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := lookupParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}

	rz, err := parser.Parse(data)
	if err != nil {
		if !errors.Is(err, ErrParseFont) {
			err = fmt.Errorf("%w: %w", ErrParseFont, err)
		}
		return nil, err
	}
	if c, ok := rz.(io.Closer); ok {
		defer func() {
			_ = c.Close()
		}()
	}
	if hs, ok := rz.(hintingSetter); ok {
		hs.SetHinting(config.hinting)
	}

	return build(rz, pointSize)
}

// BuildFromFile reads a font file and calls Build.
func BuildFromFile(path string, pointSize float64, opts ...Option) (*FontCache, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return Build(data, pointSize, opts...)
}

// NewFontCache builds a cache from glyphs that were rasterized elsewhere.
// The map is copied. The space override applies as in Build.
func NewFontCache(glyphs map[rune]Glyph, pointSize float64) (*FontCache, error) {
	if err := checkPointSize(pointSize); err != nil {
		return nil, err
	}
	return newFontCache(maps.Clone(glyphs), pointSize, ""), nil
}

func build(rz Rasterizer, pointSize float64) (*FontCache, error) {
	runes := rz.Coverage()
	glyphs := make(map[rune]Glyph, len(runes))

	for _, r := range runes {
		g, err := rz.Rasterize(r, pointSize)
		if err != nil {
			logger().Warn("text: skipping glyph", "rune", quoteRune(r), "err", err)
			continue
		}
		if g.width < 0 || g.height < 0 || len(g.bitmap) != g.width*g.height {
			logger().Warn("text: skipping glyph with inconsistent bitmap",
				"rune", quoteRune(r), "width", g.width, "height", g.height, "len", len(g.bitmap))
			continue
		}
		glyphs[r] = g
	}

	if len(glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	c := newFontCache(glyphs, pointSize, rz.Name())
	logger().Info("text: font cache built",
		"font", c.name, "size", pointSize, "glyphs", len(c.glyphs), "max_height", c.maxHeight)
	return c, nil
}

func newFontCache(glyphs map[rune]Glyph, pointSize float64, name string) *FontCache {
	if sp, ok := glyphs[' ']; ok {
		glyphs[' '] = sp.withWidth(SpaceWidth(pointSize))
	}

	maxHeight := 0
	for _, g := range glyphs {
		maxHeight = max(maxHeight, g.height)
	}

	if name == "" {
		name = "Unknown Font"
	}

	return &FontCache{
		glyphs:    glyphs,
		runes:     slices.Sorted(maps.Keys(glyphs)),
		pointSize: pointSize,
		maxHeight: maxHeight,
		name:      name,
	}
}

// SpaceWidth returns the advance given to the space character at
// pointSize: half the point size, rounded down.
func SpaceWidth(pointSize float64) int {
	return int(math.Floor(pointSize / 2))
}

func checkPointSize(pointSize float64) error {
	if !(pointSize > 0) || math.IsInf(pointSize, 1) {
		return fmt.Errorf("%w: %g", ErrInvalidPointSize, pointSize)
	}
	return nil
}

// Glyph returns the glyph for r. The second result is false if the font
// does not cover r.
func (c *FontCache) Glyph(r rune) (Glyph, bool) {
	g, ok := c.glyphs[r]
	return g, ok
}

// MaxHeight returns the tallest glyph height in the cache, or 0 if the
// cache is empty. Text is aligned against this height.
func (c *FontCache) MaxHeight() int {
	return c.maxHeight
}

// Len returns the number of cached glyphs.
func (c *FontCache) Len() int {
	return len(c.glyphs)
}

// Runes returns the cached characters in ascending order.
func (c *FontCache) Runes() []rune {
	return slices.Clone(c.runes)
}

// All returns an iterator over the cached glyphs in ascending rune order.
func (c *FontCache) All() iter.Seq2[rune, Glyph] {
	return func(yield func(rune, Glyph) bool) {
		for _, r := range c.runes {
			if !yield(r, c.glyphs[r]) {
				return
			}
		}
	}
}

// PointSize returns the size the glyphs were rasterized at.
func (c *FontCache) PointSize() float64 {
	return c.pointSize
}

// Name returns the font family name.
func (c *FontCache) Name() string {
	return c.name
}
