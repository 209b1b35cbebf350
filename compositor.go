package tterm

import (
	"github.com/tterm/tterm/internal/blit"
	"github.com/tterm/tterm/text"
)

// DrawString composites s into fb on a single line starting at the left
// edge, using glyphs from cache.
//
// Glyphs are placed left to right, each advancing the cursor by its width.
// Vertically every glyph starts maxHeight-height rows from the top, so
// glyphs line up against the tallest glyph of the cache (not of s).
// Characters the cache does not cover are skipped without advancing.
// Pixels that fall outside fb are dropped; nothing wraps.
//
// Only coverage bytes greater than zero are written, as gray pixels; the
// rest of fb is left untouched.
func DrawString(cache *text.FontCache, fb *FrameBuffer, s string, maxHeight int) {
	if fb.Empty() {
		return
	}

	cursor := 0
	for _, r := range s {
		g, ok := cache.Glyph(r)
		if !ok {
			continue
		}
		drawGlyph(fb, g, cursor, maxHeight-g.Height())
		cursor += g.Width()
	}
}

// drawGlyph blits g with its top-left corner at column x, row y.
func drawGlyph(fb *FrameBuffer, g text.Glyph, x, y int) {
	if g.Empty() {
		return
	}
	blit.Gray(fb.pix, fb.width, fb.height, g.Bitmap(), g.Stride(), g.Width(), g.Height(), x, y)
}

// Compositor renders text from one font cache.
// It is safe for concurrent use with distinct framebuffers.
type Compositor struct {
	cache     *text.FontCache
	maxHeight int
}

// NewCompositor returns a compositor for cache. It panics if cache is nil.
func NewCompositor(cache *text.FontCache) *Compositor {
	if cache == nil {
		panic("tterm: NewCompositor called with a nil cache")
	}
	return &Compositor{
		cache:     cache,
		maxHeight: cache.MaxHeight(),
	}
}

// Cache returns the font cache the compositor draws from.
func (c *Compositor) Cache() *text.FontCache {
	return c.cache
}

// LineHeight returns the height in pixels of one composited line.
func (c *Compositor) LineHeight() int {
	return c.maxHeight
}

// DrawString composites s into fb. See the package-level DrawString.
func (c *Compositor) DrawString(fb *FrameBuffer, s string) {
	DrawString(c.cache, fb, s, c.maxHeight)
}

// Measure returns the horizontal advance of s in pixels, counting only
// characters the cache covers.
func (c *Compositor) Measure(s string) int {
	w := 0
	for _, r := range s {
		if g, ok := c.cache.Glyph(r); ok {
			w += g.Width()
		}
	}
	return w
}
