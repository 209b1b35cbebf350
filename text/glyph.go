package text

import "fmt"

// Glyph is one character rasterized at a fixed point size: an 8-bit
// coverage bitmap in row-major order plus its dimensions in pixels.
//
// A Glyph is immutable. The slice returned by Bitmap is shared with the
// cache and must not be modified.
type Glyph struct {
	width  int
	height int
	bitmap []byte
}

// NewGlyph returns a glyph of the given size. The bitmap is copied and
// its length must be exactly width*height.
func NewGlyph(width, height int, bitmap []byte) (Glyph, error) {
	if width < 0 || height < 0 {
		return Glyph{}, fmt.Errorf("%w: %dx%d", ErrBitmapSize, width, height)
	}
	if len(bitmap) != width*height {
		return Glyph{}, fmt.Errorf("%w: %d bytes for %dx%d", ErrBitmapSize, len(bitmap), width, height)
	}
	b := make([]byte, len(bitmap))
	copy(b, bitmap)
	return Glyph{width: width, height: height, bitmap: b}, nil
}

// Width returns the glyph width in pixels. This is also the horizontal
// advance used by the compositor.
func (g Glyph) Width() int { return g.width }

// Height returns the glyph height in pixels.
func (g Glyph) Height() int { return g.height }

// Bitmap returns the row-major coverage bytes. len(Bitmap()) equals
// Width()*Height() except for the space glyph, whose width is widened
// without growing the (empty) bitmap.
func (g Glyph) Bitmap() []byte { return g.bitmap }

// Stride returns the number of bytes per bitmap row.
func (g Glyph) Stride() int {
	if g.height == 0 {
		return g.width
	}
	return len(g.bitmap) / g.height
}

// Empty reports whether the glyph contributes no pixels.
func (g Glyph) Empty() bool {
	return len(g.bitmap) == 0
}

// withWidth returns a copy of g advertising width w. The bitmap is kept.
func (g Glyph) withWidth(w int) Glyph {
	g.width = w
	return g
}

func quoteRune(r rune) string {
	return fmt.Sprintf("%q (U+%04X)", r, r)
}
