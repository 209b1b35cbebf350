package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrParseFont is returned when the font data cannot be parsed.
	// The underlying parser error is wrapped alongside it.
	ErrParseFont = errors.New("text: failed to parse font")

	// ErrInvalidPointSize is returned for a zero, negative or NaN point size.
	ErrInvalidPointSize = errors.New("text: point size must be positive")

	// ErrNoGlyphs is returned when a font covers no characters.
	ErrNoGlyphs = errors.New("text: font covers no characters")

	// ErrUnknownParser is returned when WithParser names a parser that
	// was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrBitmapSize is returned by NewGlyph when the bitmap length does
	// not equal width*height.
	ErrBitmapSize = errors.New("text: bitmap length does not match glyph size")
)

// RasterizeError reports a single character the rasterizer could not
// render. Build logs and skips such characters.
type RasterizeError struct {
	Rune rune
	Err  error
}

func (e *RasterizeError) Error() string {
	return "text: cannot rasterize " + quoteRune(e.Rune) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *RasterizeError) Unwrap() error {
	return e.Err
}
