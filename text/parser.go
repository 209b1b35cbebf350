package text

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font library behind the cache
// (e.g., golang.org/x/image/font/opentype vs a bitmap font format).
//
// The default implementation is registered as "sfnt".
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a Rasterizer.
	Parse(data []byte) (Rasterizer, error)
}

// Rasterizer turns the characters of one parsed font into glyphs.
// Implementations need not be safe for concurrent use: Build drives a
// Rasterizer from a single goroutine.
type Rasterizer interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// Coverage returns every character the font maps to a glyph,
	// sorted ascending and without duplicates.
	Coverage() []rune

	// Rasterize renders r at pointSize pixels per em.
	Rasterize(r rune, pointSize float64) (Glyph, error)
}

// defaultParserName is the name of the default parser.
const defaultParserName = "sfnt"

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		defaultParserName: sfntParser{},
	}
)

// RegisterParser registers a custom font parser under name, replacing any
// parser previously registered with that name.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// lookupParser returns the parser registered under name.
func lookupParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
