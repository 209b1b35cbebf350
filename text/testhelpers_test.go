package text

import (
	"errors"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

// testCaches memoizes gomono builds per point size; whole-font builds at
// large sizes are the slowest part of the suite.
var testCaches sync.Map // map[float64]*FontCache

// loadTestCache builds the embedded Go Mono font at size.
func loadTestCache(t *testing.T, size float64) *FontCache {
	t.Helper()

	if c, ok := testCaches.Load(size); ok {
		return c.(*FontCache)
	}
	c, err := Build(gomono.TTF, size)
	if err != nil {
		t.Fatalf("failed to build test cache: %v", err)
	}
	testCaches.Store(size, c)
	return c
}

// fakeParser serves a fixed glyph table, for checking Build's policy
// independently of a real rasterizer.
type fakeParser struct {
	name   string
	glyphs map[rune]Glyph
	fail   map[rune]bool
}

func (p *fakeParser) Parse([]byte) (Rasterizer, error) {
	return p, nil
}

func (p *fakeParser) Name() string { return p.name }

func (p *fakeParser) Coverage() []rune {
	var runes []rune
	for r := range p.glyphs {
		runes = append(runes, r)
	}
	for r := range p.fail {
		runes = append(runes, r)
	}
	return runes
}

func (p *fakeParser) Rasterize(r rune, _ float64) (Glyph, error) {
	if p.fail[r] {
		return Glyph{}, &RasterizeError{Rune: r, Err: errors.New("fake failure")}
	}
	return p.glyphs[r], nil
}

// registerFake registers p under a name unique to the test.
func registerFake(t *testing.T, p *fakeParser) Option {
	t.Helper()
	name := "fake/" + t.Name()
	RegisterParser(name, p)
	return WithParser(name)
}

func mustGlyph(t *testing.T, w, h int, bitmap []byte) Glyph {
	t.Helper()
	g, err := NewGlyph(w, h, bitmap)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
