package tterm

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/tterm/tterm/text"
)

var testCaches sync.Map // map[float64]*text.FontCache

// loadTestCache builds the embedded Go Mono font at size, once per size.
func loadTestCache(t *testing.T, size float64) *text.FontCache {
	t.Helper()

	if c, ok := testCaches.Load(size); ok {
		return c.(*text.FontCache)
	}
	c, err := text.Build(gomono.TTF, size)
	if err != nil {
		t.Fatalf("failed to build test cache: %v", err)
	}
	testCaches.Store(size, c)
	return c
}

// syntheticCache returns a cache with hand-made glyphs so placement can be
// checked pixel by pixel:
//
//	'a' 2x2, 'b' 1x3, 'c' 3x1, '.' 0x0 with width 2 (via NewGlyph 2x0)
func syntheticCache(t *testing.T) *text.FontCache {
	t.Helper()

	mk := func(w, h int, bitmap ...byte) text.Glyph {
		g, err := text.NewGlyph(w, h, bitmap)
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	c, err := text.NewFontCache(map[rune]text.Glyph{
		'a': mk(2, 2,
			0x11, 0x22,
			0x33, 0x00),
		'b': mk(1, 3,
			0x44,
			0x55,
			0x66),
		'c': mk(3, 1, 0x77, 0x88, 0x99),
		'.': mk(2, 0),
	}, 4)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// clearedFrame returns a w×h framebuffer filled with Background.
func clearedFrame(w, h int) *FrameBuffer {
	fb := NewFrameBuffer(w, h)
	fb.Clear(Background)
	return fb
}
