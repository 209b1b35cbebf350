// Package text rasterizes a font into a glyph cache for tterm.
//
// The pipeline is split in two:
//
//   - Rasterizer: wraps one parsed font and renders a single character
//     into an 8-bit coverage bitmap (default backend: golang.org/x/image)
//   - FontCache: built once from every character the font covers,
//     immutable afterwards
//
// # Example usage
//
//	// Rasterize the whole font once at startup
//	cache, err := text.Build(gomono.TTF, 17)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	g, ok := cache.Glyph('A')
//	if ok {
//	    fmt.Println(g.Width(), g.Height(), cache.MaxHeight())
//	}
//
// # Pluggable Parser Backend
//
// Parsing is abstracted through the FontParser interface. By default,
// outlines come from golang.org/x/image/font/opentype and coverage from
// the cmap table as read by github.com/go-text/typesetting.
// Custom parsers can be registered for other formats:
//
//	text.RegisterParser("psf", psfParser{})
//	cache, err := text.Build(data, 16, text.WithParser("psf"))
package text
