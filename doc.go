// Package tterm renders a line of monospaced text into a raw pixel
// framebuffer.
//
// # Overview
//
// A font is rasterized once, at startup, into a [text.FontCache]. Each
// redraw clears a [FrameBuffer] of 0x00RRGGBB words and composites the
// current text into it; the framebuffer is then handed to a backend for
// presentation.
//
// # Quick Start
//
//	cache, err := text.Build(gomono.TTF, 17)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, _ := tterm.NewRenderer(cache)
//	fb, ok := r.Render("hello", 800, 600)
//	if ok {
//	    _ = fb.SavePNG("hello.png")
//	}
//
// # Layout
//
// Text is drawn on one line from the left edge. Every glyph is positioned
// MaxHeight-height rows below the top of the frame, where MaxHeight is the
// tallest glyph of the whole cache, so a line's vertical placement does not
// depend on which characters it contains. Characters the font does not
// cover are dropped. Pixels beyond the frame are clipped.
//
// # Architecture
//
// The library is organized into:
//   - Public API: FrameBuffer, Pixel, Compositor, Renderer
//   - text: font parsing, rasterization and the glyph cache
//   - internal/blit: the stride-explicit grayscale copy
//   - backend: GLFW window, tcell terminal preview, PNG snapshot
package tterm

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
