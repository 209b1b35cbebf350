package tterm

import (
	"github.com/tterm/tterm/text"
)

// Renderer owns the framebuffer of one presentation surface and redraws
// it from scratch on every call to Render.
//
// Renderer is not safe for concurrent use; the font cache it draws from is.
type Renderer struct {
	comp       *Compositor
	fb         *FrameBuffer
	background Pixel
	frames     uint64
}

// NewRenderer creates a renderer drawing glyphs from cache.
func NewRenderer(cache *text.FontCache, opts ...RendererOption) (*Renderer, error) {
	if cache == nil {
		return nil, ErrNilCache
	}

	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		comp:       NewCompositor(cache),
		fb:         NewFrameBuffer(0, 0),
		background: o.background,
	}, nil
}

// Render redraws s into a width×height frame: the framebuffer is resized
// if needed, cleared to the background, and the text composited on top.
//
// A zero-area surface is not drawn. Render then returns (nil, false) and
// the caller should present nothing until the next non-empty resize.
func (r *Renderer) Render(s string, width, height int) (*FrameBuffer, bool) {
	if width <= 0 || height <= 0 {
		Logger().Debug("tterm: redraw deferred for zero-area surface", "width", width, "height", height)
		return nil, false
	}

	if r.fb.Resize(width, height) {
		Logger().Debug("tterm: framebuffer resized", "width", width, "height", height)
	}
	r.fb.Clear(r.background)
	r.comp.DrawString(r.fb, s)
	r.frames++

	return r.fb, true
}

// FrameBuffer returns the framebuffer of the last Render.
func (r *Renderer) FrameBuffer() *FrameBuffer {
	return r.fb
}

// Background returns the clear colour.
func (r *Renderer) Background() Pixel {
	return r.background
}

// Compositor returns the compositor used by Render.
func (r *Renderer) Compositor() *Compositor {
	return r.comp
}

// Frames returns the number of frames drawn so far.
func (r *Renderer) Frames() uint64 {
	return r.frames
}
