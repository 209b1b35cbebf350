package tterm

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// FrameBuffer is a row-major grid of 0x00RRGGBB words, one per pixel,
// with a stride equal to its width. It is the surface text is composited
// into and the buffer a backend presents.
//
// FrameBuffer is not safe for concurrent use.
type FrameBuffer struct {
	width  int
	height int
	pix    []uint32
}

// NewFrameBuffer creates a framebuffer with the given dimensions.
// Negative dimensions are treated as zero.
func NewFrameBuffer(width, height int) *FrameBuffer {
	width, height = max(width, 0), max(height, 0)
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the framebuffer.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the height of the framebuffer.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Pix returns the raw pixel words. The slice is reallocated by Resize.
func (fb *FrameBuffer) Pix() []uint32 {
	return fb.pix
}

// Empty reports whether the framebuffer has zero area.
func (fb *FrameBuffer) Empty() bool {
	return fb.width == 0 || fb.height == 0
}

// Resize changes the dimensions, reporting whether they changed. Contents
// are undefined afterwards; callers clear before drawing. The backing
// array is reused when it is large enough.
func (fb *FrameBuffer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == fb.width && height == fb.height {
		return false
	}
	n := width * height
	if cap(fb.pix) >= n {
		fb.pix = fb.pix[:n]
	} else {
		fb.pix = make([]uint32, n)
	}
	fb.width, fb.height = width, height
	return true
}

// Clear fills the entire framebuffer with a color.
func (fb *FrameBuffer) Clear(c Pixel) {
	v := uint32(c)
	for i := range fb.pix {
		fb.pix[i] = v
	}
}

// Pixel returns the color of a single pixel, or 0 when out of bounds.
func (fb *FrameBuffer) Pixel(x, y int) Pixel {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	return Pixel(fb.pix[y*fb.width+x])
}

// ToImage converts the framebuffer to an opaque image.RGBA.
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for i, v := range fb.pix {
		p := Pixel(v)
		o := i * 4
		img.Pix[o+0] = p.R()
		img.Pix[o+1] = p.G()
		img.Pix[o+2] = p.B()
		img.Pix[o+3] = 0xff
	}
	return img
}

// WritePNG encodes the framebuffer as PNG.
func (fb *FrameBuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

// SavePNG saves the framebuffer to a PNG file.
func (fb *FrameBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := fb.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (fb *FrameBuffer) At(x, y int) color.Color {
	return fb.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements the image.Image interface.
func (fb *FrameBuffer) ColorModel() color.Model {
	return PixelModel
}
