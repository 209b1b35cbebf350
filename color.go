package tterm

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tterm/tterm/internal/blit"
)

// Pixel is one framebuffer word in 0x00RRGGBB format.
// The top byte is always zero; Pixel implements color.Color as opaque.
type Pixel uint32

// Background is the clear colour of every redraw unless overridden.
const Background Pixel = 0x00181818

// RGB packs 8-bit channels into a Pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Gray returns the pixel with all three channels set to v.
func Gray(v uint8) Pixel {
	return Pixel(blit.Pack(v))
}

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R())
	g = uint32(p.G())
	b = uint32(p.B())
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// String returns the pixel as "#rrggbb".
func (p Pixel) String() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R(), p.G(), p.B())
}

// FromColor converts any colour to a Pixel, dropping alpha.
// Fully transparent colours map to black.
func FromColor(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b)
}

// ParseColor parses a "#rrggbb" or "#rgb" hex colour. The leading '#' is
// optional.
func ParseColor(s string) (Pixel, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// PixelModel converts colours to Pixel.
var PixelModel color.Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})
