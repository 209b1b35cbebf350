package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/tterm/tterm"
)

// uploadFormat is the layout NewTextureFromRGBA expects.
const uploadFormat = gputypes.TextureFormatRGBA8Unorm

var (
	errNoTextureCreator  = errors.New("gpu: draw context cannot create textures")
	errNotTexture        = errors.New("gpu: value is not a gpucontext.Texture")
	errUnsupportedFormat = errors.New("gpu: unsupported texture format")
)

// surface creates and draws the textures of one window.
type surface interface {
	NewTexture(width, height int, data []byte) (any, error)
	DrawTexture(tex any) error
}

// drawer adapts a gpucontext.TextureDrawer to surface.
type drawer struct {
	dc gpucontext.TextureDrawer
}

func (d drawer) NewTexture(width, height int, data []byte) (any, error) {
	creator := d.dc.TextureCreator()
	if creator == nil {
		return nil, errNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(width, height, data)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

func (d drawer) DrawTexture(tex any) error {
	t, ok := tex.(gpucontext.Texture)
	if !ok {
		return errNotTexture
	}
	return d.dc.DrawTexture(t, 0, 0)
}

// presenter keeps one texture the size of the last frame and refreshes it
// in place while the size holds.
type presenter struct {
	tex           any
	width, height int
	data          []byte
}

// present uploads fb and draws it at the origin of s.
func (p *presenter) present(s surface, fb *tterm.FrameBuffer) error {
	var err error
	p.data, err = pack(p.data, fb, uploadFormat)
	if err != nil {
		return err
	}

	w, h := fb.Width(), fb.Height()
	updater, canUpdate := p.tex.(gpucontext.TextureUpdater)
	if p.tex != nil && canUpdate && w == p.width && h == p.height {
		if err := updater.UpdateData(p.data); err != nil {
			return fmt.Errorf("gpu: update texture: %w", err)
		}
		return s.DrawTexture(p.tex)
	}

	tex, err := s.NewTexture(w, h, p.data)
	if err != nil {
		return fmt.Errorf("gpu: create texture: %w", err)
	}
	// The old texture goes only after its replacement is uploaded, when the
	// GPU no longer samples it.
	p.release()
	p.tex, p.width, p.height = tex, w, h
	return s.DrawTexture(p.tex)
}

// release destroys the current texture, if any.
func (p *presenter) release() {
	if d, ok := p.tex.(interface{ Destroy() }); ok {
		d.Destroy()
	}
	p.tex = nil
}

// pack writes fb into dst as opaque 8-bit pixels in the byte order of
// format, reusing dst's storage when it is large enough.
func pack(dst []byte, fb *tterm.FrameBuffer, format gputypes.TextureFormat) ([]byte, error) {
	var ri, bi int
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		ri, bi = 0, 2
	case gputypes.TextureFormatBGRA8Unorm:
		ri, bi = 2, 0
	default:
		return dst, fmt.Errorf("%w: %v", errUnsupportedFormat, format)
	}

	pix := fb.Pix()
	n := 4 * len(pix)
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, v := range pix {
		p := tterm.Pixel(v)
		o := dst[4*i : 4*i+4 : 4*i+4]
		o[ri] = p.R()
		o[1] = p.G()
		o[bi] = p.B()
		o[3] = 0xff
	}
	return dst, nil
}
