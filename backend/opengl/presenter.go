package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/tterm/tterm"
)

// presenter copies a FrameBuffer to the window's default framebuffer.
//
// The 0x00RRGGBB words are uploaded as BGRA with UNSIGNED_INT_8_8_8_8_REV,
// which reads each word as a packed integer and so is byte-order
// independent. The texture is attached to a read framebuffer and blitted
// with the Y axis flipped, since framebuffer row 0 is the top of the image
// and GL row 0 is the bottom.
type presenter struct {
	tex           uint32
	fbo           uint32
	width, height int32 // texture size
}

func newPresenter() *presenter {
	p := &presenter{}

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &p.fbo)
	return p
}

// present uploads fb and blits it to the default framebuffer at 1:1.
// fb must have non-zero area.
func (p *presenter) present(fb *tterm.FrameBuffer) {
	w, h := int32(fb.Width()), int32(fb.Height())
	pix := gl.Ptr(fb.Pix())

	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	if w != p.width || h != p.height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, w, h, 0, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, pix)
		p.width, p.height = w, h

		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.fbo)
		gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.tex, 0)
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, pix)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.fbo)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, w, h, 0, h, w, 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

func (p *presenter) delete() {
	gl.DeleteFramebuffers(1, &p.fbo)
	gl.DeleteTextures(1, &p.tex)
}
