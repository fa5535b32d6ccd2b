package gfx

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Framebuffer is an offscreen render target: a floating point colour texture
// and a combined depth/stencil renderbuffer.
//
// http://www.songho.ca/opengl/gl_fbo.html
// https://learnopengl.com/Advanced-OpenGL/Framebuffers
type Framebuffer struct {
	fbo          uint32 // off-screen rendering using framebuffer
	texture      uint32 // texture attachment for the color component, sampled by the screen pass
	renderbuffer uint32 // renderbuffer attachment for depth & stencil components

	Width  int32
	Height int32
}

// NewFramebuffer creates a complete framebuffer of the given size.
func NewFramebuffer(width, height int32) (*Framebuffer, error) {
	fb := &Framebuffer{}
	gl.GenFramebuffers(1, &fb.fbo)
	gl.GenTextures(1, &fb.texture)
	gl.GenRenderbuffers(1, &fb.renderbuffer)

	if err := fb.Resize(width, height); err != nil {
		fb.Delete()
		return nil, err
	}
	return fb, nil
}

// Resize reallocates the attachments when the size changed.
func (fb *Framebuffer) Resize(width, height int32) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	if width == fb.Width && height == fb.Height {
		return nil
	}
	fb.Width, fb.Height = width, height

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	fb.attachTexture()
	fb.attachRenderbuffer()

	// check if FBO is ready and valid
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return errors.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return nil
}

func (fb *Framebuffer) attachTexture() {

	gl.BindTexture(gl.TEXTURE_2D, fb.texture)

	// initalize texture (memory space and min/mag filters)
	// half floats keep lighting above 1.0 until the screen pass
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, fb.Width, fb.Height, 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// kernel effects sample past the edges
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// unbind texture
	gl.BindTexture(gl.TEXTURE_2D, 0)

	// attach texture to framebuffer
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.texture, 0)

}

func (fb *Framebuffer) attachRenderbuffer() {

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.renderbuffer)

	// initalize renderbuffer memory space
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, fb.Width, fb.Height)

	// unbind renderbuffer
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	// attach renderbuffer to framebuffer
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.renderbuffer)

}

// Bind makes the framebuffer the render target and sets the viewport to it.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.Width, fb.Height)
}

// BindScreen goes back to the default framebuffer with the given viewport.
func BindScreen(width, height int32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
}

// BindTexture binds the colour attachment for sampling.
func (fb *Framebuffer) BindTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, fb.texture)
}

func (fb *Framebuffer) Delete() {
	gl.DeleteRenderbuffers(1, &fb.renderbuffer)
	gl.DeleteTextures(1, &fb.texture)
	gl.DeleteFramebuffers(1, &fb.fbo)
}
