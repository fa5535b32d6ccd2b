package scene

import (
	"github.com/paperboard/glscene/internal/gfx"
	"github.com/paperboard/glscene/internal/postfx"
	"github.com/paperboard/glscene/internal/world"
)

// Renderer draws a frame: containers in order, then the skybox, into the
// offscreen framebuffer, then the effect pass to the window.
type Renderer struct {
	Containers []Container
	Skybox     *Skybox // optional
	Post       *PostProcessor

	programs []*gfx.Program // shared by the containers
}

// Frame renders data for a window framebuffer of width x height pixels.
// A zero size (minimised window) draws nothing.
func (r *Renderer) Frame(data world.DrawData, effect postfx.Effect, width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	w, h := int32(width), int32(height)

	if err := r.Post.Begin(w, h); err != nil {
		return err
	}
	for _, c := range r.Containers {
		if err := c.Draw(data); err != nil {
			return err
		}
	}
	if r.Skybox != nil {
		if err := r.Skybox.Draw(data); err != nil {
			return err
		}
	}
	if err := r.Post.End(effect, w, h); err != nil {
		return err
	}

	// check for accumulated OpenGL errors
	gfx.CheckGLError()
	return nil
}

// Delete frees every GPU resource of the renderer.
func (r *Renderer) Delete() {
	for _, c := range r.Containers {
		c.Delete()
	}
	if r.Skybox != nil {
		r.Skybox.Delete()
	}
	if r.Post != nil {
		r.Post.Delete()
	}
	for _, p := range r.programs {
		p.Delete()
	}
}
