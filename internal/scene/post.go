package scene

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/geometry"
	"github.com/paperboard/glscene/internal/gfx"
	"github.com/paperboard/glscene/internal/postfx"
	"github.com/paperboard/glscene/internal/shader"
)

// PostProcessor renders the scene into an offscreen framebuffer and draws it
// to the window through the program of the selected effect.
type PostProcessor struct {
	framebuffer *gfx.Framebuffer
	quad        *gfx.Mesh

	// effect programs are built on first use
	programs map[postfx.Effect]*gfx.Program
}

func NewPostProcessor(width, height int32) (*PostProcessor, error) {
	fb, err := gfx.NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	return &PostProcessor{
		framebuffer: fb,
		quad:        gfx.NewScreenMesh(geometry.ScreenQuad()),
		programs:    make(map[postfx.Effect]*gfx.Program),
	}, nil
}

// Program returns the screen program of effect, compiling it if needed.
func (p *PostProcessor) Program(effect postfx.Effect) (*gfx.Program, error) {
	if prog, ok := p.programs[effect]; ok {
		return prog, nil
	}
	if !effect.Valid() {
		return nil, errors.Errorf("invalid effect %d", int(effect))
	}
	prog, err := gfx.NewProgram(shader.ScreenVertex, postfx.FragmentSource(effect))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s effect", effect)
	}
	p.programs[effect] = prog
	return prog, nil
}

// Begin binds the offscreen framebuffer, sized to the window, and clears it.
func (p *PostProcessor) Begin(width, height int32) error {
	if err := p.framebuffer.Resize(width, height); err != nil {
		return err
	}
	p.framebuffer.Bind()

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	// ensure depth test is enabled during proxy screen usage
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	return nil
}

// End draws the offscreen image to the window through effect.
func (p *PostProcessor) End(effect postfx.Effect, width, height int32) error {
	prog, err := p.Program(effect)
	if err != nil {
		return err
	}

	// unbind proxy framebuffer and set back to default framebuffer
	gfx.BindScreen(width, height)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT) // no need to clear depth, we will disable depth

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	// the offscreen image is linear, the window expects sRGB
	gl.Enable(gl.FRAMEBUFFER_SRGB)

	prog.Use()
	prog.SetInt(postfx.ScreenTextureUniform, 0)
	p.framebuffer.BindTexture(0)
	p.quad.Draw()
	gl.UseProgram(0)

	gl.Disable(gl.FRAMEBUFFER_SRGB)
	return nil
}

func (p *PostProcessor) Delete() {
	for effect, prog := range p.programs {
		prog.Delete()
		delete(p.programs, effect)
	}
	p.quad.Delete()
	p.framebuffer.Delete()
}
