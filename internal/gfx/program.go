package gfx

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/uniform"
)

// Program is a linked shader program with a uniform location cache.
type Program struct {
	ID        uint32
	locations map[string]int32
}

// NewProgram compiles and links a program from null-terminated sources.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (*Program, error) {
	id, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, locations: make(map[string]int32)}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

// Location returns the uniform location of name, -1 if the program does not
// use it (GL ignores writes to -1).
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// Apply uploads every value of the set. The program must be in use.
func (p *Program) Apply(u *uniform.Set) {
	u.Each(func(name string, v uniform.Value) {
		loc := p.Location(name)
		switch v.Kind {
		case uniform.Float:
			gl.Uniform1f(loc, v.Float)
		case uniform.Int, uniform.Sampler:
			gl.Uniform1i(loc, v.Int)
		case uniform.Vec3:
			gl.Uniform3fv(loc, 1, &v.Vec3[0])
		case uniform.Mat4:
			gl.UniformMatrix4fv(loc, 1, false, &v.Mat4[0])
		}
	})
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.Location(name), 1, &v[0])
}

func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.Location(name), i)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// shaders are no longer needed once linked (or failed to link)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		return 0, errors.Errorf("failed to link program: %v", log)

	}

	return program, nil

}

func compileShader(source string, shaderType uint32) (uint32, error) {

	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, errors.Errorf("failed to compile %v: %v", source, log)

	}

	return shader, nil

}
