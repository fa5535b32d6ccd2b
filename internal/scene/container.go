// Package scene draws the world: containers of lit objects, the skybox and
// the post-processing screen pass.
package scene

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/gfx"
	"github.com/paperboard/glscene/internal/light"
	"github.com/paperboard/glscene/internal/object"
	"github.com/paperboard/glscene/internal/shader"
	"github.com/paperboard/glscene/internal/uniform"
	"github.com/paperboard/glscene/internal/world"
)

// Container is a group of objects drawn with shared GPU resources.
type Container interface {
	Draw(data world.DrawData) error
	Delete()
}

// Material is a textured material on the GPU.
type Material struct {
	Diffuse   *gfx.Texture
	Specular  *gfx.Texture
	Shininess float32
}

func (m Material) bind() {
	m.Diffuse.Bind(light.DiffuseUnit)
	m.Specular.Bind(light.SpecularUnit)
}

func (m Material) Delete() {
	m.Diffuse.Delete()
	m.Specular.Delete()
}

// litUniforms are the per-frame uniforms of the object program.
func litUniforms(data world.DrawData, shininess float32) (*uniform.Set, error) {
	u := uniform.NewSet()
	u.SetMat4(shader.UniformProjectionView, data.ProjectionView)
	u.SetVec3(shader.UniformViewPos, data.CameraPos)
	light.MarshalTextured(u, shininess)
	if err := data.Environment.Marshal(u); err != nil {
		return nil, errors.Wrap(err, "failed to marshal lights")
	}
	return u, nil
}

// CubeContainer draws the textured cube grid and a small cube at every
// point light.
type CubeContainer struct {
	objectProgram *gfx.Program
	lightProgram  *gfx.Program
	mesh          *gfx.Mesh
	material      *Material // nil without a cube grid

	Cubes []object.Cube
}

func NewCubeContainer(objectProgram, lightProgram *gfx.Program, mesh *gfx.Mesh, material *Material, cubes []object.Cube) *CubeContainer {
	return &CubeContainer{
		objectProgram: objectProgram,
		lightProgram:  lightProgram,
		mesh:          mesh,
		material:      material,
		Cubes:         cubes,
	}
}

func (c *CubeContainer) Draw(data world.DrawData) error {
	if c.material != nil && len(c.Cubes) > 0 {
		u, err := litUniforms(data, c.material.Shininess)
		if err != nil {
			return err
		}
		c.objectProgram.Use()
		c.objectProgram.Apply(u)
		c.material.bind()
		for _, cube := range c.Cubes {
			c.objectProgram.SetMat4(shader.UniformModel, cube.Model)
			c.mesh.Draw()
		}
	}

	c.lightProgram.Use()
	c.lightProgram.SetMat4(shader.UniformProjectionView, data.ProjectionView)
	for _, lc := range data.LightCubes {
		c.lightProgram.SetMat4(shader.UniformModel, lc.Model)
		c.lightProgram.SetVec3(shader.UniformLightColor, lc.Light.Diffuse)
		c.mesh.Draw()
	}
	gl.UseProgram(0)
	return nil
}

func (c *CubeContainer) Delete() {
	c.mesh.Delete()
	if c.material != nil {
		c.material.Delete()
	}
}

// ModelContainer draws the instances of one loaded model.
type ModelContainer struct {
	Name      string
	program   *gfx.Program
	mesh      *gfx.Mesh
	material  Material
	Instances []object.Instance
}

func NewModelContainer(name string, program *gfx.Program, mesh *gfx.Mesh, material Material, instances []object.Instance) *ModelContainer {
	return &ModelContainer{
		Name:      name,
		program:   program,
		mesh:      mesh,
		material:  material,
		Instances: instances,
	}
}

func (c *ModelContainer) Draw(data world.DrawData) error {
	if len(c.Instances) == 0 {
		return nil
	}
	u, err := litUniforms(data, c.material.Shininess)
	if err != nil {
		return errors.Wrapf(err, "model %s", c.Name)
	}
	c.program.Use()
	c.program.Apply(u)
	c.material.bind()
	for _, in := range c.Instances {
		c.program.SetMat4(shader.UniformModel, in.Model)
		c.mesh.Draw()
	}
	gl.UseProgram(0)
	return nil
}

func (c *ModelContainer) Delete() {
	c.mesh.Delete()
	c.material.Delete()
}

// Skybox draws a cubemap behind everything else. It must be drawn after the
// opaque containers.
type Skybox struct {
	program *gfx.Program
	mesh    *gfx.Mesh
	cubemap *gfx.Texture
}

func NewSkybox(program *gfx.Program, mesh *gfx.Mesh, cubemap *gfx.Texture) *Skybox {
	return &Skybox{program: program, mesh: mesh, cubemap: cubemap}
}

func (s *Skybox) Draw(data world.DrawData) error {
	// the skybox sits at depth 1.0, which LESS would reject after clearing
	gl.DepthFunc(gl.LEQUAL)
	// seen from inside
	gl.Disable(gl.CULL_FACE)

	s.program.Use()
	s.program.SetMat4(shader.UniformProjectionView, data.SkyboxProjectionView)
	s.program.SetInt(shader.UniformSkybox, 0)
	s.cubemap.Bind(0)
	s.mesh.Draw()
	gl.UseProgram(0)

	gl.Enable(gl.CULL_FACE)
	gl.DepthFunc(gl.LESS)
	return nil
}

func (s *Skybox) Delete() {
	s.mesh.Delete()
	s.cubemap.Delete()
	s.program.Delete()
}
