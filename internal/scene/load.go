package scene

import (
	"image"
	"log"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/asset"
	"github.com/paperboard/glscene/internal/config"
	"github.com/paperboard/glscene/internal/geometry"
	"github.com/paperboard/glscene/internal/gfx"
	"github.com/paperboard/glscene/internal/object"
	"github.com/paperboard/glscene/internal/shader"
	"github.com/paperboard/glscene/internal/world"
)

// Load builds the renderer for cfg. The window framebuffer size is the
// initial size of the offscreen framebuffer.
func Load(cfg *config.Config, width, height int) (*Renderer, error) {
	r := &Renderer{}
	ok := false
	defer func() {
		// free what was built when a later step fails
		if !ok {
			r.Delete()
		}
	}()

	objectProgram, err := gfx.NewProgram(shader.Object.Vertex, shader.Object.Fragment)
	if err != nil {
		return nil, errors.Wrap(err, "object program")
	}
	r.programs = append(r.programs, objectProgram)

	lightProgram, err := gfx.NewProgram(shader.LightCube.Vertex, shader.LightCube.Fragment)
	if err != nil {
		return nil, errors.Wrap(err, "light cube program")
	}
	r.programs = append(r.programs, lightProgram)

	cubes, err := loadCubes(cfg, objectProgram, lightProgram)
	if err != nil {
		return nil, err
	}
	r.Containers = append(r.Containers, cubes)

	for i, m := range cfg.Models {
		model, err := loadModel(cfg, m, objectProgram)
		if err != nil {
			return nil, errors.Wrapf(err, "model %d", i)
		}
		r.Containers = append(r.Containers, model)
	}

	if cfg.Skybox.Enabled() {
		if r.Skybox, err = loadSkybox(cfg); err != nil {
			return nil, err
		}
	}

	if r.Post, err = NewPostProcessor(int32(width), int32(height)); err != nil {
		return nil, err
	}
	// build the starting effect now so a broken shader fails at startup
	if _, err := r.Post.Program(cfg.Effect); err != nil {
		return nil, err
	}

	ok = true
	return r, nil
}

func loadCubes(cfg *config.Config, objectProgram, lightProgram *gfx.Program) (*CubeContainer, error) {
	mesh := gfx.NewMesh(geometry.CubeMesh())
	if cfg.Cubes.Rows == 0 {
		// light cubes only
		return NewCubeContainer(objectProgram, lightProgram, mesh, nil, nil), nil
	}

	cubes, err := object.GenerateCubes(cfg.Cubes.Rows, cfg.Cubes.Spacing)
	if err != nil {
		mesh.Delete()
		return nil, err
	}
	material, err := loadMaterial(cfg, cfg.Cubes.Diffuse, cfg.Cubes.Specular, cfg.Cubes.Shininess)
	if err != nil {
		mesh.Delete()
		return nil, errors.Wrap(err, "cube material")
	}
	log.Printf("cube grid: %d cubes", len(cubes))
	return NewCubeContainer(objectProgram, lightProgram, mesh, material, cubes), nil
}

func loadModel(cfg *config.Config, m config.Model, program *gfx.Program) (*ModelContainer, error) {
	path, err := cfg.Resolve(m.Path)
	if err != nil {
		return nil, err
	}
	data, err := asset.LoadModel(path)
	if err != nil {
		return nil, err
	}
	material, err := loadMaterial(cfg, m.Diffuse, m.Specular, m.Shininess)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	log.Printf("model %s: %d vertices, %d triangles, %d instances", name, len(data.Vertices), data.TriangleCount(), len(m.Instances))
	return NewModelContainer(name, program, gfx.NewMesh(data), *material, world.Instances(m.Instances)), nil
}

// loadMaterial loads a diffuse map and an optional specular map (black,
// so no highlights, when empty).
func loadMaterial(cfg *config.Config, diffusePath, specularPath string, shininess float32) (*Material, error) {
	diffuseImg, err := loadTextureImage(cfg, diffusePath)
	if err != nil {
		return nil, err
	}
	specularImg := asset.Black()
	if specularPath != "" {
		if specularImg, err = loadTextureImage(cfg, specularPath); err != nil {
			return nil, err
		}
	}

	diffuse, err := gfx.NewTexture(diffuseImg, true)
	if err != nil {
		return nil, errors.Wrapf(err, "diffuse texture %q", diffusePath)
	}
	specular, err := gfx.NewTexture(specularImg, false)
	if err != nil {
		diffuse.Delete()
		return nil, errors.Wrapf(err, "specular texture %q", specularPath)
	}
	return &Material{Diffuse: diffuse, Specular: specular, Shininess: shininess}, nil
}

func loadTextureImage(cfg *config.Config, p string) (*image.RGBA, error) {
	path, err := cfg.Resolve(p)
	if err != nil {
		return nil, err
	}
	img, err := asset.LoadImage(path)
	if err != nil {
		return nil, err
	}
	// image rows are top first, GL textures bottom first
	return asset.FlipV(img), nil
}

func loadSkybox(cfg *config.Config) (*Skybox, error) {
	var faces [6]*image.RGBA
	for i, p := range cfg.Skybox.Faces() {
		path, err := cfg.Resolve(p)
		if err != nil {
			return nil, err
		}
		if faces[i], err = asset.LoadImage(path); err != nil {
			return nil, errors.Wrap(err, "skybox")
		}
	}
	cubemap, err := gfx.NewCubemap(faces)
	if err != nil {
		return nil, errors.Wrap(err, "skybox")
	}

	program, err := gfx.NewProgram(shader.Skybox.Vertex, shader.Skybox.Fragment)
	if err != nil {
		cubemap.Delete()
		return nil, errors.Wrap(err, "skybox program")
	}
	mesh := gfx.NewPositionMesh(geometry.SkyboxVertices(), geometry.SkyboxIndices())
	return NewSkybox(program, mesh, cubemap), nil
}
