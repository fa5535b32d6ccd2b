// Package config loads the scene description: window, camera, lights,
// models, skybox and post effect. Files are YAML or TOML, picked by
// extension; every field missing from the file keeps its default.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/paperboard/glscene/internal/asset"
	"github.com/paperboard/glscene/internal/light"
	"github.com/paperboard/glscene/internal/postfx"
)

// Vec3 is a vector as written in config files: [x, y, z].
type Vec3 [3]float32

type Config struct {
	Window Window        `yaml:"window" toml:"window"`
	Camera Camera        `yaml:"camera" toml:"camera"`
	Cubes  Cubes         `yaml:"cubes" toml:"cubes"`
	Lights Lights        `yaml:"lights" toml:"lights"`
	Models []Model       `yaml:"models" toml:"models"`
	Skybox Skybox        `yaml:"skybox" toml:"skybox"`
	Effect postfx.Effect `yaml:"effect" toml:"effect"`

	// directory relative asset paths are resolved against
	dir string
}

type Window struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	MaxFPS int    `yaml:"max_fps" toml:"max_fps"`
	VSync  bool   `yaml:"vsync" toml:"vsync"`
}

type Camera struct {
	Position    Vec3    `yaml:"position" toml:"position"`
	Speed       float32 `yaml:"speed" toml:"speed"`
	Sensitivity float32 `yaml:"sensitivity" toml:"sensitivity"`
}

// Cubes is the textured cube grid.
type Cubes struct {
	Rows      int     `yaml:"rows" toml:"rows"`
	Spacing   float32 `yaml:"spacing" toml:"spacing"`
	Diffuse   string  `yaml:"diffuse" toml:"diffuse"`
	Specular  string  `yaml:"specular" toml:"specular"`
	Shininess float32 `yaml:"shininess" toml:"shininess"`
}

type Lights struct {
	// initial directional light intensity
	Intensity  float32      `yaml:"intensity" toml:"intensity"`
	Flashlight Flashlight   `yaml:"flashlight" toml:"flashlight"`
	Points     []PointLight `yaml:"points" toml:"points"`
}

type Flashlight struct {
	On       bool    `yaml:"on" toml:"on"`
	Ambient  Vec3    `yaml:"ambient" toml:"ambient"`
	Diffuse  Vec3    `yaml:"diffuse" toml:"diffuse"`
	Specular Vec3    `yaml:"specular" toml:"specular"`
	CutOff   float32 `yaml:"cut_off" toml:"cut_off"` // degrees
	Outer    float32 `yaml:"outer_cut_off" toml:"outer_cut_off"`
}

type PointLight struct {
	Position  Vec3    `yaml:"position" toml:"position"`
	Ambient   Vec3    `yaml:"ambient" toml:"ambient"`
	Diffuse   Vec3    `yaml:"diffuse" toml:"diffuse"`
	Specular  Vec3    `yaml:"specular" toml:"specular"`
	Constant  float32 `yaml:"constant" toml:"constant"`
	Linear    float32 `yaml:"linear" toml:"linear"`
	Quadratic float32 `yaml:"quadratic" toml:"quadratic"`
}

type Model struct {
	Path      string     `yaml:"path" toml:"path"`
	Diffuse   string     `yaml:"diffuse" toml:"diffuse"`
	Specular  string     `yaml:"specular" toml:"specular"` // empty means black
	Shininess float32    `yaml:"shininess" toml:"shininess"`
	Instances []Instance `yaml:"instances" toml:"instances"`
}

type Instance struct {
	Position Vec3    `yaml:"position" toml:"position"`
	Rotation Vec3    `yaml:"rotation" toml:"rotation"` // degrees, model = Rx * Ry * Rz
	Scale    float32 `yaml:"scale" toml:"scale"`
}

// Skybox faces in GL cubemap order.
type Skybox struct {
	Right  string `yaml:"right" toml:"right"`
	Left   string `yaml:"left" toml:"left"`
	Top    string `yaml:"top" toml:"top"`
	Bottom string `yaml:"bottom" toml:"bottom"`
	Front  string `yaml:"front" toml:"front"`
	Back   string `yaml:"back" toml:"back"`
}

// Faces lists the face paths as +X, -X, +Y, -Y, +Z, -Z.
func (s Skybox) Faces() [6]string {
	return [6]string{s.Right, s.Left, s.Top, s.Bottom, s.Front, s.Back}
}

// Enabled reports whether any face is set.
func (s Skybox) Enabled() bool {
	for _, f := range s.Faces() {
		if f != "" {
			return true
		}
	}
	return false
}

func defaultPointLight(position Vec3) PointLight {
	return PointLight{
		Position:  position,
		Ambient:   Vec3{0.002, 0.002, 0.002},
		Diffuse:   Vec3{1, 1, 1},
		Specular:  Vec3{1, 1, 1},
		Constant:  1,
		Linear:    0.045,
		Quadratic: 0.0075,
	}
}

// Default is the built-in scene.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "glscene",
			Width:  768,
			Height: 768,
			MaxFPS: 60,
		},
		Camera: Camera{
			Position:    Vec3{0, 0, 3},
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Cubes: Cubes{
			Rows:      3,
			Spacing:   4,
			Diffuse:   "assets/container2.png",
			Specular:  "assets/container2_specular.png",
			Shininess: 32,
		},
		Lights: Lights{
			Intensity: 0.01,
			Flashlight: Flashlight{
				On:       true,
				Ambient:  Vec3{0.02, 0.02, 0.02},
				Diffuse:  Vec3{1, 1, 1},
				Specular: Vec3{1, 1, 1},
				CutOff:   12.5,
				Outer:    17.5,
			},
			Points: []PointLight{
				defaultPointLight(Vec3{1, 2, 3}),
				defaultPointLight(Vec3{4, 2, 7}),
				defaultPointLight(Vec3{-2, 2, 0}),
				defaultPointLight(Vec3{-5.1, 2, -3.1}),
			},
		},
		Models: []Model{{
			Path:      "assets/objects/kakyoin/kakyoin.obj",
			Diffuse:   "assets/objects/kakyoin/Kakyoin.png",
			Shininess: 32,
			Instances: []Instance{{Position: Vec3{0, -1, -8}, Scale: 1}},
		}},
		Skybox: Skybox{
			Right:  "assets/skybox/right.jpg",
			Left:   "assets/skybox/left.jpg",
			Top:    "assets/skybox/top.jpg",
			Bottom: "assets/skybox/bottom.jpg",
			Front:  "assets/skybox/front.jpg",
			Back:   "assets/skybox/back.jpg",
		},
		Effect: postfx.None,
	}
}

// Load reads a scene file over the defaults. Lists in the file (point
// lights, models) replace the default lists.
func Load(path string) (*Config, error) {
	path, err := asset.ResolvePath("", path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", path)
	}

	cfg := Default()
	if err := Decode(cfg, data, filepath.Ext(path)); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %q", path)
	}
	cfg.dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %q", path)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg, choosing the format from ext. Lists
// present in data replace the ones in cfg; zero scales and shininess
// become 1 and 32.
func Decode(cfg *Config, data []byte, ext string) error {
	var raw map[string]interface{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return err
		}
		clearLists(cfg, raw)
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return err
		}
		clearLists(cfg, raw)
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return err
		}
	default:
		return errors.Errorf("unsupported config format %q", ext)
	}
	cfg.fillZeros()
	return nil
}

func clearLists(cfg *Config, raw map[string]interface{}) {
	if _, ok := raw["models"]; ok {
		cfg.Models = nil
	}
	if lights, ok := raw["lights"].(map[string]interface{}); ok {
		if _, ok := lights["points"]; ok {
			cfg.Lights.Points = nil
		}
	}
}

func (c *Config) fillZeros() {
	if c.Cubes.Shininess == 0 {
		c.Cubes.Shininess = 32
	}
	for i := range c.Models {
		m := &c.Models[i]
		if m.Shininess == 0 {
			m.Shininess = 32
		}
		for j := range m.Instances {
			if m.Instances[j].Scale == 0 {
				m.Instances[j].Scale = 1
			}
		}
	}
}

// Resolve turns an asset path from the config into a usable file path.
// Relative paths are taken from the directory of the loaded file.
func (c *Config) Resolve(p string) (string, error) {
	return asset.ResolvePath(c.dir, p)
}

// Validate checks the values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.MaxFPS < 0 {
		return errors.Errorf("max_fps must not be negative, got %d", c.Window.MaxFPS)
	}
	if c.Cubes.Rows < 0 || (c.Cubes.Rows > 0 && c.Cubes.Rows%2 == 0) {
		return errors.Errorf("cube rows must be odd, got %d", c.Cubes.Rows)
	}
	if c.Cubes.Rows > 0 && c.Cubes.Diffuse == "" {
		return errors.New("cubes need a diffuse texture")
	}
	if c.Lights.Intensity < 0 {
		return errors.Errorf("intensity must not be negative, got %g", c.Lights.Intensity)
	}
	if n := len(c.Lights.Points); n > light.MaxPointLights {
		return errors.Errorf("too many point lights: %d (max %d)", n, light.MaxPointLights)
	}
	for i, p := range c.Lights.Points {
		if p.Constant <= 0 && p.Linear <= 0 && p.Quadratic <= 0 {
			return errors.Errorf("point light %d has no attenuation", i)
		}
	}
	fl := c.Lights.Flashlight
	if fl.CutOff <= 0 || fl.Outer < fl.CutOff || fl.Outer >= 90 {
		return errors.Errorf("flashlight cut-offs must satisfy 0 < cut_off <= outer_cut_off < 90, got %g/%g", fl.CutOff, fl.Outer)
	}
	for i, m := range c.Models {
		if m.Path == "" || m.Diffuse == "" {
			return errors.Errorf("model %d needs a path and a diffuse texture", i)
		}
	}
	if c.Skybox.Enabled() {
		for _, f := range c.Skybox.Faces() {
			if f == "" {
				return errors.New("skybox needs all 6 faces")
			}
		}
	}
	if !c.Effect.Valid() {
		return errors.Errorf("invalid effect %d", int(c.Effect))
	}
	return nil
}
