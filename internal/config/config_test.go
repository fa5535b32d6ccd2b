package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/glscene/internal/postfx"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 768, cfg.Window.Width)
	assert.Equal(t, 60, cfg.Window.MaxFPS)
	assert.Len(t, cfg.Lights.Points, 4)
	assert.Equal(t, Vec3{-5.1, 2, -3.1}, cfg.Lights.Points[3].Position)
	assert.Equal(t, float32(0.0075), cfg.Lights.Points[0].Quadratic)
	assert.True(t, cfg.Skybox.Enabled())
	assert.Equal(t, "assets/skybox/right.jpg", cfg.Skybox.Faces()[0])
	assert.Empty(t, cfg.dir)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "test scene", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	// untouched sections keep their defaults
	assert.Equal(t, 60, cfg.Window.MaxFPS)
	assert.Equal(t, float32(2.5), cfg.Camera.Speed)
	assert.Equal(t, Vec3{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, postfx.GrayScale, cfg.Effect)

	// lists replace the defaults
	require.Len(t, cfg.Lights.Points, 1)
	assert.Equal(t, Vec3{1, 0, 0}, cfg.Lights.Points[0].Diffuse)
	require.Len(t, cfg.Models, 1)
	assert.Equal(t, float32(32), cfg.Models[0].Shininess)
	require.Len(t, cfg.Models[0].Instances, 1)
	assert.Equal(t, float32(1), cfg.Models[0].Instances[0].Scale)
	assert.Equal(t, Vec3{0, 90, 0}, cfg.Models[0].Instances[0].Rotation)

	p, err := cfg.Resolve(cfg.Models[0].Path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "models", "box.gltf"), p)

	home, err := homedir.Dir()
	require.NoError(t, err)
	p, err = cfg.Resolve(cfg.Models[0].Diffuse)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "textures", "box.png"), p)
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)

	assert.Equal(t, postfx.DeepFried, cfg.Effect)
	assert.Equal(t, 30, cfg.Window.MaxFPS)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, 5, cfg.Cubes.Rows)
	assert.Equal(t, float32(2.5), cfg.Cubes.Spacing)
	assert.False(t, cfg.Lights.Flashlight.On)
	assert.Equal(t, float32(10), cfg.Lights.Flashlight.CutOff)
	// flashlight colours not in the file keep their defaults
	assert.Equal(t, Vec3{1, 1, 1}, cfg.Lights.Flashlight.Diffuse)
	assert.False(t, cfg.Skybox.Enabled())
	assert.Len(t, cfg.Lights.Points, 4)
	assert.Len(t, cfg.Models, 1)
}

func TestDecodeRejects(t *testing.T) {
	tests := map[string]struct {
		data string
		ext  string
	}{
		"unknown yaml field": {"windw:\n  width: 1\n", ".yaml"},
		"unknown toml field": {"[windw]\nwidth = 1\n", ".toml"},
		"bad effect":         {"effect: sepia\n", ".yml"},
		"bad vector":         {"camera:\n  position: [1, 2]\n", ".yaml"},
		"bad toml":           {"[window\n", ".toml"},
		"unknown format":     {"{}", ".json"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Decode(Default(), []byte(tt.data), tt.ext))
		})
	}
}

func TestDecodeEmptyKeepsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode(cfg, nil, ".yaml"))
	assert.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"window size":      func(c *Config) { c.Window.Width = 0 },
		"negative fps":     func(c *Config) { c.Window.MaxFPS = -1 },
		"even rows":        func(c *Config) { c.Cubes.Rows = 4 },
		"cube texture":     func(c *Config) { c.Cubes.Diffuse = "" },
		"intensity":        func(c *Config) { c.Lights.Intensity = -0.1 },
		"too many lights":  func(c *Config) { c.Lights.Points = append(c.Lights.Points, c.Lights.Points[0]) },
		"no attenuation":   func(c *Config) { c.Lights.Points[1] = PointLight{} },
		"cut-off order":    func(c *Config) { c.Lights.Flashlight.Outer = 5 },
		"cut-off too wide": func(c *Config) { c.Lights.Flashlight.Outer = 95 },
		"model path":       func(c *Config) { c.Models[0].Path = "" },
		"partial skybox":   func(c *Config) { c.Skybox.Top = "" },
		"effect":           func(c *Config) { c.Effect = postfx.Effect(42) },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Cubes.Rows = 0
	cfg.Cubes.Diffuse = ""
	assert.NoError(t, cfg.Validate(), "no cube grid")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	opts, err := ParseFlags("glscene", []string{"--config", "testdata/scene.yaml", "-e", "blur", "--watch", "-v"}, &out)
	require.NoError(t, err)
	assert.Equal(t, &Options{ConfigPath: "testdata/scene.yaml", Effect: "blur", Watch: true, Verbose: true}, opts)

	cfg, err := opts.Load()
	require.NoError(t, err)
	// the flag wins over the file
	assert.Equal(t, postfx.Blur, cfg.Effect)

	opts, err = ParseFlags("glscene", nil, &out)
	require.NoError(t, err)
	cfg, err = opts.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--effect", "sepia"},
		{"--watch"},
		{"--bogus"},
		{"extra"},
	} {
		var out bytes.Buffer
		_, err := ParseFlags("glscene", args, &out)
		assert.Error(t, err, "%v", args)
	}
}

func TestWatchReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effect: none\n"), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()
	assert.False(t, w.Changed())

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), nil, 0o644))
	require.NoError(t, os.WriteFile(path, []byte("effect: blur\n"), 0o644))

	require.Eventually(t, w.Changed, 5*time.Second, 10*time.Millisecond, "no change reported")

	cfg, err := Load(w.Path())
	require.NoError(t, err)
	assert.Equal(t, postfx.Blur, cfg.Effect)
}
