package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/glscene/internal/uniform"
)

func TestDirectionalFromIntensity(t *testing.T) {
	d := Directional(0.3)

	assert.Equal(t, SunDirection, d.Direction)
	assert.InDelta(t, 0.1, d.Ambient.X(), 1e-6)
	assert.InDelta(t, 0.3, d.Diffuse.Y(), 1e-6)
	assert.InDelta(t, 0.52, d.Specular.Z(), 1e-6)
}

func TestCutOffCos(t *testing.T) {
	assert.InDelta(t, 0.97629600712, CutOffCos(12.5), 1e-6)
	assert.InDelta(t, 0.953716950748, CutOffCos(17.5), 1e-6)
}

func values(u *uniform.Set) map[string]uniform.Value {
	out := make(map[string]uniform.Value)
	u.Each(func(name string, v uniform.Value) {
		out[name] = v
	})
	return out
}

func TestEnvironmentMarshal(t *testing.T) {
	env := Environment{
		Directional: Directional(0.01),
		Spot: SpotLight{
			Position:  mgl32.Vec3{0, 0, 3},
			Direction: mgl32.Vec3{0, 0, -1},
			CutOff:    CutOffCos(12.5),
		},
		Points: []PointLight{
			{Position: mgl32.Vec3{1, 2, 3}, Constant: 1, Linear: 0.045},
			{Position: mgl32.Vec3{4, 2, 7}, Constant: 1},
		},
	}

	u := uniform.NewSet()
	require.NoError(t, env.Marshal(u))
	got := values(u)

	v, ok := got["pointLights[0].position"]
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, v.Vec3)

	v, ok = got["pointLights[0].linear"]
	require.True(t, ok)
	assert.InDelta(t, 0.045, v.Float, 1e-7)

	// unused slots are padded with dark lights
	for _, name := range []string{"pointLights[2].diffuse", "pointLights[3].specular"} {
		v, ok = got[name]
		require.True(t, ok, name)
		assert.Equal(t, mgl32.Vec3{}, v.Vec3)
	}
	v = got["pointLights[3].constant"]
	assert.Equal(t, float32(1), v.Float)

	v, ok = got["spotLight.direction"]
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, v.Vec3)

	_, ok = got["dirLight.ambient"]
	assert.True(t, ok)

	// 4 directional + 7 spot + 4*7 point
	assert.Len(t, got, 4+7+4*7)
}

func TestEnvironmentTooManyPointLights(t *testing.T) {
	env := Environment{Points: make([]PointLight, MaxPointLights+1)}
	assert.Error(t, env.Marshal(uniform.NewSet()))
}

func TestMarshalTextured(t *testing.T) {
	u := uniform.NewSet()
	MarshalTextured(u, 32)
	got := values(u)

	v := got["material.diffuse"]
	assert.Equal(t, uniform.Sampler, v.Kind)
	assert.Equal(t, int32(DiffuseUnit), v.Int)
	v = got["material.specular"]
	assert.Equal(t, int32(SpecularUnit), v.Int)
	v = got["material.shininess"]
	assert.Equal(t, float32(32), v.Float)
}

func TestFlashlightToggle(t *testing.T) {
	f := NewFlashlight(SpotLight{
		Ambient:  mgl32.Vec3{0.02, 0.02, 0.02},
		Diffuse:  mgl32.Vec3{1, 1, 1},
		Specular: mgl32.Vec3{1, 1, 1},
	})
	require.True(t, f.On)

	f.Toggle()
	assert.False(t, f.On)
	assert.Equal(t, mgl32.Vec3{}, f.Spot.Ambient)
	assert.Equal(t, mgl32.Vec3{}, f.Spot.Diffuse)
	assert.Equal(t, mgl32.Vec3{}, f.Spot.Specular)

	f.Toggle()
	assert.True(t, f.On)
	assert.Equal(t, mgl32.Vec3{0.02, 0.02, 0.02}, f.Spot.Ambient)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, f.Spot.Diffuse)

	f.Follow(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, -1})
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, f.Spot.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, f.Spot.Direction)
}

func TestIntensityNeverNegative(t *testing.T) {
	i := Intensity(0.015)
	i.Lower()
	assert.InDelta(t, 0.005, float32(i), 1e-6)
	i.Lower()
	assert.Equal(t, Intensity(0), i)
	i.Lower()
	assert.Equal(t, Intensity(0), i)

	i.Raise()
	i.Raise()
	assert.InDelta(t, 0.02, float32(i), 1e-6)
}
