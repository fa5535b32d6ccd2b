package postfx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleWraps(t *testing.T) {
	assert.Equal(t, Inversed, None.Next())
	assert.Equal(t, None, Edged.Next())
	assert.Equal(t, Edged, None.Prev())
	assert.Equal(t, Blur, Edged.Prev())

	e := GrayScale
	for range Effects() {
		e = e.Next()
	}
	assert.Equal(t, GrayScale, e)
}

func TestParseEffect(t *testing.T) {
	for _, e := range Effects() {
		got, err := ParseEffect(strings.ToUpper(e.String()))
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	e, err := ParseEffect("")
	require.NoError(t, err)
	assert.Equal(t, None, e)

	_, err = ParseEffect("sepia")
	assert.Error(t, err)
	assert.Equal(t, "Effect(42)", Effect(42).String())
	assert.False(t, Effect(-1).Valid())
}

func TestTextRoundTrip(t *testing.T) {
	text, err := DeepFried.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "deep-fried", string(text))

	var e Effect
	require.NoError(t, e.UnmarshalText([]byte("blur")))
	assert.Equal(t, Blur, e)
	assert.Error(t, e.UnmarshalText([]byte("nope")))

	_, err = Effect(99).MarshalText()
	assert.Error(t, err)
}

func TestKernels(t *testing.T) {
	tests := []struct {
		effect Effect
		sum    float32
		center float32
	}{
		{DeepFried, 1, -15},
		{Blur, 1, 0.25},
		{Edged, 0, -8},
	}
	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			k, ok := tt.effect.Kernel()
			require.True(t, ok)
			var sum float32
			for _, w := range k {
				sum += w
			}
			assert.InDelta(t, tt.sum, sum, 1e-6)
			assert.Equal(t, tt.center, k[4])
		})
	}

	for _, e := range []Effect{None, Inversed, GrayScale} {
		_, ok := e.Kernel()
		assert.False(t, ok, e.String())
	}
}

func TestFragmentSource(t *testing.T) {
	for _, e := range Effects() {
		src := FragmentSource(e)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(src), "#version 330 core"), e.String())
		assert.True(t, strings.HasSuffix(src, "\x00"), e.String())
		assert.Contains(t, src, "uniform sampler2D "+ScreenTextureUniform)
	}

	assert.Contains(t, FragmentSource(Inversed), "1.0 - texture")
	assert.Contains(t, FragmentSource(GrayScale), "0.2126 * color.r")
	assert.Contains(t, FragmentSource(Edged), "float[](1.0, 1.0, 1.0, 1.0, -8.0, 1.0, 1.0, 1.0, 1.0)")
	assert.Contains(t, FragmentSource(Blur), "0.25")
	assert.NotContains(t, FragmentSource(None), "kernel")
}

func TestGLSLFloat(t *testing.T) {
	assert.Equal(t, "2.0", glslFloat(2))
	assert.Equal(t, "-15.0", glslFloat(-15))
	assert.Equal(t, "0.0625", glslFloat(1.0/16))
	assert.Equal(t, "0.0033333334", glslFloat(TexelOffset))
}
