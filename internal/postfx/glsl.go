package postfx

import (
	"fmt"
	"strings"
)

// ScreenTextureUniform is the sampler the screen pass reads the scene from.
const ScreenTextureUniform = "screenTexture"

var fragmentHeader = `
#version 330 core

in vec2 fragTexCoord;

out vec4 outputColor;

uniform sampler2D screenTexture;
`

var fragmentNone = `
void main() {
    outputColor = vec4(texture(screenTexture, fragTexCoord).rgb, 1.0);
}
`

var fragmentInversed = `
void main() {
    outputColor = vec4(vec3(1.0 - texture(screenTexture, fragTexCoord).rgb), 1.0);
}
`

var fragmentGrayScale = `
void main() {
    vec3 color = texture(screenTexture, fragTexCoord).rgb;
    float average = %s * color.r + %s * color.g + %s * color.b;
    outputColor = vec4(average, average, average, 1.0);
}
`

var fragmentKernel = `
const float offset = %s;

void main() {
    vec2 offsets[9] = vec2[](
        vec2(-offset,  offset),
        vec2( 0.0,     offset),
        vec2( offset,  offset),
        vec2(-offset,  0.0),
        vec2( 0.0,     0.0),
        vec2( offset,  0.0),
        vec2(-offset, -offset),
        vec2( 0.0,    -offset),
        vec2( offset, -offset)
    );

    float kernel[9] = float[](%s);

    vec3 color = vec3(0.0);
    for (int i = 0; i < 9; i++) {
        color += vec3(texture(screenTexture, fragTexCoord.st + offsets[i])) * kernel[i];
    }
    outputColor = vec4(color, 1.0);
}
`

// glslFloat formats f so that GLSL parses it as a float literal.
func glslFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FragmentSource returns the null-terminated fragment shader of the screen
// pass for e.
func FragmentSource(e Effect) string {
	var body string
	switch e {
	case Inversed:
		body = fragmentInversed
	case GrayScale:
		body = fmt.Sprintf(fragmentGrayScale, glslFloat(LumaR), glslFloat(LumaG), glslFloat(LumaB))
	case DeepFried, Blur, Edged:
		k, _ := e.Kernel()
		weights := make([]string, len(k))
		for i, w := range k {
			weights[i] = glslFloat(w)
		}
		body = fmt.Sprintf(fragmentKernel, glslFloat(TexelOffset), strings.Join(weights, ", "))
	default:
		body = fragmentNone
	}
	return fragmentHeader + body + "\x00"
}
