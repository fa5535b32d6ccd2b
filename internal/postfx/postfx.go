// Package postfx describes the full-screen effects applied when the offscreen
// framebuffer is drawn to the window.
package postfx

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Effect is a post-processing effect. Values are in cycling order.
type Effect int

const (
	None Effect = iota
	Inversed
	GrayScale
	DeepFried
	Blur
	Edged

	effectCount
)

var effectNames = [effectCount]string{
	None:      "none",
	Inversed:  "inversed",
	GrayScale: "grayscale",
	DeepFried: "deep-fried",
	Blur:      "blur",
	Edged:     "edged",
}

// Effects lists every effect in cycling order.
func Effects() []Effect {
	out := make([]Effect, effectCount)
	for i := range out {
		out[i] = Effect(i)
	}
	return out
}

func (e Effect) String() string {
	if e < 0 || e >= effectCount {
		return fmt.Sprintf("Effect(%d)", int(e))
	}
	return effectNames[e]
}

// Valid reports whether e is a known effect.
func (e Effect) Valid() bool {
	return e >= 0 && e < effectCount
}

// ParseEffect accepts the lower-case effect names, case-insensitively.
// An empty name is None.
func ParseEffect(name string) (Effect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, nil
	}
	for i, n := range effectNames {
		if n == name {
			return Effect(i), nil
		}
	}
	return None, errors.Errorf("unknown effect %q (want one of %s)", name, strings.Join(effectNames[:], ", "))
}

// MarshalText lets Effect be used directly in config files.
func (e Effect) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, errors.Errorf("invalid effect %d", int(e))
	}
	return []byte(e.String()), nil
}

func (e *Effect) UnmarshalText(text []byte) error {
	v, err := ParseEffect(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Next returns the following effect, wrapping to None after the last.
func (e Effect) Next() Effect {
	return Effect((int(e) + 1) % int(effectCount))
}

// Prev returns the preceding effect, wrapping to the last before None.
func (e Effect) Prev() Effect {
	return Effect((int(e) + int(effectCount) - 1) % int(effectCount))
}

// TexelOffset is the distance, in texture coordinates, between the samples
// of a kernel effect.
const TexelOffset = 1.0 / 300.0

// Kernel is a 3x3 convolution kernel, row by row from the top left sample.
type Kernel [9]float32

var kernels = map[Effect]Kernel{
	DeepFried: {
		2, 2, 2,
		2, -15, 2,
		2, 2, 2,
	},
	Blur: {
		1.0 / 16, 2.0 / 16, 1.0 / 16,
		2.0 / 16, 4.0 / 16, 2.0 / 16,
		1.0 / 16, 2.0 / 16, 1.0 / 16,
	},
	Edged: {
		1, 1, 1,
		1, -8, 1,
		1, 1, 1,
	},
}

// Kernel returns the convolution kernel of e, if it is a kernel effect.
func (e Effect) Kernel() (Kernel, bool) {
	k, ok := kernels[e]
	return k, ok
}

// Rec. 709 luma weights
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)
