package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Flashlight is a spot light carried by the camera that can be switched off.
type Flashlight struct {
	Spot SpotLight
	On   bool

	// colours restored when switching back on
	ambient  mgl32.Vec3
	diffuse  mgl32.Vec3
	specular mgl32.Vec3
}

// NewFlashlight returns a switched-on flashlight using the colours of spot.
func NewFlashlight(spot SpotLight) *Flashlight {
	return &Flashlight{
		Spot:     spot,
		On:       true,
		ambient:  spot.Ambient,
		diffuse:  spot.Diffuse,
		specular: spot.Specular,
	}
}

// Toggle switches the flashlight. Off means all colours are zero.
func (f *Flashlight) Toggle() {
	f.On = !f.On
	if f.On {
		f.Spot.Ambient = f.ambient
		f.Spot.Diffuse = f.diffuse
		f.Spot.Specular = f.specular
	} else {
		f.Spot.Ambient = mgl32.Vec3{}
		f.Spot.Diffuse = mgl32.Vec3{}
		f.Spot.Specular = mgl32.Vec3{}
	}
}

// Follow places the light at position, pointing along direction.
func (f *Flashlight) Follow(position, direction mgl32.Vec3) {
	f.Spot.Position = position
	f.Spot.Direction = direction
}

// IntensityStep is how much one key press changes the directional intensity.
const IntensityStep = 0.01

// Intensity is the user adjustable strength of the directional light.
type Intensity float32

func (i *Intensity) Raise() {
	*i += IntensityStep
}

// Lower decreases the intensity, never going below zero.
func (i *Intensity) Lower() {
	if *i > 0 {
		*i -= IntensityStep
	}
	if *i < 0 {
		*i = 0
	}
}
