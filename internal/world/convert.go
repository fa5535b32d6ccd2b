package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/glscene/internal/config"
	"github.com/paperboard/glscene/internal/light"
	"github.com/paperboard/glscene/internal/object"
)

// Spot converts the configured flashlight; cut-offs become cosines.
func Spot(f config.Flashlight) light.SpotLight {
	return light.SpotLight{
		CutOff:      light.CutOffCos(f.CutOff),
		OuterCutOff: light.CutOffCos(f.Outer),
		Ambient:     mgl32.Vec3(f.Ambient),
		Diffuse:     mgl32.Vec3(f.Diffuse),
		Specular:    mgl32.Vec3(f.Specular),
	}
}

func PointLights(points []config.PointLight) []light.PointLight {
	out := make([]light.PointLight, len(points))
	for i, p := range points {
		out[i] = light.PointLight{
			Position:  mgl32.Vec3(p.Position),
			Ambient:   mgl32.Vec3(p.Ambient),
			Diffuse:   mgl32.Vec3(p.Diffuse),
			Specular:  mgl32.Vec3(p.Specular),
			Constant:  p.Constant,
			Linear:    p.Linear,
			Quadratic: p.Quadratic,
		}
	}
	return out
}

// Instances converts configured model placements. Rotations are given in
// degrees.
func Instances(instances []config.Instance) []object.Instance {
	out := make([]object.Instance, len(instances))
	for i, in := range instances {
		rotation := object.Euler{
			X: mgl32.DegToRad(in.Rotation[0]),
			Y: mgl32.DegToRad(in.Rotation[1]),
			Z: mgl32.DegToRad(in.Rotation[2]),
		}
		out[i] = object.NewInstance(mgl32.Vec3(in.Position), rotation, in.Scale)
	}
	return out
}
