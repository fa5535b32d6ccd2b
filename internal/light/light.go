// Package light holds the Phong light and material parameters of the scene and
// marshals them into the uniform names used by the object shader.
package light

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/uniform"
)

// MaxPointLights is the size of the pointLights array in the object shader.
const MaxPointLights = 4

// texture units used by a textured material
const (
	DiffuseUnit  = 0
	SpecularUnit = 1
)

// MarshalTextured writes the sampler bindings of a textured material.
// The diffuse and specular maps are expected on DiffuseUnit and SpecularUnit.
func MarshalTextured(u *uniform.Set, shininess float32) {
	u.SetSampler("material.diffuse", DiffuseUnit)
	u.SetSampler("material.specular", SpecularUnit)
	u.SetFloat("material.shininess", shininess)
}

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	// attenuation = 1 / (Constant + Linear*d + Quadratic*d*d)
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Marshal writes the light as pointLights[i].
func (p PointLight) Marshal(u *uniform.Set, i int) {
	prefix := fmt.Sprintf("pointLights[%d].", i)
	u.SetVec3(prefix+"position", p.Position)
	u.SetVec3(prefix+"ambient", p.Ambient)
	u.SetVec3(prefix+"diffuse", p.Diffuse)
	u.SetVec3(prefix+"specular", p.Specular)
	u.SetFloat(prefix+"constant", p.Constant)
	u.SetFloat(prefix+"linear", p.Linear)
	u.SetFloat(prefix+"quadratic", p.Quadratic)
}

type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3

	// cosines of the inner and outer cone angles
	CutOff      float32
	OuterCutOff float32

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

func (s SpotLight) Marshal(u *uniform.Set) {
	u.SetVec3("spotLight.position", s.Position)
	u.SetVec3("spotLight.direction", s.Direction)
	u.SetFloat("spotLight.cutOff", s.CutOff)
	u.SetFloat("spotLight.outerCutOff", s.OuterCutOff)
	u.SetVec3("spotLight.ambient", s.Ambient)
	u.SetVec3("spotLight.diffuse", s.Diffuse)
	u.SetVec3("spotLight.specular", s.Specular)
}

// CutOffCos converts a cone angle in degrees to the cosine stored in SpotLight.
func CutOffCos(degrees float32) float32 {
	return math32.Cos(mgl32.DegToRad(degrees))
}

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

func (d DirectionalLight) Marshal(u *uniform.Set) {
	u.SetVec3("dirLight.direction", d.Direction)
	u.SetVec3("dirLight.ambient", d.Ambient)
	u.SetVec3("dirLight.diffuse", d.Diffuse)
	u.SetVec3("dirLight.specular", d.Specular)
}

// SunDirection is the fixed direction of the directional light.
var SunDirection = mgl32.Vec3{-0.2, -1.0, -0.3}

// Directional derives the directional light from the user controlled
// intensity t.
func Directional(t float32) DirectionalLight {
	ambient := t / 3
	diffuse := t
	specular := t*0.4 + 0.4
	return DirectionalLight{
		Direction: SunDirection,
		Ambient:   mgl32.Vec3{ambient, ambient, ambient},
		Diffuse:   mgl32.Vec3{diffuse, diffuse, diffuse},
		Specular:  mgl32.Vec3{specular, specular, specular},
	}
}

// Environment is every light affecting a lit draw call.
type Environment struct {
	Directional DirectionalLight
	Spot        SpotLight
	Points      []PointLight
}

// Marshal writes all lights. Unused point light slots are filled with lights
// that contribute nothing; more than MaxPointLights is an error.
func (e Environment) Marshal(u *uniform.Set) error {
	if len(e.Points) > MaxPointLights {
		return errors.Errorf("too many point lights: %d (max %d)", len(e.Points), MaxPointLights)
	}
	e.Directional.Marshal(u)
	e.Spot.Marshal(u)
	for i := 0; i < MaxPointLights; i++ {
		if i < len(e.Points) {
			e.Points[i].Marshal(u, i)
		} else {
			PointLight{Constant: 1}.Marshal(u, i)
		}
	}
	return nil
}
