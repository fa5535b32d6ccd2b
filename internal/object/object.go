// Package object holds the placeable things of the scene: plain transforms,
// cubes, light cubes and model instances.
package object

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/paperboard/glscene/internal/light"
)

// Euler is a rotation in radians about the X, Y and Z axes.
type Euler struct {
	X, Y, Z float32
}

// Mat4 returns the homogeneous rotation matrix Rx * Ry * Rz, so a vertex is
// turned about Z first, then Y, then X.
func (e Euler) Mat4() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(e.X).
		Mul4(mgl32.HomogRotate3DY(e.Y)).
		Mul4(mgl32.HomogRotate3DZ(e.Z))
}

// Transform places an object in the world with a uniform scale.
// Model is only valid after construction or UpdateModel.
type Transform struct {
	Position mgl32.Vec3
	Rotation Euler
	Scale    float32
	Model    mgl32.Mat4
}

// NewTransform returns an unrotated, unscaled transform at position.
func NewTransform(position mgl32.Vec3) Transform {
	return Transform{
		Position: position,
		Scale:    1,
		Model:    mgl32.Translate3D(position.X(), position.Y(), position.Z()),
	}
}

func FromFull(position mgl32.Vec3, rotation Euler, scale float32) Transform {
	t := Transform{Position: position, Rotation: rotation, Scale: scale}
	t.UpdateModel()
	return t
}

// UpdateModel recomputes Model after Position, Rotation or Scale changed.
func (t *Transform) UpdateModel() {
	t.Model = ModelMatrix(t.Position, t.Rotation, t.Scale)
}

// ModelMatrix composes translate * rotate * scale, so a vertex is scaled
// first, then rotated, then moved into place.
func ModelMatrix(position mgl32.Vec3, rotation Euler, scale float32) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	scaling := mgl32.Scale3D(scale, scale, scale)
	return translation.Mul4(rotation.Mat4()).Mul4(scaling)
}

// Cube is a textured cube of the cube grid. Every cube shares the grid's
// material.
type Cube struct {
	Transform
}

func NewCube(position mgl32.Vec3) Cube {
	return Cube{Transform: NewTransform(position)}
}

// LightCubeScale is the size of the cube drawn at each point light.
const LightCubeScale = 0.2

// LightCube is a small cube drawn at the position of a point light.
type LightCube struct {
	Transform
	Light light.PointLight
}

// NewLightCube places a light cube at the light's position.
func NewLightCube(rotation Euler, scale float32, l light.PointLight) LightCube {
	return LightCube{
		Transform: FromFull(l.Position, rotation, scale),
		Light:     l,
	}
}

// Instance is one placement of a loaded model.
type Instance struct {
	Transform
}

func NewInstance(position mgl32.Vec3, rotation Euler, scale float32) Instance {
	return Instance{Transform: FromFull(position, rotation, scale)}
}

// GenerateGrid returns the positions of a rowCount^3 cube grid centred on the
// origin with spacing between neighbours. rowCount must be odd so that a
// cube sits at the origin.
func GenerateGrid(rowCount int, spacing float32) ([]mgl32.Vec3, error) {
	if rowCount <= 0 || rowCount%2 == 0 {
		return nil, errors.Errorf("cube grid row count must be a positive odd number, got %d", rowCount)
	}
	half := rowCount / 2
	positions := make([]mgl32.Vec3, 0, rowCount*rowCount*rowCount)
	for x := -half; x <= half; x++ {
		for y := -half; y <= half; y++ {
			for z := -half; z <= half; z++ {
				positions = append(positions, mgl32.Vec3{
					float32(x) * spacing,
					float32(y) * spacing,
					float32(z) * spacing,
				})
			}
		}
	}
	return positions, nil
}

// GenerateCubes builds the cube grid.
func GenerateCubes(rowCount int, spacing float32) ([]Cube, error) {
	positions, err := GenerateGrid(rowCount, spacing)
	if err != nil {
		return nil, err
	}
	cubes := make([]Cube, len(positions))
	for i, p := range positions {
		cubes[i] = NewCube(p)
	}
	return cubes, nil
}
