package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})

	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up)
}

func TestHandleKeys(t *testing.T) {
	tests := []struct {
		name    string
		pressed [4]bool
		want    mgl32.Vec3
	}{
		{"forward", [4]bool{Forward: true}, mgl32.Vec3{0, 0, 0.5}},
		{"backward", [4]bool{Backward: true}, mgl32.Vec3{0, 0, 5.5}},
		{"left", [4]bool{Left: true}, mgl32.Vec3{-2.5, 0, 3}},
		{"right", [4]bool{Right: true}, mgl32.Vec3{2.5, 0, 3}},
		{"forward and backward cancel", [4]bool{Forward: true, Backward: true}, mgl32.Vec3{0, 0, 3}},
		{"none", [4]bool{}, mgl32.Vec3{0, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(mgl32.Vec3{0, 0, 3})
			c.HandleKeys(tt.pressed, 1)
			assertVec3(t, tt.want, c.Position)
		})
	}
}

func TestMouseMovementClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{})

	c.HandleMouseMovement(0, 10000)
	assert.Equal(t, float32(MaxPitch), c.Pitch)
	assert.InDelta(t, 1, c.Front.Len(), tol)

	c.HandleMouseMovement(0, -20000)
	assert.Equal(t, float32(-MaxPitch), c.Pitch)
}

func TestMouseMovementTurnsRight(t *testing.T) {
	c := New(mgl32.Vec3{})

	// 900 pixels * 0.1 = 90 degrees of yaw: -Z becomes +X
	c.HandleMouseMovement(900, 0)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Front)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Right)
}

func TestHandleZoomClamps(t *testing.T) {
	c := New(mgl32.Vec3{})

	c.HandleZoom(10)
	assert.Equal(t, float32(35), c.Zoom)
	c.HandleZoom(100)
	assert.Equal(t, float32(MinZoom), c.Zoom)
	c.HandleZoom(-100)
	assert.Equal(t, float32(MaxZoom), c.Zoom)
}

func TestViewMatrixMovesWorldOppositeCamera(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})

	assertVec3(t, mgl32.Vec3{0, 0, -3}, p.Vec3())
}

func TestProjectionMatrix(t *testing.T) {
	c := New(mgl32.Vec3{})

	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 2, Near, Far), c.ProjectionMatrix(2))
	assert.Equal(t, c.ProjectionMatrix(1), c.ProjectionMatrix(0))
	assert.Equal(t, c.ProjectionMatrix(1), c.ProjectionMatrix(-3))
}

func TestProjectionViewOrder(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})
	pv := c.ProjectionMatrix(1).Mul4(c.ViewMatrix())

	// a point straight ahead lands in the centre of clip space
	clip := pv.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	assert.InDelta(t, 0, ndc.X(), tol)
	assert.InDelta(t, 0, ndc.Y(), tol)
	assert.True(t, ndc.Z() > -1 && ndc.Z() < 1)
}

func TestAspectRatio(t *testing.T) {
	assert.Equal(t, float32(1), AspectRatio(768, 768))
	assert.Equal(t, float32(2), AspectRatio(800, 400))
	assert.Equal(t, float32(1), AspectRatio(0, 400))
}
