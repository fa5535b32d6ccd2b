// Package camera implements a first-person fly camera.
//
// The camera keeps Euler angles (yaw, pitch) and derives its front, right and
// up vectors from them. View and projection matrices follow OpenGL
// conventions: right-handed eye space looking down -Z, clip space in [-1, 1].
//
// https://learnopengl.com/Getting-started/Camera
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultYaw         = -90.0 // looking down -Z
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5 // world units per second
	DefaultSensitivity = 0.1 // degrees per pixel
	DefaultZoom        = 45.0

	MinZoom  = 1.0
	MaxZoom  = 45.0
	MaxPitch = 89.0

	Near = 0.1
	Far  = 100.0
)

// Direction indexes the pressed-keys array given to HandleKeys.
type Direction int

const (
	Forward Direction = iota
	Left
	Backward
	Right
)

// Camera is a first-person camera. Angles are in degrees.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32
	Sensitivity float32
	Zoom        float32 // vertical field of view
}

// New returns a camera at position looking down -Z.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
	}
	c.updateVectors()
	return c
}

// HandleKeys moves the camera for every pressed direction.
// dt is the frame time in seconds.
func (c *Camera) HandleKeys(pressed [4]bool, dt float32) {
	velocity := c.Speed * dt
	if pressed[Forward] {
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	}
	if pressed[Backward] {
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	}
	if pressed[Left] {
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	}
	if pressed[Right] {
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// HandleMouseMovement turns the camera. dy is positive when the mouse moves up.
func (c *Camera) HandleMouseMovement(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	// past 90 degrees the view flips
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)

	c.updateVectors()
}

// HandleZoom narrows the field of view when scrolling up.
func (c *Camera) HandleZoom(dy float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-dy, MinZoom, MaxZoom)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio. A non-positive aspect (minimised window) is treated as 1.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 || math32.IsNaN(aspect) || math32.IsInf(aspect, 0) {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, Near, Far)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// AspectRatio of a framebuffer, 1 when the size is degenerate.
func AspectRatio(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
