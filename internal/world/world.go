// Package world is the per-frame scene state that does not live on the GPU:
// the camera, the lights and the selected post effect. The render loop feeds
// it input with Apply and reads a DrawData snapshot for every frame.
package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/glscene/internal/camera"
	"github.com/paperboard/glscene/internal/config"
	"github.com/paperboard/glscene/internal/input"
	"github.com/paperboard/glscene/internal/light"
	"github.com/paperboard/glscene/internal/object"
	"github.com/paperboard/glscene/internal/postfx"
)

type World struct {
	Camera     *camera.Camera
	Flashlight *light.Flashlight
	Intensity  light.Intensity
	LightCubes []object.LightCube
	Effect     postfx.Effect

	quit bool
}

// DrawData is everything a container needs to draw one frame.
type DrawData struct {
	Projection     mgl32.Mat4
	View           mgl32.Mat4
	ProjectionView mgl32.Mat4

	// projection * view without the camera translation
	SkyboxProjectionView mgl32.Mat4

	CameraPos   mgl32.Vec3
	Environment light.Environment
	LightCubes  []object.LightCube
}

// New builds the world described by cfg.
func New(cfg *config.Config) *World {
	c := camera.New(mgl32.Vec3(cfg.Camera.Position))
	if cfg.Camera.Speed > 0 {
		c.Speed = cfg.Camera.Speed
	}
	if cfg.Camera.Sensitivity > 0 {
		c.Sensitivity = cfg.Camera.Sensitivity
	}

	w := &World{Camera: c}
	w.Reload(cfg)
	return w
}

// Reload replaces the lights and the effect with the ones in cfg. The camera
// keeps its position and orientation.
func (w *World) Reload(cfg *config.Config) {
	w.Flashlight = light.NewFlashlight(Spot(cfg.Lights.Flashlight))
	if !cfg.Lights.Flashlight.On {
		w.Flashlight.Toggle()
	}
	w.Flashlight.Follow(w.Camera.Position, w.Camera.Front)

	w.Intensity = light.Intensity(cfg.Lights.Intensity)
	w.Effect = cfg.Effect

	points := PointLights(cfg.Lights.Points)
	w.LightCubes = make([]object.LightCube, len(points))
	for i, p := range points {
		w.LightCubes[i] = object.NewLightCube(object.Euler{}, object.LightCubeScale, p)
	}
}

// Apply advances the world by dt seconds with the input of one frame.
func (w *World) Apply(f input.Frame, dt float32) {
	w.Camera.HandleMouseMovement(f.MouseDX, f.MouseDY)
	w.Camera.HandleKeys(f.Movement, dt)
	if f.Scroll != 0 {
		w.Camera.HandleZoom(f.Scroll)
	}

	for _, a := range f.Actions {
		switch a {
		case input.IntensityUp:
			w.Intensity.Raise()
		case input.IntensityDown:
			w.Intensity.Lower()
		case input.PrevEffect:
			w.Effect = w.Effect.Prev()
		case input.NextEffect:
			w.Effect = w.Effect.Next()
		case input.ToggleFlashlight:
			w.Flashlight.Toggle()
		case input.Quit:
			w.quit = true
		}
	}

	w.Flashlight.Follow(w.Camera.Position, w.Camera.Front)
}

// Quit reports whether the user asked to leave.
func (w *World) Quit() bool {
	return w.quit
}

// Environment is the current set of lights.
func (w *World) Environment() light.Environment {
	points := make([]light.PointLight, len(w.LightCubes))
	for i, c := range w.LightCubes {
		points[i] = c.Light
	}
	return light.Environment{
		Directional: light.Directional(float32(w.Intensity)),
		Spot:        w.Flashlight.Spot,
		Points:      points,
	}
}

// Snapshot returns the draw data for a framebuffer of the given aspect ratio.
func (w *World) Snapshot(aspect float32) DrawData {
	projection := w.Camera.ProjectionMatrix(aspect)
	view := w.Camera.ViewMatrix()

	return DrawData{
		Projection:           projection,
		View:                 view,
		ProjectionView:       projection.Mul4(view),
		SkyboxProjectionView: projection.Mul4(view.Mat3().Mat4()),
		CameraPos:            w.Camera.Position,
		Environment:          w.Environment(),
		LightCubes:           append([]object.LightCube(nil), w.LightCubes...),
	}
}
