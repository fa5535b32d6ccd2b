// Command glscene is a first-person walk through a lit cube grid with loaded
// models, a skybox and switchable post-processing effects.
//
//	W A S D   move
//	mouse     look around, scroll to zoom
//	T / Y     raise / lower the directional light
//	Z / X     previous / next post effect
//	L         flashlight on / off
//	Esc       quit
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/glscene/internal/camera"
	"github.com/paperboard/glscene/internal/config"
	"github.com/paperboard/glscene/internal/gfx"
	"github.com/paperboard/glscene/internal/input"
	"github.com/paperboard/glscene/internal/scene"
	"github.com/paperboard/glscene/internal/world"
)

var keyActions = map[glfw.Key]input.Action{
	glfw.KeyW:      input.MoveForward,
	glfw.KeyA:      input.MoveLeft,
	glfw.KeyS:      input.MoveBackward,
	glfw.KeyD:      input.MoveRight,
	glfw.KeyT:      input.IntensityUp,
	glfw.KeyY:      input.IntensityDown,
	glfw.KeyZ:      input.PrevEffect,
	glfw.KeyX:      input.NextEffect,
	glfw.KeyL:      input.ToggleFlashlight,
	glfw.KeyEscape: input.Quit,
}

var keyEvents = map[glfw.Action]input.KeyEvent{
	glfw.Press:   input.Press,
	glfw.Repeat:  input.Repeat,
	glfw.Release: input.Release,
}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	opts, err := config.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalln("invalid arguments:", err)
	}
	cfg, err := opts.Load()
	if err != nil {
		log.Fatalln("failed to load scene:", err)
	}
	if opts.Verbose {
		spewConfig := spew.NewDefaultConfig()
		spewConfig.DisableCapacities = true
		log.Println(spewConfig.Sdump(cfg))
	}

	// initalize glfw
	err = glfw.Init()
	if err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	// use OpenGL v3.3 core
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)

	// create window handle
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// initialize OpenGL
	err = gfx.Init()
	if err != nil {
		log.Fatalln("failed to initialize OpenGL:", err)
	}
	fmt.Println("OpenGL version", gfx.Version())
	if opts.Verbose {
		fmt.Println("Renderer", gfx.Renderer(), "GLSL", gfx.GLSLVersion())
	}

	// pixel dimension and window dimensions are not the same on high-dpi
	// screens, everything GL is sized in framebuffer pixels
	fbWidth, fbHeight := window.GetFramebufferSize()

	renderer, err := scene.Load(cfg, fbWidth, fbHeight)
	if err != nil {
		log.Fatalln("failed to load scene:", err)
	}
	defer renderer.Delete()

	w := world.New(cfg)
	state := input.NewState()
	bindCallbacks(window, state)

	var watcher *config.Watcher
	if opts.Watch {
		if watcher, err = config.Watch(opts.ConfigPath); err != nil {
			log.Fatalln("failed to watch scene:", err)
		}
		defer watcher.Close()
		log.Printf("watching %s", watcher.Path())
	}

	var frameTime time.Duration
	if cfg.Window.MaxFPS > 0 {
		frameTime = time.Second / time.Duration(cfg.Window.MaxFPS)
	}

	// run gameloop
	effect := w.Effect
	last := time.Now()
	for !window.ShouldClose() && !w.Quit() {
		start := time.Now()
		dt := float32(start.Sub(last).Seconds())
		last = start

		// glfw events?
		glfw.PollEvents()

		if watcher != nil && watcher.Changed() {
			reload(w, opts)
		}

		frame := state.Frame()
		if frame.Resized() {
			fbWidth, fbHeight = frame.ResizeWidth, frame.ResizeHeight
		}
		w.Apply(frame, dt)
		if w.Effect != effect {
			effect = w.Effect
			log.Println("effect:", effect)
		}

		// draw into buffer
		data := w.Snapshot(camera.AspectRatio(fbWidth, fbHeight))
		if err := renderer.Frame(data, w.Effect, fbWidth, fbHeight); err != nil {
			log.Fatalln("failed to draw frame:", err)
		}

		// render buffer to screen
		window.SwapBuffers()

		// max framerate
		if frameTime > 0 {
			if rest := frameTime - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

}

func bindCallbacks(window *glfw.Window, state *input.State) {
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		a, ok := keyActions[key]
		if !ok {
			return
		}
		state.Key(a, keyEvents[action])
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		state.CursorPos(x, y)
	})
	window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		state.CursorEnter(entered)
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, y float64) {
		state.Scroll(y)
	})

	// on window size change (by OS or user resize) this callback executes
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		state.Resize(width, height)
	})
}

// reload applies the lights and effect of a changed scene file. Geometry and
// textures stay as loaded at startup.
func reload(w *world.World, opts *config.Options) {
	cfg, err := opts.Load()
	if err != nil {
		log.Println("scene reload failed, keeping the current one:", err)
		return
	}
	w.Reload(cfg)
	log.Println("scene reloaded:", opts.ConfigPath)
}
