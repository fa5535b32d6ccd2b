// Package input turns window events into per-frame input for the scene.
//
// Event callbacks write into a State; the main loop drains it once per frame
// with Frame. The package does not import glfw: the window code maps its keys
// to Actions.
package input

// Action is a user command bound to a key.
type Action int

const (
	MoveForward Action = iota
	MoveLeft
	MoveBackward
	MoveRight
	IntensityUp
	IntensityDown
	PrevEffect
	NextEffect
	ToggleFlashlight
	Quit

	actionCount
)

var actionNames = [actionCount]string{
	MoveForward:      "move-forward",
	MoveLeft:         "move-left",
	MoveBackward:     "move-backward",
	MoveRight:        "move-right",
	IntensityUp:      "intensity-up",
	IntensityDown:    "intensity-down",
	PrevEffect:       "prev-effect",
	NextEffect:       "next-effect",
	ToggleFlashlight: "toggle-flashlight",
	Quit:             "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// held reports whether a is level triggered.
func (a Action) held() bool {
	return a <= MoveRight
}

// onRelease reports whether a one-shot action fires when its key goes up.
func (a Action) onRelease() bool {
	return a == PrevEffect || a == NextEffect || a == ToggleFlashlight
}

// KeyEvent is the state change of a bound key.
type KeyEvent int

const (
	Press KeyEvent = iota
	Repeat
	Release
)

// Frame is the input gathered since the previous frame.
type Frame struct {
	// Movement keys currently held, indexed like camera.Direction.
	Movement [4]bool

	// Mouse movement in pixels, y up.
	MouseDX float32
	MouseDY float32

	// Scroll wheel lines.
	Scroll float32

	// One-shot actions in the order they fired.
	Actions []Action

	// Framebuffer size when it changed. A minimised window reports 0x0.
	ResizeWidth  int
	ResizeHeight int

	resized bool
}

// Resized reports whether the framebuffer changed size.
func (f Frame) Resized() bool {
	return f.resized
}

// State accumulates window events between frames.
type State struct {
	movement [4]bool

	inWindow  bool
	haveMouse bool
	lastX     float64
	lastY     float64
	dx, dy    float64

	scroll  float64
	actions []Action

	width, height int
	resized       bool
}

func NewState() *State {
	return &State{inWindow: true}
}

// Key records a key event for a bound action.
func (s *State) Key(a Action, ev KeyEvent) {
	if a < 0 || a >= actionCount {
		return
	}
	if a.held() {
		switch ev {
		case Press, Repeat:
			s.movement[a] = true
		case Release:
			s.movement[a] = false
		}
		return
	}

	switch {
	case a.onRelease():
		if ev == Release {
			s.actions = append(s.actions, a)
		}
	case a == Quit:
		if ev == Press {
			s.actions = append(s.actions, a)
		}
	default:
		// intensity steps on every event of its key, going down and up
		s.actions = append(s.actions, a)
	}
}

// CursorEnter records the cursor entering or leaving the window. The first
// position after entering only sets the reference point.
func (s *State) CursorEnter(entered bool) {
	s.inWindow = entered
	s.haveMouse = false
}

// CursorPos records an absolute cursor position in window coordinates.
func (s *State) CursorPos(x, y float64) {
	if !s.inWindow {
		return
	}
	if !s.haveMouse {
		s.lastX, s.lastY = x, y
		s.haveMouse = true
		return
	}
	s.dx += x - s.lastX
	// window y grows downwards
	s.dy += s.lastY - y
	s.lastX, s.lastY = x, y
}

// Scroll records vertical wheel movement.
func (s *State) Scroll(dy float64) {
	s.scroll += dy
}

// Resize records a new framebuffer size.
func (s *State) Resize(width, height int) {
	s.width, s.height = width, height
	s.resized = true
}

// Frame returns the input since the last call and resets the accumulated
// deltas and one-shot actions. Held keys stay held.
func (s *State) Frame() Frame {
	f := Frame{
		Movement:     s.movement,
		MouseDX:      float32(s.dx),
		MouseDY:      float32(s.dy),
		Scroll:       float32(s.scroll),
		Actions:      s.actions,
		ResizeWidth:  s.width,
		ResizeHeight: s.height,
		resized:      s.resized,
	}
	s.dx, s.dy, s.scroll = 0, 0, 0
	s.actions = nil
	s.resized = false
	return f
}
