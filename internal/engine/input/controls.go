package input

import (
	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Slider ranges of the control panel.
const (
	PanelRange float32 = 100 // dolly and position
	AngleRange float32 = 180 // azimuth and elevation
)

// Panel is the camera control panel. Every field is an absolute value;
// Apply pushes the fields that changed into the camera.
type Panel struct {
	Mode       camera.Mode
	Dolly      float32
	Position   math.Vec3
	Azimuth    float32
	Elevation  float32
	FixedLight bool
}

// Action is a request the controls cannot satisfy themselves.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
	ActionNextScene
	// ActionSaveSettings writes the camera home and current scene to the config file.
	ActionSaveSettings
)

// Steps configures how far one key press moves a slider.
type Steps struct {
	Rotate float32 // degrees
	Dolly  float32
	Move   float32
	// Drag is degrees per pixel of mouse drag.
	Drag float32
}

// DefaultSteps returns the default control sensitivity.
func DefaultSteps() Steps {
	return Steps{Rotate: 5, Dolly: 1, Move: 1, Drag: 0.5}
}

// Controls maps input events onto a camera through a Panel.
type Controls struct {
	cam   *camera.Camera
	panel Panel
	steps Steps

	dragging     bool
	lastX, lastY int
}

// NewControls creates controls whose panel mirrors cam's current state.
func NewControls(cam *camera.Camera, steps Steps) *Controls {
	c := &Controls{cam: cam, steps: steps}
	c.panel.Mode = cam.Mode()
	c.panel.Dolly = cam.DollySteps()
	c.sync()
	return c
}

// Panel returns the current panel values.
func (c *Controls) Panel() Panel { return c.panel }

// FixedLight reports whether the light should stay fixed in eye space.
func (c *Controls) FixedLight() bool { return c.panel.FixedLight }

// Apply updates the camera from every field of next that differs from the
// current panel. A mode change sends the camera home before switching.
func (c *Controls) Apply(next Panel) {
	prev := c.panel
	c.panel = next

	if next.Mode != prev.Mode {
		c.cam.GoHome()
		c.cam.SetMode(next.Mode)
		c.sync()
		return
	}
	if next.Dolly != prev.Dolly {
		c.cam.Dolly(next.Dolly)
		if next.Position == prev.Position {
			c.panel.Position = c.cam.Position()
		}
	}
	if next.Position != prev.Position {
		c.cam.SetPosition(next.Position)
	}
	if next.Elevation != prev.Elevation {
		c.cam.SetElevation(next.Elevation)
	}
	if next.Azimuth != prev.Azimuth {
		c.cam.SetAzimuth(next.Azimuth)
	}
}

// GoHome resets the camera and the position and angle sliders.
func (c *Controls) GoHome() {
	c.cam.GoHome()
	c.sync()
}

// sync copies position and angles back from the camera.
func (c *Controls) sync() {
	c.panel.Position = c.cam.Position()
	c.panel.Azimuth = c.cam.Azimuth()
	c.panel.Elevation = c.cam.Elevation()
}

// HandleEvent applies one event and returns any action for the caller.
func (c *Controls) HandleEvent(e Event) Action {
	switch e.Type {
	case EventQuit:
		return ActionQuit
	case EventKeyDown:
		return c.handleKey(e.Key)
	case EventMouseDown:
		if e.Button == ButtonLeft {
			c.dragging = true
			c.lastX, c.lastY = e.MouseX, e.MouseY
		}
	case EventMouseUp:
		if e.Button == ButtonLeft {
			c.dragging = false
		}
	case EventMouseMove:
		if !c.dragging {
			break
		}
		dx, dy := e.MouseX-c.lastX, e.MouseY-c.lastY
		c.lastX, c.lastY = e.MouseX, e.MouseY
		next := c.panel
		next.Azimuth = wrapSlider(next.Azimuth + float32(dx)*c.steps.Drag)
		next.Elevation = wrapSlider(next.Elevation + float32(dy)*c.steps.Drag)
		c.Apply(next)
	case EventMouseWheel:
		next := c.panel
		next.Dolly = clampSlider(next.Dolly + e.WheelY*c.steps.Dolly)
		c.Apply(next)
	}
	return ActionNone
}

func (c *Controls) handleKey(k Key) Action {
	next := c.panel
	s := c.steps

	switch k {
	case KeyEscape:
		return ActionQuit
	case KeyF12:
		return ActionScreenshot
	case KeyN:
		return ActionNextScene
	case KeyF5:
		return ActionSaveSettings
	case KeyH, KeyHome:
		c.GoHome()
		return ActionNone
	case KeyTab:
		if next.Mode == camera.Orbiting {
			next.Mode = camera.Tracking
		} else {
			next.Mode = camera.Orbiting
		}
	case KeyL:
		next.FixedLight = !next.FixedLight
	case KeyLeft:
		next.Azimuth = wrapSlider(next.Azimuth - s.Rotate)
	case KeyRight:
		next.Azimuth = wrapSlider(next.Azimuth + s.Rotate)
	case KeyUp:
		next.Elevation = wrapSlider(next.Elevation + s.Rotate)
	case KeyDown:
		next.Elevation = wrapSlider(next.Elevation - s.Rotate)
	case KeyW:
		next.Dolly = clampSlider(next.Dolly + s.Dolly)
	case KeyS:
		next.Dolly = clampSlider(next.Dolly - s.Dolly)
	case KeyA:
		next.Position.X = clampSlider(next.Position.X - s.Move)
	case KeyD:
		next.Position.X = clampSlider(next.Position.X + s.Move)
	case KeyQ:
		next.Position.Y = clampSlider(next.Position.Y - s.Move)
	case KeyE:
		next.Position.Y = clampSlider(next.Position.Y + s.Move)
	case KeyR:
		next.Position.Z = clampSlider(next.Position.Z - s.Move)
	case KeyF:
		next.Position.Z = clampSlider(next.Position.Z + s.Move)
	default:
		return ActionNone
	}

	c.Apply(next)
	return ActionNone
}

func clampSlider(v float32) float32 {
	if v > PanelRange {
		return PanelRange
	}
	if v < -PanelRange {
		return -PanelRange
	}
	return v
}

// wrapSlider keeps an angle slider in [-180, 180].
func wrapSlider(deg float32) float32 {
	for deg > AngleRange {
		deg -= 2 * AngleRange
	}
	for deg < -AngleRange {
		deg += 2 * AngleRange
	}
	return deg
}
