package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/logger"
)

// glfwWindow holds the GLFW window and the events its callbacks queued
// since the last poll.
type glfwWindow struct {
	config  Config
	window  *glfw.Window
	pending []input.Event
}

// newGLFW creates the GLFW window with an OpenGL 4.1 core context and
// input callbacks.
func newGLFW(cfg Config) (Window, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{config: cfg, window: win}
	w.registerCallbacks()

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

func (w *glfwWindow) registerCallbacks() {
	win := w.window

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press, glfw.Repeat:
			w.push(input.Event{Type: input.EventKeyDown, Key: glfwKey(key)})
		case glfw.Release:
			w.push(input.Event{Type: input.EventKeyUp, Key: glfwKey(key)})
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.push(input.Event{Type: input.EventMouseWheel, WheelY: float32(yoff)})
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		typ := input.EventMouseDown
		if action == glfw.Release {
			typ = input.EventMouseUp
		}
		w.push(input.Event{
			Type:   typ,
			MouseX: int(x),
			MouseY: int(y),
			Button: glfwButton(button),
		})
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(input.Event{Type: input.EventMouseMove, MouseX: int(x), MouseY: int(y)})
	})

	// Logical size; the render context applies the pixel ratio itself.
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
	})
}

func (w *glfwWindow) push(e input.Event) {
	w.pending = append(w.pending, e)
}

// PollEvents polls GLFW without blocking and forwards queued events.
func (w *glfwWindow) PollEvents(in *input.Input) {
	glfw.PollEvents()
	for _, e := range w.pending {
		in.Push(e)
	}
	w.pending = w.pending[:0]
	if w.window.ShouldClose() {
		in.Push(input.Event{Type: input.EventQuit})
	}
}

// Close destroys the GLFW window and terminates the GLFW library.
func (w *glfwWindow) Close() {
	logger.Info("closing window")
	w.window.Destroy()
	glfw.Terminate()
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) Size() (int, int) {
	return w.window.GetSize()
}

// PixelRatio returns framebuffer pixels per screen unit; they differ on
// high-DPI displays.
func (w *glfwWindow) PixelRatio() float32 {
	width, _ := w.window.GetSize()
	fbWidth, _ := w.window.GetFramebufferSize()
	return pixelRatio(width, fbWidth)
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeyLeft:   input.KeyLeft,
	glfw.KeyRight:  input.KeyRight,
	glfw.KeyUp:     input.KeyUp,
	glfw.KeyDown:   input.KeyDown,
	glfw.KeyW:      input.KeyW,
	glfw.KeyS:      input.KeyS,
	glfw.KeyA:      input.KeyA,
	glfw.KeyD:      input.KeyD,
	glfw.KeyQ:      input.KeyQ,
	glfw.KeyE:      input.KeyE,
	glfw.KeyR:      input.KeyR,
	glfw.KeyF:      input.KeyF,
	glfw.KeyH:      input.KeyH,
	glfw.KeyL:      input.KeyL,
	glfw.KeyN:      input.KeyN,
	glfw.KeyTab:    input.KeyTab,
	glfw.KeyHome:   input.KeyHome,
	glfw.KeyF5:     input.KeyF5,
	glfw.KeyF12:    input.KeyF12,
}

func glfwKey(k glfw.Key) input.Key {
	return glfwKeys[k]
}

func glfwButton(b glfw.MouseButton) uint8 {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle
	case glfw.MouseButtonRight:
		return input.ButtonRight
	}
	return 0
}
