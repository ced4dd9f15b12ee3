// Package window creates the native window and OpenGL context the demos
// render into.
package window

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/render"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend    string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is a native window with a current OpenGL 4.1 core context.
type Window interface {
	render.Surface
	// PollEvents drains pending native events into in.
	PollEvents(in *input.Input)
	SwapBuffers()
	SetTitle(title string)
	Close()
}

// New creates a window using the configured backend (SDL2 by default).
func New(cfg Config) (Window, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendSDL:
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}

func pixelRatio(logical, physical int) float32 {
	if logical <= 0 || physical <= 0 {
		return 1
	}
	return float32(physical) / float32(logical)
}
