// Package demo implements the demo scenes and switching between them.
package demo

import (
	"fmt"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/lighting"
	"github.com/Faultbox/gldemos/internal/engine/render"
)

// Scene names accepted by New.
const (
	NameSquare         = "square"
	NameGouraudLambert = "gouraud-lambert"
	NameGouraudPhong   = "gouraud-phong"
	NamePhong          = "phong"
	NameCamera         = "camera"
	NameBouncingBalls  = "bouncing-balls"
)

// Names lists every scene in switching order.
var Names = []string{
	NameSquare,
	NameGouraudLambert,
	NameGouraudPhong,
	NamePhong,
	NameCamera,
	NameBouncingBalls,
}

// Scene is one demo.
type Scene interface {
	Name() string

	// Enter compiles the scene's program and uploads its geometry.
	Enter() error

	// Exit releases the scene's GPU buffers.
	Exit() error

	// Update advances the scene by dt seconds.
	Update(dt float64) error

	// Render draws one frame.
	Render() error
}

// Bouncer plays a bounce sound; strength is in [0, 1].
type Bouncer interface {
	PlayBounce(strength float64) error
}

// Env is what the scenes share: one render context, one camera and its
// controls.
type Env struct {
	Render   *render.Context
	Camera   *camera.Camera
	Controls *input.Controls
	Light    lighting.Light
	Scene    config.SceneConfig

	// Audio is optional.
	Audio Bouncer
}

// New creates the scene called name.
func New(name string, env Env) (Scene, error) {
	switch name {
	case NameSquare:
		return NewSquareScene(env), nil
	case NameGouraudLambert:
		return NewShadingScene(env, GouraudLambert), nil
	case NameGouraudPhong:
		return NewShadingScene(env, GouraudPhong), nil
	case NamePhong:
		return NewShadingScene(env, Phong), nil
	case NameCamera:
		return NewCameraScene(env), nil
	case NameBouncingBalls:
		return NewBallsScene(env), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// NextName returns the scene after name, wrapping around.
func NextName(name string) string {
	for i, n := range Names {
		if n == name {
			return Names[(i+1)%len(Names)]
		}
	}
	return Names[0]
}
