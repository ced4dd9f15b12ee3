// Package camera provides the orbiting/tracking camera shared by the demo scenes.
//
// The camera keeps a single placement matrix from which the view matrix, the
// normal matrix and the right/up/forward basis are derived. The matrix is
// rebuilt from identity on every mutation, so repeated updates never
// accumulate drift.
package camera

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/Faultbox/gldemos/pkg/math"
)

// Mode controls how position and orientation interact.
type Mode int

const (
	// Orbiting rotates the camera around a fixed pivot; position is the pivot.
	Orbiting Mode = iota
	// Tracking rotates the camera around its own lens; position is the lens.
	Tracking
)

// String returns the mode name used in config files and logs.
func (m Mode) String() string {
	switch m {
	case Orbiting:
		return "orbiting"
	case Tracking:
		return "tracking"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "orbiting" or "tracking" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orbiting", "orbit":
		return Orbiting, nil
	case "tracking", "track":
		return Tracking, nil
	}
	return Orbiting, fmt.Errorf("unknown camera mode %q", s)
}

// Defaults taken by DefaultConfig.
const (
	DefaultFOV  = 45.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 10000.0
)

// DefaultHome is the canonical position restored by GoHome.
var DefaultHome = math.Vec3{X: 0, Y: 7, Z: 36}

// Config holds the camera's initial settings.
type Config struct {
	Mode Mode
	Home math.Vec3
	FOV  float32 // vertical field of view, degrees
	Near float32
	Far  float32
}

// DefaultConfig returns the settings used by every demo scene.
func DefaultConfig() Config {
	return Config{
		Mode: Orbiting,
		Home: DefaultHome,
		FOV:  DefaultFOV,
		Near: DefaultNear,
		Far:  DefaultFar,
	}
}

// Camera converts position/azimuth/elevation/dolly intent into view and
// normal matrices.
type Camera struct {
	mode     Mode
	home     math.Vec3
	position math.Vec3

	// Basis derived from matrix; never set directly.
	right   math.Vec3
	up      math.Vec3
	forward math.Vec3

	matrix math.Mat4

	dollySteps float32
	azimuth    float32 // degrees
	elevation  float32 // degrees

	fov  float32
	near float32
	far  float32
}

// New creates a camera positioned at cfg.Home.
func New(cfg Config) *Camera {
	c := &Camera{
		mode:     cfg.Mode,
		home:     cfg.Home,
		position: cfg.Home,
		matrix:   math.Identity(),
		fov:      cfg.FOV,
		near:     cfg.Near,
		far:      cfg.Far,
	}
	c.update()
	return c
}

// Mode returns the current interaction mode.
func (c *Camera) Mode() Mode { return c.mode }

// SetMode switches the interaction mode. The matrix is not rebuilt until
// the next mutator call.
func (c *Camera) SetMode(mode Mode) {
	c.mode = mode
}

// Position returns the pivot (Orbiting) or the lens position (Tracking).
func (c *Camera) Position() math.Vec3 { return c.position }

// SetPosition moves the camera and rebuilds the matrix.
func (c *Camera) SetPosition(p math.Vec3) {
	c.position = p
	c.update()
}

// Azimuth returns the rotation around Y in degrees.
func (c *Camera) Azimuth() float32 { return c.azimuth }

// SetAzimuth sets the absolute rotation around Y in degrees.
func (c *Camera) SetAzimuth(deg float32) {
	c.azimuth = wrapAngle(deg)
	c.update()
}

// Elevation returns the rotation around X in degrees.
func (c *Camera) Elevation() float32 { return c.elevation }

// SetElevation sets the absolute rotation around X in degrees.
func (c *Camera) SetElevation(deg float32) {
	c.elevation = wrapAngle(deg)
	c.update()
}

// DollySteps returns the last dolly target.
func (c *Camera) DollySteps() float32 { return c.dollySteps }

// Dolly moves the camera to an absolute dolly target. Only the difference
// from the previous target is applied: Tracking moves against the forward
// basis vector, Orbiting pushes the pivot along Z.
func (c *Camera) Dolly(step float32) {
	delta := step - c.dollySteps
	pos := c.position

	if c.mode == Tracking {
		n := c.forward.Normalize()
		pos = pos.Sub(n.Scale(delta))
	} else {
		pos.Z -= delta
	}

	c.dollySteps = step
	c.SetPosition(pos)
}

// GoHome restores the configured home position and zeroes both angles.
func (c *Camera) GoHome() {
	c.GoHomeTo(c.home)
}

// GoHomeTo is GoHome with an explicit home position.
func (c *Camera) GoHomeTo(home math.Vec3) {
	c.SetPosition(home)
	c.SetAzimuth(0)
	c.SetElevation(0)
}

// Matrix returns a copy of the placement matrix.
func (c *Camera) Matrix() math.Mat4 { return c.matrix }

// Right returns the camera's local X axis in world space.
func (c *Camera) Right() math.Vec3 { return c.right }

// Up returns the camera's local Y axis in world space.
func (c *Camera) Up() math.Vec3 { return c.up }

// Forward returns the camera's local Z axis in world space.
func (c *Camera) Forward() math.Vec3 { return c.forward }

// ViewTransform returns the inverse of the placement matrix.
func (c *Camera) ViewTransform() math.Mat4 {
	return c.matrix.Inverse()
}

// NormalTransform returns the transpose of the placement matrix.
func (c *Camera) NormalTransform() math.Mat4 {
	return c.matrix.Transpose()
}

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float32 { return c.fov }

// Near returns the near clip distance.
func (c *Camera) Near() float32 { return c.near }

// Far returns the far clip distance.
func (c *Camera) Far() float32 { return c.far }

// update rebuilds the matrix and basis from position and angles.
func (c *Camera) update() {
	az := math.DegToRad(c.azimuth)
	el := math.DegToRad(c.elevation)

	m := math.Identity()
	if c.mode == Tracking {
		m = m.Translated(c.position).RotatedY(az).RotatedX(el)
		c.position = m.TransformPoint(math.Vec3{})
	} else {
		m = m.RotatedY(az).RotatedX(el).Translated(c.position)
	}
	c.matrix = m

	c.right = m.TransformDirection(math.Vec3{X: 1})
	c.up = m.TransformDirection(math.Vec3{Y: 1})
	c.forward = m.TransformDirection(math.Vec3{Z: 1})
}

// wrapAngle keeps an angle in (-360, 360]. NaN passes through unchanged.
func wrapAngle(deg float32) float32 {
	if deg > 360 || deg <= -360 {
		deg = math32.Mod(deg, 360)
	}
	return deg
}
