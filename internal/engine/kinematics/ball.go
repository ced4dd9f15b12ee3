// Package kinematics animates bouncing balls with closed-form projectile
// motion.
package kinematics

import (
	stdmath "math"
	"math/rand"

	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/pkg/math"
)

// G is gravitational acceleration in scene units per second squared.
const G = 9.8

// BouncingBall falls from its spawn height and rebounds off y=0 forever.
// Height is always evaluated from the start of the current segment, so the
// size of the time step does not affect accuracy.
type BouncingBall struct {
	position math.Vec3
	color    mesh.RGBA

	h0, v0 float64 // height and upward velocity at segment start
	vf     float64 // impact speed of the current segment
	hf     float64 // apex height of the latest rebound

	origin      float64 // clock value the current segment started at
	restitution float64
	bounces     int
}

// New creates a ball at rest at pos. Restitution scales the rebound
// velocity at each bounce: below 1 the ball loses height.
func New(pos math.Vec3, restitution float64, color mesh.RGBA) *BouncingBall {
	h0 := float64(pos.Y)
	return &BouncingBall{
		position:    pos,
		color:       color,
		h0:          h0,
		vf:          stdmath.Sqrt(2 * G * h0),
		restitution: restitution,
	}
}

// Spawn creates a ball with a random position above the floor, a
// restitution in [0.5, 1.5) and a random opaque colour.
func Spawn(rng *rand.Rand) *BouncingBall {
	pos := math.Vec3{
		X: float32(stdmath.Floor(rng.Float64()*50) - stdmath.Floor(rng.Float64()*50)),
		Y: float32(stdmath.Floor(rng.Float64()*30) + 50),
		Z: float32(stdmath.Floor(rng.Float64() * 50)),
	}
	restitution := rng.Float64() + 0.5
	color := mesh.RGBA{float32(rng.Float64()), float32(rng.Float64()), float32(rng.Float64()), 1}
	return New(pos, restitution, color)
}

// Update advances the ball to the simulation clock (seconds). When the
// ball reaches the ground a new segment starts at clock and the height
// reported for this frame is left at its previous value.
func (b *BouncingBall) Update(clock float64) {
	t := clock - b.origin
	h := b.h0 + b.v0*t - 0.5*G*t*t

	if h <= 0 {
		b.origin = clock
		b.v0 = b.vf * b.restitution
		b.hf = b.v0 * b.v0 / (2 * G)
		b.vf = stdmath.Sqrt(2 * G * b.hf)
		b.h0 = 0
		b.bounces++
		return
	}
	b.position.Y = float32(h)
}

// Position returns the current position; only Y changes over time.
func (b *BouncingBall) Position() math.Vec3 { return b.position }

// Color returns the ball colour.
func (b *BouncingBall) Color() mesh.RGBA { return b.color }

// Restitution returns the rebound factor.
func (b *BouncingBall) Restitution() float64 { return b.restitution }

// ReboundHeight returns the apex height of the latest rebound, 0 before the
// first bounce.
func (b *BouncingBall) ReboundHeight() float64 { return b.hf }

// Bounces returns how many times the ball has hit the ground.
func (b *BouncingBall) Bounces() int { return b.bounces }
