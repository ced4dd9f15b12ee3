package demo

import (
	"fmt"
	stdmath "math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/engine/kinematics"
	"github.com/Faultbox/gldemos/internal/engine/lighting"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/render"
	"github.com/Faultbox/gldemos/internal/engine/shaders"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Per-instance uniforms of the balls program.
const (
	UniformTranslate   = "uTranslate"
	UniformTranslation = "uTranslation"
)

// BallRadius is the radius of the shared ball mesh.
const BallRadius = 1

// Impact speed mapped to a full-strength bounce click.
var loudBounce = stdmath.Sqrt(2 * kinematics.G * 80)

// BallsScene drops a field of balls onto the floor. Every ball is drawn
// from one shared mesh, offset and tinted per draw.
type BallsScene struct {
	env Env
	log *zap.Logger

	floor *mesh.Object
	ball  *mesh.Object
	balls []*kinematics.BouncingBall

	clock float64
}

// NewBallsScene creates the bouncing-balls scene.
func NewBallsScene(env Env) *BallsScene {
	return &BallsScene{env: env, log: logger.Named("demo")}
}

// Name implements Scene.
func (s *BallsScene) Name() string { return NameBouncingBalls }

// Balls returns the simulated balls.
func (s *BallsScene) Balls() []*kinematics.BouncingBall { return s.balls }

// Clock returns the simulation time in seconds since Enter.
func (s *BallsScene) Clock() float64 { return s.clock }

// Enter implements Scene.
func (s *BallsScene) Enter() error {
	ctx := s.env.Render
	if err := ctx.SetProgram(shaders.BallsVertexShader, shaders.BallsFragmentShader); err != nil {
		return fmt.Errorf("balls scene: %w", err)
	}
	s.env.Light.Apply(ctx)
	ctx.SetVec3(UniformTranslation, math.Vec3{})
	ctx.SetBool(UniformTranslate, false)

	cfg := s.env.Scene
	s.floor = mesh.Floor(cfg.FloorDimension, cfg.FloorSpacing)
	s.ball = mesh.Sphere(BallRadius, 16, 24)
	for _, o := range []*mesh.Object{s.floor, s.ball} {
		if err := ctx.SetBuffers(o); err != nil {
			return fmt.Errorf("balls scene: %w", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	s.balls = make([]*kinematics.BouncingBall, cfg.BallCount)
	for i := range s.balls {
		s.balls[i] = kinematics.Spawn(rng)
	}
	s.clock = 0

	s.env.Controls.GoHome()
	s.log.Info("scene entered",
		zap.String("scene", NameBouncingBalls),
		zap.Int("balls", len(s.balls)),
		zap.Int64("seed", seed),
	)
	return nil
}

// Exit implements Scene.
func (s *BallsScene) Exit() error {
	s.env.Render.ReleaseBuffers(s.floor)
	s.env.Render.ReleaseBuffers(s.ball)
	s.floor, s.ball, s.balls = nil, nil, nil
	return nil
}

// Update advances the simulation clock by dt and moves every ball to it.
func (s *BallsScene) Update(dt float64) error {
	s.clock += dt
	for _, b := range s.balls {
		before := b.Bounces()
		b.Update(s.clock)
		if b.Bounces() != before {
			s.bounced(b)
		}
	}
	return nil
}

func (s *BallsScene) bounced(b *kinematics.BouncingBall) {
	if s.env.Audio == nil {
		return
	}
	speed := stdmath.Sqrt(2 * kinematics.G * b.ReboundHeight())
	if err := s.env.Audio.PlayBounce(stdmath.Min(speed/loudBounce, 1)); err != nil {
		s.log.Debug("bounce sound", zap.Error(err))
	}
}

// Render implements Scene.
func (s *BallsScene) Render() error {
	ctx := s.env.Render
	ctx.BeginFrame()
	ctx.UpdatePerspective(s.env.Camera)
	ctx.ApplyCamera(s.env.Camera)
	lighting.SetFixed(ctx, s.env.Controls.FixedLight())

	ctx.SetBool(UniformTranslate, false)
	ctx.ApplyMaterial(s.floor)
	ctx.DrawBuffers(s.floor)

	ctx.SetBool(UniformTranslate, true)
	ctx.ApplyMaterial(s.ball)
	if ctx.BindBuffers(s.ball) {
		for _, b := range s.balls {
			ctx.SetVec3(UniformTranslation, b.Position())
			ctx.SetVec4(render.UniformMaterialDiffuse, b.Color())
			ctx.DrawBound(s.ball)
		}
		ctx.CleanBuffers()
	}
	return nil
}
