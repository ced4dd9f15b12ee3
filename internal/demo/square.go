package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/shaders"
	"github.com/Faultbox/gldemos/internal/logger"
)

// SquareScene draws one flat square straight into clip space. It has no
// camera, projection or lighting.
type SquareScene struct {
	env Env
	log *zap.Logger

	square    *mesh.Object
	prevClear mesh.RGBA
}

// NewSquareScene creates the square scene.
func NewSquareScene(env Env) *SquareScene {
	return &SquareScene{env: env, log: logger.Named("demo")}
}

// Name implements Scene.
func (s *SquareScene) Name() string { return NameSquare }

// Enter implements Scene.
func (s *SquareScene) Enter() error {
	ctx := s.env.Render
	if err := ctx.SetProgram(shaders.SquareVertexShader, shaders.SquareFragmentShader); err != nil {
		return fmt.Errorf("square scene: %w", err)
	}

	s.square = mesh.Square(0.5)
	if err := ctx.SetBuffers(s.square); err != nil {
		return fmt.Errorf("square scene: %w", err)
	}

	s.prevClear = ctx.ClearColor()
	ctx.SetClearColor(mesh.RGBA{0, 0, 0, 1})

	s.log.Info("scene entered", zap.String("scene", NameSquare))
	return nil
}

// Exit implements Scene.
func (s *SquareScene) Exit() error {
	s.env.Render.ReleaseBuffers(s.square)
	s.square = nil
	s.env.Render.SetClearColor(s.prevClear)
	return nil
}

// Update implements Scene.
func (s *SquareScene) Update(float64) error { return nil }

// Render implements Scene.
func (s *SquareScene) Render() error {
	ctx := s.env.Render
	ctx.BeginFrame()
	ctx.DrawBuffers(s.square)
	return nil
}
