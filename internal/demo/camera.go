package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/shaders"
	"github.com/Faultbox/gldemos/internal/logger"
)

// CameraScene shows a floor grid, the world axes and a lit subject mesh
// for exploring the camera modes.
type CameraScene struct {
	env Env
	log *zap.Logger

	objects []*mesh.Object
}

// NewCameraScene creates the camera scene; nothing is uploaded until Enter.
func NewCameraScene(env Env) *CameraScene {
	return &CameraScene{env: env, log: logger.Named("demo")}
}

// Name implements Scene.
func (s *CameraScene) Name() string { return NameCamera }

// Objects returns the uploaded objects in draw order.
func (s *CameraScene) Objects() []*mesh.Object { return s.objects }

// Enter implements Scene.
func (s *CameraScene) Enter() error {
	ctx := s.env.Render
	if err := ctx.SetProgram(shaders.CameraVertexShader, shaders.CameraFragmentShader); err != nil {
		return fmt.Errorf("camera scene: %w", err)
	}
	s.env.Light.Apply(ctx)

	subject, err := s.subject()
	if err != nil {
		return fmt.Errorf("camera scene: %w", err)
	}

	cfg := s.env.Scene
	s.objects = []*mesh.Object{
		mesh.Floor(cfg.FloorDimension, cfg.FloorSpacing),
		mesh.Axis(cfg.AxisDimension),
		subject,
	}
	for _, o := range s.objects {
		if err := ctx.SetBuffers(o); err != nil {
			return fmt.Errorf("camera scene: %w", err)
		}
	}

	s.env.Controls.GoHome()
	s.log.Info("scene entered", zap.String("scene", NameCamera), zap.String("subject", subject.Name))
	return nil
}

func (s *CameraScene) subject() (*mesh.Object, error) {
	if path := s.env.Scene.Mesh; path != "" {
		return mesh.LoadFile(path)
	}
	return mesh.Cone(4, 8, 32), nil
}

// Exit implements Scene.
func (s *CameraScene) Exit() error {
	for _, o := range s.objects {
		s.env.Render.ReleaseBuffers(o)
	}
	s.objects = nil
	return nil
}

// Update implements Scene. The camera scene is static.
func (s *CameraScene) Update(float64) error { return nil }

// Render implements Scene.
func (s *CameraScene) Render() error {
	ctx := s.env.Render
	ctx.BeginFrame()
	ctx.UpdatePerspective(s.env.Camera)
	ctx.ApplyCamera(s.env.Camera)

	for _, o := range s.objects {
		ctx.ApplyMaterial(o)
		ctx.DrawBuffers(o)
	}
	return nil
}
