package demo

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/engine/lighting"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/render"
	"github.com/Faultbox/gldemos/internal/engine/shaders"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Shading selects the lighting model of a ShadingScene.
type Shading int

const (
	// GouraudLambert computes a diffuse-only colour per vertex.
	GouraudLambert Shading = iota
	// GouraudPhong computes the full Phong colour per vertex.
	GouraudPhong
	// Phong interpolates normals and lights every fragment.
	Phong
)

// The sphere sits this far in front of a fixed eye.
const sphereDistance = 1.5

type shadingModel struct {
	name             string
	vertex, fragment string

	light     lighting.Directional
	material  mesh.Material
	shininess float32
	// spin is the turntable speed in degrees per second.
	spin float32
}

func (s Shading) model() shadingModel {
	if s == GouraudLambert {
		return shadingModel{
			name:     NameGouraudLambert,
			vertex:   shaders.GouraudLambertVertexShader,
			fragment: shaders.GouraudLambertFragmentShader,
			light: lighting.Directional{
				Direction: math.Vec3{X: 0, Y: -1, Z: -1},
				Diffuse:   mesh.RGBA{1, 1, 1, 1},
			},
			material: mesh.Material{Diffuse: mesh.RGBA{0.5, 0.8, 0.1, 1}},
		}
	}

	m := shadingModel{
		name:     NamePhong,
		vertex:   shaders.PhongVertexShader,
		fragment: shaders.PhongFragmentShader,
		light: lighting.Directional{
			Direction: math.Vec3{X: -0.25, Y: -0.25, Z: -0.25},
			Ambient:   mesh.RGBA{0.03, 0.03, 0.03, 1},
			Diffuse:   mesh.RGBA{46.0 / 256, 99.0 / 256, 191.0 / 256, 1},
			Specular:  mesh.RGBA{1, 1, 1, 1},
		},
		material: mesh.Material{
			Diffuse:  mesh.RGBA{1, 1, 1, 1},
			Ambient:  mesh.RGBA{1, 1, 1, 1},
			Specular: mesh.RGBA{1, 1, 1, 1},
		},
		shininess: 10,
		spin:      90,
	}
	if s == GouraudPhong {
		m.name = NameGouraudPhong
		m.vertex = shaders.GouraudPhongVertexShader
		m.fragment = shaders.GouraudPhongFragmentShader
	}
	return m
}

// ShadingScene shows a lit sphere under a directional light, seen from a
// fixed eye at the origin. The camera only contributes the field of view.
type ShadingScene struct {
	env   Env
	log   *zap.Logger
	model shadingModel

	sphere    *mesh.Object
	angle     float32 // degrees
	prevClear mesh.RGBA
}

// NewShadingScene creates a sphere scene using the given lighting model.
func NewShadingScene(env Env, shading Shading) *ShadingScene {
	return &ShadingScene{env: env, log: logger.Named("demo"), model: shading.model()}
}

// Name implements Scene.
func (s *ShadingScene) Name() string { return s.model.name }

// Angle returns the sphere's current rotation around Y in degrees.
func (s *ShadingScene) Angle() float32 { return s.angle }

// Light returns the scene's light.
func (s *ShadingScene) Light() lighting.Directional { return s.model.light }

// Enter implements Scene.
func (s *ShadingScene) Enter() error {
	ctx := s.env.Render
	if err := ctx.SetProgram(s.model.vertex, s.model.fragment); err != nil {
		return fmt.Errorf("%s scene: %w", s.model.name, err)
	}
	s.model.light.Apply(ctx)
	ctx.SetFloat(lighting.UniformShininess, s.model.shininess)

	s.sphere = mesh.Sphere(0.5, 32, 32)
	mat := s.model.material
	s.sphere.Material = &mat
	if err := ctx.SetBuffers(s.sphere); err != nil {
		return fmt.Errorf("%s scene: %w", s.model.name, err)
	}

	s.angle = 0
	s.prevClear = ctx.ClearColor()
	ctx.SetClearColor(mesh.RGBA{1, 1, 1, 1})

	s.log.Info("scene entered", zap.String("scene", s.model.name))
	return nil
}

// Exit implements Scene.
func (s *ShadingScene) Exit() error {
	s.env.Render.ReleaseBuffers(s.sphere)
	s.sphere = nil
	s.env.Render.SetClearColor(s.prevClear)
	return nil
}

// Update implements Scene. The Phong scenes turn the sphere.
func (s *ShadingScene) Update(dt float64) error {
	s.angle = math32.Mod(s.angle+s.model.spin*float32(dt), 360)
	return nil
}

// Render implements Scene.
func (s *ShadingScene) Render() error {
	ctx := s.env.Render
	ctx.BeginFrame()
	ctx.UpdatePerspective(s.env.Camera)
	ctx.SetMatrix4(render.UniformProjection, ctx.Projection())

	ctx.SetModelView(math.Translate(0, 0, -sphereDistance))
	ctx.Push()
	ctx.SetModelView(ctx.ModelView().RotatedY(math.DegToRad(s.angle)))
	ctx.ApplyMaterial(s.sphere)
	ctx.DrawBuffers(s.sphere)
	ctx.Pop()
	return nil
}
