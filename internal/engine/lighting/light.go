// Package lighting holds the scene light and uploads it as shader uniforms.
package lighting

import (
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Uniform names read by the bundled shaders.
const (
	UniformPosition  = "uLightPosition"
	UniformAmbient   = "uLightAmbient"
	UniformDiffuse   = "uLightDiffuse"
	UniformSpecular  = "uLightSpecular"
	UniformShininess = "uShininess"
	// UniformFixed keeps the light in eye space instead of world space.
	UniformFixed = "uUpdateLight"
)

// Uniforms is the subset of render.Context a light needs.
type Uniforms interface {
	SetVec3(name string, v math.Vec3)
	SetVec4(name string, v [4]float32)
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
}

// Light is a single positional Phong light.
type Light struct {
	Position  math.Vec3
	Ambient   mesh.RGBA
	Diffuse   mesh.RGBA
	Specular  mesh.RGBA
	Shininess float32
}

// Default returns the light of the camera and bouncing-balls scenes.
func Default() Light {
	return Light{
		Position:  math.Vec3{X: 0, Y: 120, Z: 120},
		Ambient:   mesh.RGBA{0.2, 0.2, 0.2, 1},
		Diffuse:   mesh.RGBA{1, 1, 1, 1},
		Specular:  mesh.RGBA{1, 1, 1, 1},
		Shininess: 230,
	}
}

// Apply uploads every light parameter.
func (l Light) Apply(u Uniforms) {
	u.SetVec3(UniformPosition, l.Position)
	u.SetVec4(UniformAmbient, l.Ambient)
	u.SetVec4(UniformDiffuse, l.Diffuse)
	u.SetVec4(UniformSpecular, l.Specular)
	u.SetFloat(UniformShininess, l.Shininess)
}

// SetFixed selects whether the light follows the camera.
func SetFixed(u Uniforms, fixed bool) {
	u.SetBool(UniformFixed, fixed)
}

