package lighting

import (
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/pkg/math"
)

// UniformDirection is the eye-space direction a Directional light shines along.
const UniformDirection = "uLightDirection"

// Directional is a light at infinity. Its direction is given in eye space
// and is not transformed by the model-view matrix.
type Directional struct {
	Direction math.Vec3
	Ambient   mesh.RGBA
	Diffuse   mesh.RGBA
	Specular  mesh.RGBA
}

// Apply uploads the direction and colour terms. Shaders that only use a
// diffuse term ignore the rest.
func (d Directional) Apply(u Uniforms) {
	u.SetVec3(UniformDirection, d.Direction)
	u.SetVec4(UniformAmbient, d.Ambient)
	u.SetVec4(UniformDiffuse, d.Diffuse)
	u.SetVec4(UniformSpecular, d.Specular)
}
