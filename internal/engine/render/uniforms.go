package render

import (
	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Uniform names shared by the bundled shaders.
const (
	UniformModelView  = "uModelViewMatrix"
	UniformProjection = "uProjectionMatrix"
	UniformNormal     = "uNormalMatrix"

	UniformMaterialDiffuse  = "uMaterialDiffuse"
	UniformMaterialAmbient  = "uMaterialAmbient"
	UniformMaterialSpecular = "uMaterialSpecular"
	UniformWireframe        = "uWireframe"
)

// location looks up and caches a uniform of the active program.
func (c *Context) location(name string) (int32, bool) {
	if c.program == 0 {
		c.warnOnce("uniform", nil, "uniform set without an active program")
		return -1, false
	}
	loc, ok := c.uniforms[name]
	if !ok {
		loc = c.backend.UniformLocation(c.program, name)
		c.uniforms[name] = loc
	}
	return loc, loc >= 0
}

// SetMatrix4 sets a mat4 uniform. Unknown names are ignored.
func (c *Context) SetMatrix4(name string, m math.Mat4) {
	if loc, ok := c.location(name); ok {
		c.backend.UniformMatrix4(loc, m)
	}
}

// SetVec4 sets a vec4 uniform.
func (c *Context) SetVec4(name string, v [4]float32) {
	if loc, ok := c.location(name); ok {
		c.backend.Uniform4f(loc, v)
	}
}

// SetVec3 sets a vec3 uniform.
func (c *Context) SetVec3(name string, v math.Vec3) {
	if loc, ok := c.location(name); ok {
		c.backend.Uniform3f(loc, v.Array())
	}
}

// SetFloat sets a float uniform.
func (c *Context) SetFloat(name string, v float32) {
	if loc, ok := c.location(name); ok {
		c.backend.Uniform1f(loc, v)
	}
}

// SetBool sets a bool uniform (uploaded as int).
func (c *Context) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	if loc, ok := c.location(name); ok {
		c.backend.Uniform1i(loc, i)
	}
}

// ApplyCamera makes cam's view the current model-view and uploads it with
// the projection and cam's normal matrix.
func (c *Context) ApplyCamera(cam *camera.Camera) {
	c.modelView = cam.ViewTransform()
	c.stack = c.stack[:0]
	c.SetMatrix4(UniformModelView, c.modelView)
	c.SetMatrix4(UniformProjection, c.projection)
	c.SetMatrix4(UniformNormal, cam.NormalTransform())
}

// ModelView returns the current model-view matrix.
func (c *Context) ModelView() math.Mat4 { return c.modelView }

// SetModelView replaces the model-view matrix and uploads it with its
// normal matrix (the transposed inverse).
func (c *Context) SetModelView(m math.Mat4) {
	c.modelView = m
	c.SetMatrix4(UniformModelView, m)
	c.SetMatrix4(UniformNormal, m.Inverse().Transpose())
}

// Push saves the current model-view matrix.
func (c *Context) Push() {
	c.stack = append(c.stack, c.modelView)
}

// Pop restores and uploads the most recently pushed model-view matrix
// and its normal matrix.
// Popping an empty stack does nothing.
func (c *Context) Pop() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.SetModelView(c.stack[n-1])
	c.stack = c.stack[:n-1]
}

// ApplyMaterial uploads o's material colours, if it has any, and its
// wireframe flag.
func (c *Context) ApplyMaterial(o *mesh.Object) {
	if m := o.Material; m != nil {
		c.SetVec4(UniformMaterialDiffuse, m.Diffuse)
		c.SetVec4(UniformMaterialAmbient, m.Ambient)
		c.SetVec4(UniformMaterialSpecular, m.Specular)
	}
	c.SetBool(UniformWireframe, o.Wireframe)
}
