package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Context owns one backend, its active program and the objects uploaded
// through it. It must only be used from the thread that owns the GL context.
type Context struct {
	backend Backend
	log     *zap.Logger

	width, height int

	program  uint32
	uniforms map[string]int32

	clearColor mesh.RGBA
	projection math.Mat4
	modelView  math.Mat4
	stack      []math.Mat4

	objects map[*mesh.Object]struct{}
	warned  map[string]struct{}
}

// NewContext wraps b. Depth testing is enabled up front.
func NewContext(b Backend) (*Context, error) {
	if b == nil {
		return nil, ErrNoContext
	}
	b.EnableDepthTest()
	return &Context{
		backend:    b,
		log:        logger.Named("render"),
		uniforms:   make(map[string]int32),
		projection: math.Identity(),
		modelView:  math.Identity(),
		objects:    make(map[*mesh.Object]struct{}),
		warned:     make(map[string]struct{}),
	}, nil
}

// Backend returns the underlying backend.
func (c *Context) Backend() Backend { return c.backend }

// Size returns the backing store size in pixels.
func (c *Context) Size() (width, height int) { return c.width, c.height }

// Aspect returns width/height, or 1 before the first resize.
func (c *Context) Aspect() float32 {
	if c.height == 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// SetCanvasSize sizes the backing store to the surface size times its pixel
// ratio and updates the viewport. Calling it again with an unchanged
// surface leaves the size unchanged.
func (c *Context) SetCanvasSize(s Surface) {
	if s == nil {
		return
	}
	w, h := s.Size()
	dpr := s.PixelRatio()
	if dpr <= 0 {
		dpr = 1
	}
	width, height := int(float32(w)*dpr), int(float32(h)*dpr)

	if width != c.width || height != c.height {
		c.log.Debug("canvas resized",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Float32("pixel_ratio", dpr),
		)
	}
	c.width, c.height = width, height
	c.backend.Viewport(0, 0, int32(width), int32(height))
}

// SetProgram compiles, links and activates a program. On failure the
// context is left with no active program and the error wraps ErrCompile or
// ErrLink.
func (c *Context) SetProgram(vertexSrc, fragmentSrc string) error {
	if c.program != 0 {
		c.backend.DeleteProgram(c.program)
		c.program = 0
		c.backend.UseProgram(0)
	}
	clear(c.uniforms)

	program, err := c.backend.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return fmt.Errorf("set program: %w", err)
	}

	c.program = program
	c.backend.UseProgram(program)
	c.log.Debug("program linked", zap.Uint32("program", program))
	return nil
}

// Program returns the active program, 0 if none.
func (c *Context) Program() uint32 { return c.program }

// SetBuffers uploads o's positions, derived normals, optional colours and
// indices into a vertex array owned by o. Uploading an object again
// replaces its previous buffers.
func (c *Context) SetBuffers(o *mesh.Object) error {
	if o == nil || !o.Built() {
		return ErrNotBuilt
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("set buffers: %w", err)
	}
	if o.Handles.Valid() {
		c.ReleaseBuffers(o)
	}

	b := c.backend
	var h mesh.Handles

	h.VAO = b.CreateVertexArray()
	b.BindVertexArray(h.VAO)

	h.Position = c.uploadAttrib(AttribPosition, 3, o.Vertices)
	h.Normal = c.uploadAttrib(AttribNormal, 3, mesh.CalculateNormals(o.Vertices, o.Indices))
	if o.HasColors() {
		h.Color = c.uploadAttrib(AttribColor, 4, o.Colors)
	}

	h.Index = b.CreateBuffer()
	b.BindElementBuffer(h.Index)
	b.ElementBufferData(o.Indices)

	c.CleanBuffers()

	o.Handles = h
	c.objects[o] = struct{}{}
	delete(c.warned, "draw:"+o.Name)

	c.log.Debug("buffers uploaded",
		zap.String("object", o.Name),
		zap.Int("vertices", o.VertexCount()),
		zap.Int("indices", len(o.Indices)),
		zap.Bool("colors", o.HasColors()),
	)
	return nil
}

func (c *Context) uploadAttrib(slot uint32, size int32, data []float32) uint32 {
	buf := c.backend.CreateBuffer()
	c.backend.BindArrayBuffer(buf)
	c.backend.ArrayBufferData(data)
	c.backend.VertexAttribPointer(slot, size)
	return buf
}

// BindBuffers binds o's vertex array and index buffer for one or more
// DrawBound calls. Returns false (and draws nothing later) if o was never
// uploaded.
func (c *Context) BindBuffers(o *mesh.Object) bool {
	if o == nil || !o.Handles.Valid() {
		c.warnOnce("draw", o, "object drawn before its buffers were uploaded")
		return false
	}
	c.backend.BindVertexArray(o.Handles.VAO)
	c.backend.BindElementBuffer(o.Handles.Index)
	return true
}

// CleanBuffers clears vertex array and buffer bindings.
func (c *Context) CleanBuffers() {
	c.backend.BindVertexArray(0)
	c.backend.BindArrayBuffer(0)
	c.backend.BindElementBuffer(0)
}

// DrawBound issues an indexed draw of o using whatever is currently bound.
func (c *Context) DrawBound(o *mesh.Object) {
	if c.program == 0 {
		c.warnOnce("program", nil, "draw without an active program")
		return
	}
	mode := Triangles
	if o.Wireframe {
		mode = Lines
	}
	c.backend.DrawElements(mode, int32(len(o.Indices)))
}

// DrawBuffers binds o, draws it as lines or triangles and unbinds.
// Drawing an object that was never uploaded does nothing.
func (c *Context) DrawBuffers(o *mesh.Object) {
	if !c.BindBuffers(o) {
		return
	}
	c.DrawBound(o)
	c.CleanBuffers()
}

// ReleaseBuffers deletes o's GPU objects and zeroes its handles.
func (c *Context) ReleaseBuffers(o *mesh.Object) {
	if o == nil {
		return
	}
	h := o.Handles
	if h.VAO != 0 {
		c.backend.DeleteVertexArray(h.VAO)
	}
	for _, buf := range []uint32{h.Position, h.Normal, h.Color, h.Index} {
		if buf != 0 {
			c.backend.DeleteBuffer(buf)
		}
	}
	o.Handles = mesh.Handles{}
	delete(c.objects, o)
}

// UpdatePerspective rebuilds the projection from cam's fov (degrees),
// clip planes and the current aspect ratio. Before the first non-empty
// resize the previous projection is kept.
func (c *Context) UpdatePerspective(cam *camera.Camera) {
	if c.height == 0 {
		c.warnOnce("perspective", nil, "perspective update before canvas was sized")
		return
	}
	c.projection = math.Perspective(math.DegToRad(cam.FOV()), c.Aspect(), cam.Near(), cam.Far())
}

// Projection returns the current projection matrix.
func (c *Context) Projection() math.Mat4 { return c.projection }

// SetClearColor sets the colour BeginFrame clears to.
func (c *Context) SetClearColor(col mesh.RGBA) {
	c.clearColor = col
	c.backend.SetClearColor(col)
}

// ClearColor returns the colour set by the last SetClearColor.
func (c *Context) ClearColor() mesh.RGBA { return c.clearColor }

// BeginFrame clears colour and depth and resets the viewport.
func (c *Context) BeginFrame() {
	c.backend.Clear()
	c.backend.Viewport(0, 0, int32(c.width), int32(c.height))
}

// ReadPixels reads back the current backing store.
func (c *Context) ReadPixels() (pixels []byte, width, height int) {
	return c.backend.ReadPixels(c.width, c.height), c.width, c.height
}

// Close releases every uploaded object and the active program.
func (c *Context) Close() {
	for o := range c.objects {
		c.ReleaseBuffers(o)
	}
	if c.program != 0 {
		c.backend.UseProgram(0)
		c.backend.DeleteProgram(c.program)
		c.program = 0
	}
	c.log.Debug("render context closed")
}

func (c *Context) warnOnce(op string, o *mesh.Object, msg string) {
	key := op
	name := ""
	if o != nil {
		name = o.Name
		key += ":" + name
	}
	if _, ok := c.warned[key]; ok {
		return
	}
	c.warned[key] = struct{}{}
	c.log.Warn(msg, zap.String("object", name))
}
