// Package render owns the drawing surface, the active shader program,
// per-object GPU buffers and draw dispatch.
//
// All GPU access goes through Backend so the package can be exercised
// without a live OpenGL context; glbackend provides the real one.
package render

import (
	"errors"

	"github.com/Faultbox/gldemos/pkg/math"
)

var (
	// ErrNoContext is returned when no GPU backend is available.
	ErrNoContext = errors.New("render: no rendering context")
	// ErrCompile wraps a shader stage compile failure and its info log.
	ErrCompile = errors.New("render: shader compile failed")
	// ErrLink wraps a program link failure and its info log.
	ErrLink = errors.New("render: program link failed")
	// ErrNotBuilt is returned when uploading an object with no geometry.
	ErrNotBuilt = errors.New("render: object has no geometry")
)

// Attribute slots shared with the shader sources (layout(location = N)).
const (
	AttribPosition uint32 = 0
	AttribNormal   uint32 = 1
	AttribColor    uint32 = 2
)

// Primitive selects the topology of an indexed draw.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

func (p Primitive) String() string {
	if p == Lines {
		return "lines"
	}
	return "triangles"
}

// Backend is the GPU capability the Context drives. Handles are the
// driver's object names; 0 means none.
type Backend interface {
	// CompileProgram compiles and links both stages. Errors wrap ErrCompile
	// or ErrLink.
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 for unknown or inactive uniforms.
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(loc int32, m math.Mat4)
	Uniform4f(loc int32, v [4]float32)
	Uniform3f(loc int32, v [3]float32)
	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	CreateBuffer() uint32
	DeleteBuffer(buf uint32)
	BindArrayBuffer(buf uint32)
	BindElementBuffer(buf uint32)
	ArrayBufferData(data []float32)
	ElementBufferData(data []uint16)
	// VertexAttribPointer enables slot and points it at the bound array
	// buffer as tightly packed float components.
	VertexAttribPointer(slot uint32, size int32)

	DrawElements(mode Primitive, count int32)

	Viewport(x, y, width, height int32)
	SetClearColor(c [4]float32)
	Clear()
	EnableDepthTest()
	// ReadPixels returns the framebuffer as bottom-up RGBA rows.
	ReadPixels(width, height int) []byte
}

// Surface is the window the context renders into.
type Surface interface {
	// Size returns the logical size in screen units.
	Size() (width, height int)
	// PixelRatio is physical pixels per screen unit.
	PixelRatio() float32
}
