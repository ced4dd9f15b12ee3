// Package rendertest provides an in-memory render.Backend and Surface for
// tests that must not touch a GPU.
package rendertest

import (
	"fmt"

	"github.com/Faultbox/gldemos/internal/engine/render"
	"github.com/Faultbox/gldemos/pkg/math"
)

var (
	_ render.Backend = (*Backend)(nil)
	_ render.Surface = (*Surface)(nil)
)

// Draw is one recorded DrawElements call with the bindings at that moment.
type Draw struct {
	Mode    render.Primitive
	Count   int32
	VAO     uint32
	Index   uint32
	Program uint32
	// Uniforms is a snapshot of every uniform set so far, by name.
	Uniforms map[string]any
}

// Backend records state changes and draw calls.
type Backend struct {
	// CompileErr, if set, is returned by the next CompileProgram call.
	CompileErr error

	nextID uint32

	Program      uint32
	VAO          uint32
	ArrayBuffer  uint32
	ElementBuf   uint32
	ViewportRect [4]int32
	ClearColor   [4]float32
	DepthTest    bool
	Clears       int
	LivePrograms map[uint32]bool
	LiveVAOs     map[uint32]bool
	LiveBuffers  map[uint32]bool

	// ArrayData and ElementData hold the last upload per buffer.
	ArrayData   map[uint32][]float32
	ElementData map[uint32][]uint16
	// Attribs maps VAO -> slot -> (buffer, size).
	Attribs map[uint32]map[uint32][2]uint32

	// Locations maps uniform name to location; names absent are inactive.
	Locations map[string]int32
	Uniforms  map[string]any
	names     map[int32]string

	Draws []Draw
}

// NewBackend returns a backend that knows every name in uniforms.
func NewBackend(uniforms ...string) *Backend {
	b := &Backend{
		LivePrograms: make(map[uint32]bool),
		LiveVAOs:     make(map[uint32]bool),
		LiveBuffers:  make(map[uint32]bool),
		ArrayData:    make(map[uint32][]float32),
		ElementData:  make(map[uint32][]uint16),
		Attribs:      make(map[uint32]map[uint32][2]uint32),
		Locations:    make(map[string]int32),
		Uniforms:     make(map[string]any),
		names:        make(map[int32]string),
	}
	for i, name := range uniforms {
		b.Locations[name] = int32(i)
		b.names[int32(i)] = name
	}
	return b
}

func (b *Backend) id() uint32 {
	b.nextID++
	return b.nextID
}

func (b *Backend) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if err := b.CompileErr; err != nil {
		b.CompileErr = nil
		return 0, err
	}
	if vertexSrc == "" {
		return 0, fmt.Errorf("vertex shader: empty source: %w", render.ErrCompile)
	}
	if fragmentSrc == "" {
		return 0, fmt.Errorf("fragment shader: empty source: %w", render.ErrCompile)
	}
	p := b.id()
	b.LivePrograms[p] = true
	return p, nil
}

func (b *Backend) UseProgram(program uint32) { b.Program = program }

func (b *Backend) DeleteProgram(program uint32) { delete(b.LivePrograms, program) }

func (b *Backend) UniformLocation(program uint32, name string) int32 {
	if !b.LivePrograms[program] {
		return -1
	}
	if loc, ok := b.Locations[name]; ok {
		return loc
	}
	return -1
}

func (b *Backend) set(loc int32, v any) {
	if name, ok := b.names[loc]; ok {
		b.Uniforms[name] = v
	}
}

func (b *Backend) UniformMatrix4(loc int32, m math.Mat4) { b.set(loc, m) }
func (b *Backend) Uniform4f(loc int32, v [4]float32)     { b.set(loc, v) }
func (b *Backend) Uniform3f(loc int32, v [3]float32)     { b.set(loc, v) }
func (b *Backend) Uniform1f(loc int32, v float32)        { b.set(loc, v) }
func (b *Backend) Uniform1i(loc int32, v int32)          { b.set(loc, v) }

func (b *Backend) CreateVertexArray() uint32 {
	v := b.id()
	b.LiveVAOs[v] = true
	b.Attribs[v] = make(map[uint32][2]uint32)
	return v
}

func (b *Backend) BindVertexArray(vao uint32) { b.VAO = vao }

func (b *Backend) DeleteVertexArray(vao uint32) {
	delete(b.LiveVAOs, vao)
	delete(b.Attribs, vao)
}

func (b *Backend) CreateBuffer() uint32 {
	buf := b.id()
	b.LiveBuffers[buf] = true
	return buf
}

func (b *Backend) DeleteBuffer(buf uint32) {
	delete(b.LiveBuffers, buf)
	delete(b.ArrayData, buf)
	delete(b.ElementData, buf)
}

func (b *Backend) BindArrayBuffer(buf uint32)   { b.ArrayBuffer = buf }
func (b *Backend) BindElementBuffer(buf uint32) { b.ElementBuf = buf }

func (b *Backend) ArrayBufferData(data []float32) {
	b.ArrayData[b.ArrayBuffer] = append([]float32(nil), data...)
}

func (b *Backend) ElementBufferData(data []uint16) {
	b.ElementData[b.ElementBuf] = append([]uint16(nil), data...)
}

func (b *Backend) VertexAttribPointer(slot uint32, size int32) {
	if attribs, ok := b.Attribs[b.VAO]; ok {
		attribs[slot] = [2]uint32{b.ArrayBuffer, uint32(size)}
	}
}

func (b *Backend) DrawElements(mode render.Primitive, count int32) {
	snapshot := make(map[string]any, len(b.Uniforms))
	for k, v := range b.Uniforms {
		snapshot[k] = v
	}
	b.Draws = append(b.Draws, Draw{
		Mode:     mode,
		Count:    count,
		VAO:      b.VAO,
		Index:    b.ElementBuf,
		Program:  b.Program,
		Uniforms: snapshot,
	})
}

func (b *Backend) Viewport(x, y, width, height int32) {
	b.ViewportRect = [4]int32{x, y, width, height}
}

func (b *Backend) SetClearColor(c [4]float32) { b.ClearColor = c }
func (b *Backend) Clear()                     { b.Clears++ }
func (b *Backend) EnableDepthTest()           { b.DepthTest = true }

func (b *Backend) ReadPixels(width, height int) []byte {
	return make([]byte, width*height*4)
}

// Surface is a fixed-size render.Surface.
type Surface struct {
	W, H  int
	Ratio float32
}

func (s *Surface) Size() (int, int)    { return s.W, s.H }
func (s *Surface) PixelRatio() float32 { return s.Ratio }
